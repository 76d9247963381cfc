package server

import (
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"

	"rideboard/internal/config"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	// submitLimiter throttles the public submission routes only; reads,
	// admin routes and the metrics scrape are never rate limited.
	submitLimiter fiber.Handler
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// CORS middleware
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
			AllowCredentials: true,
			MaxAge:           86400,
		}))
	}

	// Rate limiter for public submissions - 100 requests per minute per
	// IP. With REDIS_ADDR set the counters live in Redis and survive
	// restarts; otherwise they are in-memory per process. Attached per
	// route during registration, not app-wide.
	limiterCfg := limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "Rate limit exceeded. Please try again later.",
			})
		},
	}
	if cfg.RedisAddr != "" {
		limiterCfg.Storage = newRedisStorage(cfg.RedisAddr, cfg.RedisPassword)
	}

	return &Server{
		App:           app,
		Cfg:           cfg,
		submitLimiter: limiter.New(limiterCfg),
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	log.Printf("Starting server on %s", s.Cfg.ServerAddr)
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func newRedisStorage(addr, password string) *redis.Storage {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
		portStr = "6379"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
	})
}

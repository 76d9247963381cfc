package handlers

import (
	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Check pings the database and reports overall health. A failed ping
// returns 503 so load balancers stop routing here.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if err := h.db.Pool.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "error",
			"database": "unreachable",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "ok",
	})
}

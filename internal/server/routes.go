package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rideboard/internal/db"
	"rideboard/internal/handlers"
	"rideboard/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB) {
	adminAuth := middleware.NewAdminAuth(s.Cfg.AdminAPIKey)

	eventHandler := handlers.NewEventHandler(database)
	organizerHandler := handlers.NewOrganizerHandler(database)
	suggestionHandler := handlers.NewSuggestionHandler(database)
	moderationHandler := handlers.NewModerationHandler(database)
	healthHandler := handlers.NewHealthHandler(database)

	api := s.App.Group("/api")

	// Public catalog routes. Only approved events are visible here.
	api.Get("/events", eventHandler.List)
	api.Get("/events/upcoming", eventHandler.Upcoming)
	api.Get("/events/past", eventHandler.Past)
	api.Get("/events/by-organizer/:slug", eventHandler.ByOrganizer)
	api.Get("/events/:id", eventHandler.Get)
	api.Post("/events", s.submitLimiter, eventHandler.Create)

	api.Get("/organizers", organizerHandler.List)
	api.Get("/organizers/:slug", organizerHandler.Get)

	api.Post("/suggestions/video", s.submitLimiter, suggestionHandler.Create)

	api.Get("/health", healthHandler.Check)

	// Admin routes, gated by the shared-secret header.
	admin := api.Group("/admin", adminAuth.Require)
	admin.Get("/events", moderationHandler.ListAll)
	admin.Get("/events/pending", moderationHandler.ListPending)
	admin.Put("/events/:id", moderationHandler.Update)
	admin.Delete("/events/:id", moderationHandler.Delete)
	admin.Patch("/events/:id/approve", moderationHandler.Approve)
	admin.Patch("/events/:id/reject", moderationHandler.Reject)
	admin.Get("/suggestions", moderationHandler.ListSuggestions)
	admin.Patch("/suggestions/:id/approve", moderationHandler.ApproveSuggestion)
	admin.Patch("/suggestions/:id/reject", moderationHandler.RejectSuggestion)

	// Prometheus scrape endpoint.
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

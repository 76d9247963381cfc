package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
	"rideboard/internal/models"
)

// OrganizerHandler handles the public organizer endpoints.
type OrganizerHandler struct {
	db *db.DB
}

// NewOrganizerHandler creates an organizer handler.
func NewOrganizerHandler(database *db.DB) *OrganizerHandler {
	return &OrganizerHandler{db: database}
}

// List returns all organizers.
func (h *OrganizerHandler) List(c fiber.Ctx) error {
	organizers, err := h.db.GetAllOrganizers(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch organizers")
	}
	return jsonSuccess(c, models.OrganizersResponse{Organizers: organizers, Total: len(organizers)})
}

// Get returns an organizer by slug.
func (h *OrganizerHandler) Get(c fiber.Ctx) error {
	org, err := h.db.GetOrganizerBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, db.ErrOrganizerNotFound) {
			return jsonError(c, fiber.StatusNotFound, "organizer not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch organizer")
	}
	return jsonSuccess(c, org)
}

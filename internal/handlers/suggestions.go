package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
	"rideboard/internal/metrics"
	"rideboard/internal/validation"
)

// SuggestionHandler handles public video suggestion submissions.
type SuggestionHandler struct {
	db *db.DB
}

// NewSuggestionHandler creates a suggestion handler.
func NewSuggestionHandler(database *db.DB) *SuggestionHandler {
	return &SuggestionHandler{db: database}
}

// Create accepts a video suggestion for an event. The event is not checked
// for existence here; the admin review queue shows orphaned suggestions
// with a placeholder title.
func (h *SuggestionHandler) Create(c fiber.Ctx) error {
	var body struct {
		EventID  int64  `json:"event_id"`
		VideoURL string `json:"video_url"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.EventID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "event_id is required")
	}
	if valid, msg := validation.ValidateURL(body.VideoURL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	suggestion, err := h.db.CreateSuggestion(c.Context(), body.EventID, body.VideoURL)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create suggestion")
	}

	metrics.RecordSubmission("suggestion")
	return jsonCreated(c, suggestion)
}

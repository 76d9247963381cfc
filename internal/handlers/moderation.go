package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
	"rideboard/internal/metrics"
	"rideboard/internal/models"
	"rideboard/internal/validation"
)

// ModerationHandler handles the admin-scoped review and editing endpoints.
// Authorization is enforced by the admin middleware before any of these run.
type ModerationHandler struct {
	db *db.DB
}

// NewModerationHandler creates a moderation handler.
func NewModerationHandler(database *db.DB) *ModerationHandler {
	return &ModerationHandler{db: database}
}

// ListAll returns every event regardless of status.
func (h *ModerationHandler) ListAll(c fiber.Ctx) error {
	events, err := h.db.GetAllEvents(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}
	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// ListPending returns the review queue, newest submission first.
func (h *ModerationHandler) ListPending(c fiber.Ctx) error {
	events, err := h.db.GetPendingEvents(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}
	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// Update applies a partial edit to an event. Only fields present in the
// body are touched; a body with no recognized fields is rejected. All
// validation happens before any write.
func (h *ModerationHandler) Update(c fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var patch models.EventPatch
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if patch.IsEmpty() {
		return jsonError(c, fiber.StatusBadRequest, "update must touch at least one field")
	}
	if msg, ok := validatePatch(&patch); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	event, err := h.db.UpdateEvent(c.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		if errors.Is(err, db.ErrEmptyPatch) {
			return jsonError(c, fiber.StatusBadRequest, "update must touch at least one field")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update event")
	}

	return jsonSuccess(c, event)
}

// validatePatch checks every touched field; untouched fields are skipped.
func validatePatch(patch *models.EventPatch) (string, bool) {
	if patch.Title != nil {
		if valid, msg := validation.ValidateTitle(*patch.Title); !valid {
			return msg, false
		}
	}
	if patch.Organizer != nil {
		if valid, msg := validation.ValidateNonEmpty("organizer", *patch.Organizer); !valid {
			return msg, false
		}
	}
	if patch.LocationName != nil {
		if valid, msg := validation.ValidateNonEmpty("location_name", *patch.LocationName); !valid {
			return msg, false
		}
	}
	if patch.Latitude != nil {
		if valid, msg := validation.ValidateLatitude(*patch.Latitude); !valid {
			return msg, false
		}
	}
	if patch.Longitude != nil {
		if valid, msg := validation.ValidateLongitude(*patch.Longitude); !valid {
			return msg, false
		}
	}
	if patch.EventDate != nil && patch.EventDate.IsZero() {
		return "event_date must be a valid timestamp", false
	}
	for _, u := range []*string{patch.ImageURL, patch.VideoURL, patch.EventLink} {
		if u == nil {
			continue
		}
		// Empty string means "clear this field" and is always legal here.
		if valid, msg := validation.ValidateOptionalURL(*u); !valid {
			return msg, false
		}
	}
	if patch.Status != nil {
		normalized := strings.ToLower(*patch.Status)
		if !models.EventStatus(normalized).Valid() {
			return "status must be pending, approved, or rejected", false
		}
		patch.Status = &normalized
	}
	return "", true
}

// Approve marks an event approved. Idempotent.
func (h *ModerationHandler) Approve(c fiber.Ctx) error {
	return h.setStatus(c, "approved")
}

// Reject marks an event rejected. Idempotent.
func (h *ModerationHandler) Reject(c fiber.Ctx) error {
	return h.setStatus(c, "rejected")
}

func (h *ModerationHandler) setStatus(c fiber.Ctx, action string) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var event *models.Event
	if action == "approved" {
		event, err = h.db.ApproveEvent(c.Context(), id)
	} else {
		event, err = h.db.RejectEvent(c.Context(), id)
	}
	if err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update event")
	}

	metrics.RecordModerationDecision("event", action)
	return jsonSuccess(c, event)
}

// Delete removes an event permanently.
func (h *ModerationHandler) Delete(c fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	if err := h.db.DeleteEvent(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete event")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListSuggestions returns the pending video suggestion queue.
func (h *ModerationHandler) ListSuggestions(c fiber.Ctx) error {
	suggestions, err := h.db.GetPendingSuggestions(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch suggestions")
	}
	return jsonSuccess(c, models.SuggestionsResponse{Suggestions: suggestions, Total: len(suggestions)})
}

// ApproveSuggestion copies the suggested video URL onto the event and marks
// the suggestion approved, atomically. Approving a suggestion whose event
// was deleted fails with 404 and changes nothing.
func (h *ModerationHandler) ApproveSuggestion(c fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid suggestion id")
	}

	if err := h.db.ApproveSuggestion(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrSuggestionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "suggestion not found")
		}
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event for this suggestion no longer exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to approve suggestion")
	}

	metrics.RecordModerationDecision("suggestion", "approved")
	return jsonSuccess(c, fiber.Map{"message": "suggestion approved"})
}

// RejectSuggestion marks a suggestion rejected.
func (h *ModerationHandler) RejectSuggestion(c fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid suggestion id")
	}

	if err := h.db.RejectSuggestion(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrSuggestionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "suggestion not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to reject suggestion")
	}

	metrics.RecordModerationDecision("suggestion", "rejected")
	return jsonSuccess(c, fiber.Map{"message": "suggestion rejected"})
}

package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
	"rideboard/internal/metrics"
	"rideboard/internal/models"
	"rideboard/internal/validation"
)

// EventHandler handles the public event endpoints.
type EventHandler struct {
	db *db.DB
}

// NewEventHandler creates a public event handler.
func NewEventHandler(database *db.DB) *EventHandler {
	return &EventHandler{db: database}
}

func parseEventID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List returns all approved events, earliest first.
func (h *EventHandler) List(c fiber.Ctx) error {
	events, err := h.db.GetApprovedEvents(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}
	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// Upcoming returns approved events with a date in the future.
func (h *EventHandler) Upcoming(c fiber.Ctx) error {
	events, err := h.db.GetUpcomingEvents(c.Context(), time.Now().UTC())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}
	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// Past returns approved events that already happened, most recent first.
func (h *EventHandler) Past(c fiber.Ctx) error {
	events, err := h.db.GetPastEvents(c.Context(), time.Now().UTC())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}
	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// Get returns a single event by ID.
func (h *EventHandler) Get(c fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := h.db.GetEventByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch event")
	}

	return jsonSuccess(c, event)
}

// ByOrganizer returns approved events for the organizer with the given slug.
func (h *EventHandler) ByOrganizer(c fiber.Ctx) error {
	slug := c.Params("slug")

	org, err := h.db.GetOrganizerBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, db.ErrOrganizerNotFound) {
			return jsonError(c, fiber.StatusNotFound, "organizer not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch organizer")
	}

	events, err := h.db.GetApprovedEventsByOrganizer(c.Context(), org.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}

	return jsonSuccess(c, models.EventsResponse{Events: events, Total: len(events)})
}

// createEventRequest is the public submission body. There is deliberately
// no status field; submissions always start pending.
type createEventRequest struct {
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Organizer    string    `json:"organizer"`
	OrganizerID  *int64    `json:"organizer_id"`
	LocationName string    `json:"location_name"`
	Country      *string   `json:"country"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	EventDate    time.Time `json:"event_date"`
	ImageURL     *string   `json:"image_url"`
	VideoURL     *string   `json:"video_url"`
	EventLink    *string   `json:"event_link"`
}

// Create accepts a public event submission. The stored status is pending no
// matter what the client sent.
func (h *EventHandler) Create(c fiber.Ctx) error {
	var body createEventRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateTitle(body.Title); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateNonEmpty("organizer", body.Organizer); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateNonEmpty("location_name", body.LocationName); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateLatitude(body.Latitude); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateLongitude(body.Longitude); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if body.EventDate.IsZero() {
		return jsonError(c, fiber.StatusBadRequest, "event_date is required")
	}
	for _, u := range []*string{body.ImageURL, body.VideoURL, body.EventLink} {
		if u == nil {
			continue
		}
		if valid, msg := validation.ValidateOptionalURL(*u); !valid {
			return jsonError(c, fiber.StatusBadRequest, msg)
		}
	}

	event := &models.Event{
		Title:        body.Title,
		Description:  body.Description,
		Organizer:    body.Organizer,
		OrganizerID:  body.OrganizerID,
		LocationName: body.LocationName,
		Country:      blankToNil(body.Country),
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		EventDate:    body.EventDate,
		ImageURL:     blankToNil(body.ImageURL),
		VideoURL:     blankToNil(body.VideoURL),
		EventLink:    blankToNil(body.EventLink),
	}

	created, err := h.db.CreateEvent(c.Context(), event)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create event")
	}

	metrics.RecordSubmission("event")
	return jsonCreated(c, created)
}

// blankToNil collapses a present-but-empty optional string to absent.
func blankToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

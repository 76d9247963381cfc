package models

import (
	"strings"
	"time"
)

// EventStatus is the moderation state of an event or video suggestion.
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

// ParseStatus maps a stored status string to an EventStatus. Anything
// outside the known set is treated as pending so that malformed data can
// never become publicly visible.
func ParseStatus(s string) EventStatus {
	switch strings.ToLower(s) {
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	default:
		return StatusPending
	}
}

// Valid reports whether s is one of the known status values.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Event represents a scheduled ride with location, time, and moderation status.
type Event struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	Organizer    string      `json:"organizer"`
	OrganizerID  *int64      `json:"organizer_id"`
	LocationName string      `json:"location_name"`
	Country      *string     `json:"country"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	EventDate    time.Time   `json:"event_date"`
	ImageURL     *string     `json:"image_url"`
	VideoURL     *string     `json:"video_url"`
	EventLink    *string     `json:"event_link"`
	Status       EventStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

package models

import "time"

// VideoSuggestion is a proposed video link for an event, pending admin review.
type VideoSuggestion struct {
	ID        int64       `json:"id"`
	EventID   int64       `json:"event_id"`
	VideoURL  string      `json:"video_url"`
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// UnknownEventTitle is shown for suggestions whose event no longer exists.
const UnknownEventTitle = "Unknown Event"

// SuggestionWithEvent is the read-side projection of a suggestion joined
// with its event's title. The title is derived at query time and never
// written back.
type SuggestionWithEvent struct {
	VideoSuggestion
	EventTitle string `json:"event_title"`
}

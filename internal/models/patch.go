package models

import "time"

// EventPatch carries the fields of an admin partial update. A nil field was
// absent from the request and leaves the column untouched; a non-nil field
// is applied. For the nullable URL and country columns an empty string
// means "clear to NULL" (kept for compatibility with existing clients);
// description is always written verbatim.
type EventPatch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Organizer    *string    `json:"organizer"`
	LocationName *string    `json:"location_name"`
	Country      *string    `json:"country"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	EventDate    *time.Time `json:"event_date"`
	ImageURL     *string    `json:"image_url"`
	VideoURL     *string    `json:"video_url"`
	EventLink    *string    `json:"event_link"`
	Status       *string    `json:"status"`
}

// IsEmpty reports whether the patch touches no fields at all.
func (p *EventPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Organizer == nil &&
		p.LocationName == nil &&
		p.Country == nil &&
		p.Latitude == nil &&
		p.Longitude == nil &&
		p.EventDate == nil &&
		p.ImageURL == nil &&
		p.VideoURL == nil &&
		p.EventLink == nil &&
		p.Status == nil
}

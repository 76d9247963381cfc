package models

import "time"

// Organizer represents a ride-organizing group or individual.
// Organizers are created by seed/admin tooling only; the slug is immutable
// once set and is the public identifier used in URLs.
type Organizer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

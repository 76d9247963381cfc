package models

// EventsResponse is the list payload for event endpoints.
type EventsResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

// OrganizersResponse is the list payload for the organizers endpoint.
type OrganizersResponse struct {
	Organizers []Organizer `json:"organizers"`
	Total      int         `json:"total"`
}

// SuggestionsResponse is the list payload for the admin suggestions endpoint.
type SuggestionsResponse struct {
	Suggestions []SuggestionWithEvent `json:"suggestions"`
	Total       int                   `json:"total"`
}

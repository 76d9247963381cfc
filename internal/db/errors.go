package db

import "errors"

// Domain-level database error sentinels.
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrEmptyPatch    = errors.New("update contains no fields")

	// Organizer errors
	ErrOrganizerNotFound  = errors.New("organizer not found")
	ErrDuplicateOrganizer = errors.New("organizer name or slug already exists")

	// Suggestion errors
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

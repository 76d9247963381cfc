// Package validation contains the input rules shared by event creation and
// admin partial updates. All checks run before anything touches the store.
package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// MinTitleLength is the minimum number of characters in an event title.
	MinTitleLength = 3

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidateURL checks if a URL is well formed and uses an allowed scheme
// (http/https only). This prevents javascript:, data:, vbscript:, and other
// dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateOptionalURL applies ValidateURL only when the value is non-empty.
// Empty is legal for nullable URL fields (it means "clear" in a patch).
func ValidateOptionalURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return true, ""
	}
	return ValidateURL(urlStr)
}

// ValidateTitle checks the minimum title length. Counted in characters,
// not bytes, to match the database constraint.
func ValidateTitle(title string) (bool, string) {
	if utf8.RuneCountInString(title) < MinTitleLength {
		return false, "title must be at least 3 characters"
	}
	return true, ""
}

// ValidateNonEmpty checks that a required free-text field is not blank.
func ValidateNonEmpty(field, value string) (bool, string) {
	if value == "" {
		return false, field + " is required"
	}
	return true, ""
}

// ValidateLatitude checks the geographic latitude range, inclusive.
func ValidateLatitude(lat float64) (bool, string) {
	if lat < MinLatitude || lat > MaxLatitude {
		return false, "latitude must be between -90 and 90"
	}
	return true, ""
}

// ValidateLongitude checks the geographic longitude range, inclusive.
func ValidateLongitude(lng float64) (bool, string) {
	if lng < MinLongitude || lng > MaxLongitude {
		return false, "longitude must be between -180 and 180"
	}
	return true, ""
}

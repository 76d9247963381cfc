package validation

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://youtube.com/watch?v=abc123", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,<script>alert(1)</script>", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com/file", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"scheme only", "https://", false, "URL must have a valid host"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateOptionalURL(t *testing.T) {
	if valid, _ := ValidateOptionalURL(""); !valid {
		t.Error("empty optional URL should be valid")
	}
	if valid, _ := ValidateOptionalURL("not a url"); valid {
		t.Error("malformed optional URL should be invalid")
	}
	if valid, _ := ValidateOptionalURL("https://example.com"); !valid {
		t.Error("well-formed optional URL should be valid")
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"three chars", "Ride", true},
		{"exactly minimum", "Rid", true},
		{"two chars", "Ri", false},
		{"empty", "", false},
		{"long title", "London DNB On Bike - Spring Edition", true},
		{"two multibyte chars", "żż", false},
		{"three multibyte chars", "łódź", true},
		{"two emoji", "🚲🚲", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateTitle(tt.title); valid != tt.valid {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, valid, tt.valid)
			}
		})
	}
}

func TestValidateLatitude(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		valid bool
	}{
		{"zero", 0, true},
		{"north pole", 90.0, true},
		{"south pole", -90.0, true},
		{"just over north", 90.0001, false},
		{"just under south", -90.0001, false},
		{"london", 51.5074, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateLatitude(tt.lat); valid != tt.valid {
				t.Errorf("ValidateLatitude(%v) = %v, want %v", tt.lat, valid, tt.valid)
			}
		})
	}
}

func TestValidateLongitude(t *testing.T) {
	tests := []struct {
		name  string
		lng   float64
		valid bool
	}{
		{"zero", 0, true},
		{"date line east", 180.0, true},
		{"date line west", -180.0, true},
		{"just over east", 180.0001, false},
		{"just under west", -180.0001, false},
		{"adelaide", 138.6007, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateLongitude(tt.lng); valid != tt.valid {
				t.Errorf("ValidateLongitude(%v) = %v, want %v", tt.lng, valid, tt.valid)
			}
		})
	}
}

func TestValidateNonEmpty(t *testing.T) {
	if valid, msg := ValidateNonEmpty("organizer", ""); valid || msg != "organizer is required" {
		t.Errorf("ValidateNonEmpty empty = (%v, %q)", valid, msg)
	}
	if valid, _ := ValidateNonEmpty("organizer", "Dom Whiting"); !valid {
		t.Error("non-empty value should be valid")
	}
}

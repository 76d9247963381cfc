package models

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  EventStatus
	}{
		{"pending", "pending", StatusPending},
		{"approved", "approved", StatusApproved},
		{"rejected", "rejected", StatusRejected},
		{"uppercase approved", "APPROVED", StatusApproved},
		{"mixed case rejected", "Rejected", StatusRejected},
		{"empty string", "", StatusPending},
		{"garbage", "banana", StatusPending},
		{"whitespace", "  approved", StatusPending},
		{"sql fragment", "approved; DROP TABLE events", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatus(tt.input); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEventStatusValid(t *testing.T) {
	for _, s := range []EventStatus{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Errorf("Valid() = false for %q", s)
		}
	}
	if EventStatus("deleted").Valid() {
		t.Error("Valid() = true for unknown status")
	}
}

func TestEventPatchIsEmpty(t *testing.T) {
	var p EventPatch
	if !p.IsEmpty() {
		t.Error("zero patch should be empty")
	}

	title := "New Title"
	p.Title = &title
	if p.IsEmpty() {
		t.Error("patch with title should not be empty")
	}
}

// Absent fields and present-but-empty fields must be distinguishable after
// JSON decoding: absent stays nil, empty string becomes a non-nil pointer.
func TestEventPatchJSONPresence(t *testing.T) {
	var p EventPatch
	if err := json.Unmarshal([]byte(`{"image_url": ""}`), &p); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}

	if p.ImageURL == nil {
		t.Fatal("image_url was present in the body, pointer should be non-nil")
	}
	if *p.ImageURL != "" {
		t.Errorf("image_url = %q, want empty string", *p.ImageURL)
	}
	if p.VideoURL != nil {
		t.Error("video_url was absent, pointer should be nil")
	}
	if p.IsEmpty() {
		t.Error("patch with one present field should not be empty")
	}
}

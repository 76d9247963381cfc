package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"rideboard/internal/db"
)

func TestCreateSuggestionRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `not json`,
		},
		{
			name: "missing event id",
			body: `{"video_url":"https://youtube.com/watch?v=abc"}`,
		},
		{
			name: "negative event id",
			body: `{"event_id":-3,"video_url":"https://youtube.com/watch?v=abc"}`,
		},
		{
			name: "missing video url",
			body: `{"event_id":1}`,
		},
		{
			name: "non http scheme",
			body: `{"event_id":1,"video_url":"ftp://example.com/ride.mp4"}`,
		},
		{
			name: "url without host",
			body: `{"event_id":1,"video_url":"https://"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			handler := NewSuggestionHandler(&db.DB{})
			app.Post("/api/suggestions/video", handler.Create)

			req := httptest.NewRequest("POST", "/api/suggestions/video", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
		})
	}
}

package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestAdminAuthCheck(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		supplied string
		expected bool
	}{
		{
			name:     "exact match",
			secret:   "hunter2",
			supplied: "hunter2",
			expected: true,
		},
		{
			name:     "wrong key",
			secret:   "hunter2",
			supplied: "hunter3",
			expected: false,
		},
		{
			name:     "empty supplied",
			secret:   "hunter2",
			supplied: "",
			expected: false,
		},
		{
			name:     "prefix only",
			secret:   "hunter2",
			supplied: "hunter",
			expected: false,
		},
		{
			name:     "secret is prefix of supplied",
			secret:   "hunter2",
			supplied: "hunter22",
			expected: false,
		},
		{
			name:     "case sensitive",
			secret:   "Hunter2",
			supplied: "hunter2",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAdminAuth(tt.secret)
			if got := m.Check(tt.supplied); got != tt.expected {
				t.Errorf("Check(%q) with secret %q = %v, want %v", tt.supplied, tt.secret, got, tt.expected)
			}
		})
	}
}

func TestAdminAuthRequire(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid key passes",
			header:     "topsecret",
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "wrong key rejected",
			header:     "wrong",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing key rejected",
			header:     "",
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			auth := NewAdminAuth("topsecret")
			app.Get("/admin", auth.Require, func(c fiber.Ctx) error {
				return c.SendString("ok")
			})

			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

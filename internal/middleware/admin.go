package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// AdminKeyHeader carries the shared admin secret on admin-scoped requests.
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth gates admin-scoped routes behind a single shared secret. The
// secret is injected at construction so tests can substitute their own.
type AdminAuth struct {
	secret string
}

// NewAdminAuth creates an admin auth middleware with the given secret.
// The caller is responsible for refusing to start with an empty secret.
func NewAdminAuth(secret string) *AdminAuth {
	return &AdminAuth{secret: secret}
}

// Require rejects the request with 401 unless the admin key header matches
// the configured secret. Runs before any handler or store access.
func (m *AdminAuth) Require(c fiber.Ctx) error {
	supplied := c.Get(AdminKeyHeader)
	if supplied == "" || !m.Check(supplied) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid or missing admin key",
		})
	}
	return c.Next()
}

// Check reports whether the supplied key matches the configured secret.
// Constant-time to avoid leaking the match prefix length.
func (m *AdminAuth) Check(supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(m.secret)) == 1
}

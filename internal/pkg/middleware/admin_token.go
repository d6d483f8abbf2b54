package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rvolkov-dev/autobridge/internal/pkg/env"
)

// AdminTokenMiddleware authenticates back-office requests with a shared
// token. With no token configured the admin surface stays closed.
func AdminTokenMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := env.GetEnv("ADMIN_API_TOKEN", "")
		if token == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "admin_disabled", "message": "Admin API is not configured"})
		}

		provided := extractAdminTokenFromHeader(c)
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing admin token"})
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid admin token"})
		}

		return c.Next()
	}
}

func extractAdminTokenFromHeader(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Get("X-Admin-Token"))
	if token != "" {
		return token
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

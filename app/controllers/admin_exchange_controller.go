package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleExchangeRateRefresh forces a feed fetch regardless of the cache
// TTL. Used after a known rate move so listings reprice immediately.
func HandleExchangeRateRefresh(c *fiber.Ctx) error {
	rate, err := getExchangeService().Refresh(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "exchange_rate_unavailable", "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"pair":       "EUR/RUB",
		"rate":       rate,
		"fetched_at": time.Now().UTC().Format(time.RFC3339),
	})
}

package controllers

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/exchange"
	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

var decimalHundred = decimal.NewFromInt(100)

var (
	exchangeSvc     *exchange.Service
	exchangeSvcOnce sync.Once
)

// getExchangeService returns the shared rate service, built lazily on top
// of the global repository factory.
func getExchangeService() *exchange.Service {
	exchangeSvcOnce.Do(func() {
		exchangeSvc = exchange.NewService(repository.GetGlobalFactory().GetExchangeRateRepository())
	})
	return exchangeSvc
}

// GetClientIP determines the actual client IP address considering proxies.
// Cloudflare and X-Forwarded-For headers win over the socket address.
func GetClientIP(c *fiber.Ctx) string {
	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	if xff := c.Get("X-Forwarded-For"); xff != "" {
		// The first entry is the original client
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	ip := c.IP()
	// Unwrap IPv4-mapped-IPv6 addresses (::ffff:192.168.1.1)
	if strings.HasPrefix(ip, "::ffff:") && strings.Contains(ip, ".") {
		return strings.TrimPrefix(ip, "::ffff:")
	}
	return ip
}

// parsePagination reads page/limit query params with sane bounds.
func parsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) (offset, limit int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return (page - 1) * limit, limit
}

// breakdownPayload renders one audience variant with both the raw and the
// display representation.
func breakdownPayload(b pricing.Breakdown) fiber.Map {
	return fiber.Map{
		"breakdown": b,
		"formatted": b.Formatted(),
		"total":     pricing.RoundMinor(b.Total),
	}
}

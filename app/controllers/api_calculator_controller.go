package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

type quoteRequest struct {
	BasePriceEUR decimal.Decimal `json:"base_price_eur"`
	DistanceKm   decimal.Decimal `json:"distance_km"`
}

// HandleCalculatorQuote prices an arbitrary purchase amount through the
// active rate configuration and returns both audience variants.
func HandleCalculatorQuote(c *fiber.Ctx) error {
	if s := models.GetAppSettings(); s != nil && !s.IsCalculatorEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "feature_disabled", "message": "Calculator is currently disabled"})
	}

	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	configRepo := repository.GetGlobalFactory().GetCalculatorConfigRepository()
	cfg, err := configRepo.GetActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load pricing configuration"})
	}
	settings := pricing.SettingsFromConfig(cfg)

	rate, err := getExchangeService().EURRUBRate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "exchange_rate_unavailable", "message": "Exchange rate is currently unavailable"})
	}

	in := pricing.QuoteInput(req.BasePriceEUR, rate, req.DistanceKm, settings)

	individual, err := pricing.ComputeForIndividual(in, settings)
	if err != nil {
		var vErr *pricing.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "field": vErr.Field, "message": vErr.Reason})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to compute breakdown"})
	}
	company, err := pricing.ComputeForCompany(in, settings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to compute breakdown"})
	}

	response := fiber.Map{
		"exchange_rate": rate,
		"variants": fiber.Map{
			"individual": breakdownPayload(individual),
			"company":    breakdownPayload(company),
		},
	}
	if cfg != nil {
		response["config"] = fiber.Map{"id": cfg.ID, "name": cfg.Name}
	}

	return c.JSON(response)
}

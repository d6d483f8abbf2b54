package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/metrics/counter"
	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

// HandleVehicleList returns the published catalog, narrowed by the query
// filters.
func HandleVehicleList(c *fiber.Ctx) error {
	if s := models.GetAppSettings(); s != nil && !s.IsCatalogEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "feature_disabled", "message": "Catalog is currently disabled"})
	}

	repo := repository.GetGlobalFactory().GetVehicleRepository()

	if c.Query("featured") == "1" {
		limit, _ := strconv.Atoi(c.Query("limit", "6"))
		if limit < 1 || limit > 24 {
			limit = 6
		}
		vehicles, err := repo.GetFeatured(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicles"})
		}
		return c.JSON(fiber.Map{"vehicles": vehicleSummaries(vehicles), "count": len(vehicles)})
	}

	filter := vehicleFilterFromQuery(c)
	vehicles, err := repo.GetPublished(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicles"})
	}

	return c.JSON(fiber.Map{"vehicles": vehicleSummaries(vehicles), "count": len(vehicles)})
}

// HandleVehicleDetail returns one published vehicle with its landed-cost
// breakdowns. A rate outage degrades to the listing without pricing
// instead of failing the whole page.
func HandleVehicleDetail(c *fiber.Ctx) error {
	if s := models.GetAppSettings(); s != nil && !s.IsCatalogEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "feature_disabled", "message": "Catalog is currently disabled"})
	}

	slug := c.Params("slug")

	factory := repository.GetGlobalFactory()
	vehicle, err := factory.GetVehicleRepository().GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicle"})
	}

	if err := counter.AddVehicleView(vehicle.ID); err != nil {
		log.Printf("Failed to count view for vehicle %s: %v", vehicle.Slug, err)
	}

	response := fiber.Map{"vehicle": vehicle}

	cfg, err := factory.GetCalculatorConfigRepository().GetActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load pricing configuration"})
	}
	settings := pricing.SettingsFromConfig(cfg)

	if payload := vehiclePricing(c, vehicle, settings); payload != nil {
		response["pricing"] = payload
	}

	return c.JSON(response)
}

func vehiclePricing(c *fiber.Ctx, vehicle *models.Vehicle, settings pricing.Settings) fiber.Map {
	rate, err := getExchangeService().EURRUBRate(c.Context())
	if err != nil {
		log.Printf("Vehicle %s served without pricing: %v", vehicle.Slug, err)
		return nil
	}

	individual, err := pricing.VehicleBreakdown(vehicle, rate, pricing.AudienceIndividual, settings)
	if err != nil {
		log.Printf("Vehicle %s served without pricing: %v", vehicle.Slug, err)
		return nil
	}
	company, err := pricing.VehicleBreakdown(vehicle, rate, pricing.AudienceCompany, settings)
	if err != nil {
		log.Printf("Vehicle %s served without pricing: %v", vehicle.Slug, err)
		return nil
	}

	return fiber.Map{
		"exchange_rate": rate,
		"variants": fiber.Map{
			"individual": breakdownPayload(individual),
			"company":    breakdownPayload(company),
		},
	}
}

func vehicleFilterFromQuery(c *fiber.Ctx) repository.VehicleFilter {
	filter := repository.VehicleFilter{
		Search: c.Query("search"),
		Brand:  c.Query("brand"),
		Model:  c.Query("model"),

		Countries:     splitQueryList(c.Query("country")),
		BodyTypes:     splitQueryList(c.Query("body_type")),
		FuelTypes:     splitQueryList(c.Query("fuel_type")),
		Transmissions: splitQueryList(c.Query("transmission")),
		Colors:        splitQueryList(c.Query("color")),
	}

	filter.MinYear, _ = strconv.Atoi(c.Query("year_from"))
	filter.MaxYear, _ = strconv.Atoi(c.Query("year_to"))
	filter.MinMileage, _ = strconv.Atoi(c.Query("mileage_from"))
	filter.MaxMileage, _ = strconv.Atoi(c.Query("mileage_to"))
	filter.MinEngineVolume, _ = strconv.Atoi(c.Query("engine_volume_from"))
	filter.MaxEngineVolume, _ = strconv.Atoi(c.Query("engine_volume_to"))
	filter.MinPowerHp, _ = strconv.Atoi(c.Query("power_from"))
	filter.MaxPowerHp, _ = strconv.Atoi(c.Query("power_to"))

	// Price filters are taken in whole euros and stored as cents
	if v, err := strconv.ParseInt(c.Query("price_from"), 10, 64); err == nil && v > 0 {
		filter.MinPriceEURCents = v * 100
	}
	if v, err := strconv.ParseInt(c.Query("price_to"), 10, 64); err == nil && v > 0 {
		filter.MaxPriceEURCents = v * 100
	}

	return filter
}

func splitQueryList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func vehicleSummaries(vehicles []models.Vehicle) []fiber.Map {
	out := make([]fiber.Map, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, vehicleSummary(&vehicles[i]))
	}
	return out
}

func vehicleSummary(v *models.Vehicle) fiber.Map {
	thumbnail := v.ThumbnailURL
	if img := v.PrimaryImage(); img != nil {
		thumbnail = img.URL
	}

	return fiber.Map{
		"id":             v.ID,
		"slug":           v.Slug,
		"title":          v.Title,
		"brand":          v.Brand,
		"model":          v.Model,
		"year":           v.Year,
		"mileage":        v.Mileage,
		"mileage_unit":   v.MileageUnit,
		"base_price_eur": decimal.NewFromInt(v.BasePriceEURCents).Div(decimalHundred),
		"country":        v.Country,
		"city":           v.City,
		"body_type":      v.BodyType,
		"fuel_type":      v.FuelType,
		"transmission":   v.Transmission,
		"power_hp":       v.PowerHp,
		"thumbnail_url":  thumbnail,
	}
}

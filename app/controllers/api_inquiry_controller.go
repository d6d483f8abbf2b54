package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/hcaptcha"
	"github.com/rvolkov-dev/autobridge/internal/pkg/mail"
	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

type inquiryRequest struct {
	VehicleID    *string `json:"vehicle_id"`
	CustomerType string  `json:"customer_type"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Message      string  `json:"message"`
	CaptchaToken string  `json:"captcha_token"`
}

// HandleInquiryCreate captures a purchase lead. When the lead references a
// vehicle, the landed cost for the requested customer type is snapshotted
// onto the record so the back office sees the price the customer saw.
func HandleInquiryCreate(c *fiber.Ctx) error {
	if s := models.GetAppSettings(); s != nil && !s.IsInquiriesEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "feature_disabled", "message": "Inquiries are currently disabled"})
	}

	var req inquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	if hcaptcha.Enabled() {
		ok, err := hcaptcha.Verify(req.CaptchaToken, GetClientIP(c))
		if err != nil || !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "captcha_failed", "message": "Captcha verification failed"})
		}
	}

	factory := repository.GetGlobalFactory()
	audience := pricing.ParseAudience(req.CustomerType)

	inquiry := &models.Inquiry{
		CustomerType: audience.CustomerType(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		Status:       models.INQUIRY_STATUS_NEW,
	}

	if req.VehicleID != nil && *req.VehicleID != "" {
		vehicle, err := factory.GetVehicleRepository().GetByID(*req.VehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "field": "vehicle_id", "message": "Unknown vehicle"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicle"})
		}
		inquiry.VehicleID = &vehicle.ID
		inquiry.EstimatedCostCents = estimateCostCents(c, vehicle, audience)
	}

	payload, err := json.Marshal(fiber.Map{
		"client_ip":  GetClientIP(c),
		"user_agent": string(c.Request().Header.UserAgent()),
	})
	if err == nil {
		inquiry.Payload = string(payload)
	}

	if err := factory.GetInquiryRepository().Create(inquiry); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}

	go mail.NotifyNewInquiry(inquiry)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     inquiry.ID,
		"status": inquiry.Status,
	})
}

// estimateCostCents computes the snapshot total for the lead. Estimation is
// best effort; a rate outage produces a lead without a snapshot.
func estimateCostCents(c *fiber.Ctx, vehicle *models.Vehicle, audience pricing.Audience) *int64 {
	cfg, err := repository.GetGlobalFactory().GetCalculatorConfigRepository().GetActive()
	if err != nil {
		log.Printf("Inquiry stored without cost snapshot: %v", err)
		return nil
	}

	rate, err := getExchangeService().EURRUBRate(c.Context())
	if err != nil {
		log.Printf("Inquiry stored without cost snapshot: %v", err)
		return nil
	}

	breakdown, err := pricing.VehicleBreakdown(vehicle, rate, audience, pricing.SettingsFromConfig(cfg))
	if err != nil {
		log.Printf("Inquiry stored without cost snapshot: %v", err)
		return nil
	}

	cents := breakdown.Total.Mul(decimalHundred).Round(0).IntPart()
	return &cents
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

// AdminCalculatorController manages the rate configuration lifecycle.
type AdminCalculatorController struct {
	configRepo repository.CalculatorConfigRepository
}

func NewAdminCalculatorController() *AdminCalculatorController {
	return &AdminCalculatorController{
		configRepo: repository.GetGlobalFactory().GetCalculatorConfigRepository(),
	}
}

// configRequest carries a partial configuration. Omitted fields fall back
// to the built-in defaults on create and stay untouched on update.
type configRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	IsActive          *bool   `json:"is_active"`
	AppliesToVehicles *bool   `json:"applies_to_vehicles"`

	LogisticsBaseCost  *decimal.Decimal `json:"logistics_base_cost"`
	LogisticsCostPerKm *decimal.Decimal `json:"logistics_cost_per_km"`
	DutyPercent        *decimal.Decimal `json:"duty_percent"`
	ExciseBaseCost     *decimal.Decimal `json:"excise_base_cost"`
	RecyclingBaseCost  *decimal.Decimal `json:"recycling_base_cost"`
	VATPercent         *decimal.Decimal `json:"vat_percent"`
	BrokerBaseCost     *decimal.Decimal `json:"broker_base_cost"`
	CommissionPercent  *decimal.Decimal `json:"commission_percent"`

	InsurancePercent            *decimal.Decimal `json:"insurance_percent"`
	ServiceFeeIndividualPercent *decimal.Decimal `json:"service_fee_individual_percent"`
	ServiceFeeCompanyPercent    *decimal.Decimal `json:"service_fee_company_percent"`
	DocumentPackageCost         *decimal.Decimal `json:"document_package_cost"`
}

func (req *configRequest) applyTo(cfg *models.CalculatorConfig) {
	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.Description != nil {
		cfg.Description = *req.Description
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	if req.AppliesToVehicles != nil {
		cfg.AppliesToVehicles = *req.AppliesToVehicles
	}

	decimals := []struct {
		src *decimal.Decimal
		dst *decimal.Decimal
	}{
		{req.LogisticsBaseCost, &cfg.LogisticsBaseCost},
		{req.LogisticsCostPerKm, &cfg.LogisticsCostPerKm},
		{req.DutyPercent, &cfg.DutyPercent},
		{req.ExciseBaseCost, &cfg.ExciseBaseCost},
		{req.RecyclingBaseCost, &cfg.RecyclingBaseCost},
		{req.VATPercent, &cfg.VATPercent},
		{req.BrokerBaseCost, &cfg.BrokerBaseCost},
		{req.CommissionPercent, &cfg.CommissionPercent},
		{req.InsurancePercent, &cfg.InsurancePercent},
		{req.ServiceFeeIndividualPercent, &cfg.ServiceFeeIndividualPercent},
		{req.ServiceFeeCompanyPercent, &cfg.ServiceFeeCompanyPercent},
		{req.DocumentPackageCost, &cfg.DocumentPackageCost},
	}
	for _, d := range decimals {
		if d.src != nil {
			*d.dst = *d.src
		}
	}
}

// configFromDefaults seeds a new configuration with the engine defaults so
// a partial create request still produces a complete rate table.
func configFromDefaults() *models.CalculatorConfig {
	s := pricing.DefaultSettings()
	return &models.CalculatorConfig{
		AppliesToVehicles:           s.AppliesToVehicles,
		LogisticsBaseCost:           s.LogisticsBaseCost,
		LogisticsCostPerKm:          s.LogisticsCostPerKm,
		DutyPercent:                 s.DutyPercent,
		ExciseBaseCost:              s.ExciseBaseCost,
		RecyclingBaseCost:           s.RecyclingBaseCost,
		VATPercent:                  s.VATPercent,
		BrokerBaseCost:              s.BrokerBaseCost,
		CommissionPercent:           s.CommissionPercent,
		InsurancePercent:            s.InsurancePercent,
		ServiceFeeIndividualPercent: s.ServiceFeeIndividualPercent,
		ServiceFeeCompanyPercent:    s.ServiceFeeCompanyPercent,
		DocumentPackageCost:         s.DocumentPackageCost,
	}
}

// HandleConfigList returns all rate configurations.
func (acc *AdminCalculatorController) HandleConfigList(c *fiber.Ctx) error {
	configs, err := acc.configRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configurations"})
	}
	return c.JSON(fiber.Map{"configs": configs, "count": len(configs)})
}

// HandleConfigGet returns a single configuration by ID.
func (acc *AdminCalculatorController) HandleConfigGet(c *fiber.Ctx) error {
	cfg, err := acc.configRepo.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configuration"})
	}
	return c.JSON(cfg)
}

// HandleConfigActive returns the currently active configuration. With no
// active row this is a 404; pricing itself still works off the built-in
// defaults in that state.
func (acc *AdminCalculatorController) HandleConfigActive(c *fiber.Ctx) error {
	cfg, err := acc.configRepo.GetActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configuration"})
	}
	if cfg == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no_active_config", "message": "No configuration is active, defaults are in use"})
	}
	return c.JSON(cfg)
}

// HandleConfigCreate stores a new configuration. Activating it here
// deactivates the previous one in the same transaction.
func (acc *AdminCalculatorController) HandleConfigCreate(c *fiber.Ctx) error {
	var req configRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if req.Name == nil || *req.Name == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "field": "name", "message": "Name is required"})
	}

	cfg := configFromDefaults()
	req.applyTo(cfg)

	if err := acc.configRepo.Create(cfg); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cfg)
}

// HandleConfigUpdate modifies an existing configuration. Only fields
// present in the body are touched.
func (acc *AdminCalculatorController) HandleConfigUpdate(c *fiber.Ctx) error {
	cfg, err := acc.configRepo.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configuration"})
	}

	var req configRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	req.applyTo(cfg)

	if err := acc.configRepo.Update(cfg); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}
	return c.JSON(cfg)
}

// HandleConfigActivate promotes one configuration to active.
func (acc *AdminCalculatorController) HandleConfigActivate(c *fiber.Ctx) error {
	if err := acc.configRepo.SetActive(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to activate configuration"})
	}

	cfg, err := acc.configRepo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configuration"})
	}
	return c.JSON(cfg)
}

// HandleConfigDelete removes a configuration. Deleting the active one is
// allowed; pricing then falls back to the built-in defaults.
func (acc *AdminCalculatorController) HandleConfigDelete(c *fiber.Ctx) error {
	if _, err := acc.configRepo.GetByID(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load configuration"})
	}

	if err := acc.configRepo.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete configuration"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

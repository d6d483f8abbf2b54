package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
)

// AdminSettingsController manages the global feature flags and site metadata.
type AdminSettingsController struct {
	settingRepo repository.SettingRepository
}

func NewAdminSettingsController() *AdminSettingsController {
	return &AdminSettingsController{
		settingRepo: repository.GetGlobalFactory().GetSettingRepository(),
	}
}

// HandleSettingsGet returns the current application settings.
func (asc *AdminSettingsController) HandleSettingsGet(c *fiber.Ctx) error {
	settings, err := asc.settingRepo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load settings"})
	}
	return c.JSON(settings)
}

// HandleSettingsUpdate replaces the application settings.
func (asc *AdminSettingsController) HandleSettingsUpdate(c *fiber.Ctx) error {
	var settings models.AppSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	if err := asc.settingRepo.Save(&settings); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}
	return c.JSON(&settings)
}

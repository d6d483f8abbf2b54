package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
)

// AdminVehicleController manages the catalog from the back office.
type AdminVehicleController struct {
	vehicleRepo repository.VehicleRepository
}

func NewAdminVehicleController() *AdminVehicleController {
	return &AdminVehicleController{
		vehicleRepo: repository.GetGlobalFactory().GetVehicleRepository(),
	}
}

// HandleVehicleList returns vehicles in any status, paginated.
func (avc *AdminVehicleController) HandleVehicleList(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 25, 100)

	vehicles, err := avc.vehicleRepo.GetAll(offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicles"})
	}

	total, err := avc.vehicleRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to count vehicles"})
	}

	return c.JSON(fiber.Map{"vehicles": vehicles, "total": total})
}

// HandleVehicleGet returns one vehicle in any status by ID.
func (avc *AdminVehicleController) HandleVehicleGet(c *fiber.Ctx) error {
	vehicle, err := avc.vehicleRepo.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicle"})
	}
	return c.JSON(vehicle)
}

// HandleVehicleCreate stores a new listing with its relations. A missing
// slug is derived from brand, model and year; a taken slug gets a
// timestamp suffix.
func (avc *AdminVehicleController) HandleVehicleCreate(c *fiber.Ctx) error {
	var vehicle models.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	if vehicle.Status == "" {
		vehicle.Status = models.VEHICLE_STATUS_DRAFT
	}
	if vehicle.Slug == "" {
		vehicle.Slug = buildSlug(vehicle.Brand, vehicle.Model, fmt.Sprintf("%d", vehicle.Year))
	}

	slugExists, err := avc.vehicleRepo.SlugExists(vehicle.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to check slug"})
	}
	if slugExists {
		vehicle.Slug = fmt.Sprintf("%s-%d", vehicle.Slug, time.Now().Unix())
	}

	if err := avc.vehicleRepo.Create(&vehicle); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// HandleVehicleUpdate overwrites a listing. Relation slices in the body
// replace the stored ones.
func (avc *AdminVehicleController) HandleVehicleUpdate(c *fiber.Ctx) error {
	existing, err := avc.vehicleRepo.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicle"})
	}

	var vehicle models.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	vehicle.ID = existing.ID
	vehicle.CreatedAt = existing.CreatedAt
	if vehicle.Slug == "" {
		vehicle.Slug = existing.Slug
	}
	if vehicle.Status == "" {
		vehicle.Status = existing.Status
	}

	if vehicle.Slug != existing.Slug {
		slugExists, err := avc.vehicleRepo.SlugExistsExceptID(vehicle.Slug, vehicle.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to check slug"})
		}
		if slugExists {
			vehicle.Slug = fmt.Sprintf("%s-%d", vehicle.Slug, time.Now().Unix())
		}
	}

	if err := avc.vehicleRepo.Update(&vehicle); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	}
	return c.JSON(vehicle)
}

// HandleVehicleDelete soft deletes a listing.
func (avc *AdminVehicleController) HandleVehicleDelete(c *fiber.Ctx) error {
	if _, err := avc.vehicleRepo.GetByID(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Vehicle not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load vehicle"})
	}

	if err := avc.vehicleRepo.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete vehicle"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// buildSlug lowercases and joins the parts with hyphens, dropping anything
// that is not a letter, digit or hyphen.
func buildSlug(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, "-"))
	var b strings.Builder
	lastHyphen := false
	for _, r := range joined {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

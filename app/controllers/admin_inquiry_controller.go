package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
)

// AdminInquiryController works the lead queue.
type AdminInquiryController struct {
	inquiryRepo repository.InquiryRepository
}

func NewAdminInquiryController() *AdminInquiryController {
	return &AdminInquiryController{
		inquiryRepo: repository.GetGlobalFactory().GetInquiryRepository(),
	}
}

// HandleInquiryList returns leads newest first, optionally narrowed to one
// workflow status.
func (aic *AdminInquiryController) HandleInquiryList(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 25, 100)

	var (
		inquiries []models.Inquiry
		err       error
	)
	if status := c.Query("status"); status != "" {
		if !validInquiryStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Unknown inquiry status"})
		}
		inquiries, err = aic.inquiryRepo.GetByStatus(status, offset, limit)
	} else {
		inquiries, err = aic.inquiryRepo.GetAll(offset, limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load inquiries"})
	}

	total, err := aic.inquiryRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to count inquiries"})
	}

	return c.JSON(fiber.Map{"inquiries": inquiries, "total": total})
}

// HandleInquiryGet returns one lead with its vehicle.
func (aic *AdminInquiryController) HandleInquiryGet(c *fiber.Ctx) error {
	inquiry, err := aic.inquiryRepo.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Inquiry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load inquiry"})
	}
	return c.JSON(inquiry)
}

// HandleInquiryStatusUpdate moves a lead to a new workflow status.
func (aic *AdminInquiryController) HandleInquiryStatusUpdate(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if !validInquiryStatus(req.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_error", "field": "status", "message": "Unknown inquiry status"})
	}

	if err := aic.inquiryRepo.UpdateStatus(c.Params("id"), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Inquiry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update inquiry"})
	}

	return c.JSON(fiber.Map{"id": c.Params("id"), "status": req.Status})
}

func validInquiryStatus(status string) bool {
	switch status {
	case models.INQUIRY_STATUS_NEW, models.INQUIRY_STATUS_IN_PROGRESS, models.INQUIRY_STATUS_CLOSED:
		return true
	}
	return false
}

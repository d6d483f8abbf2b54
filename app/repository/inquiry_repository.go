package repository

import (
	"github.com/rvolkov-dev/autobridge/app/models"
	"gorm.io/gorm"
)

// inquiryRepository implements the InquiryRepository interface
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository instance
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create stores a new lead
func (r *inquiryRepository) Create(inquiry *models.Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		return err
	}
	return r.db.Create(inquiry).Error
}

// GetByID retrieves an inquiry with its vehicle by ID
func (r *inquiryRepository) GetByID(id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.Preload("Vehicle").First(&inquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// GetAll retrieves inquiries for the back office, newest first
func (r *inquiryRepository) GetAll(offset, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Preload("Vehicle").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&inquiries).Error
	return inquiries, err
}

// GetByStatus retrieves inquiries in one status, newest first
func (r *inquiryRepository) GetByStatus(status string, offset, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Preload("Vehicle").
		Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&inquiries).Error
	return inquiries, err
}

// UpdateStatus moves an inquiry to a new workflow status
func (r *inquiryRepository) UpdateStatus(id string, status string) error {
	result := r.db.Model(&models.Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of inquiries
func (r *inquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Count(&count).Error
	return count, err
}

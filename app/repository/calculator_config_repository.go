package repository

import (
	"errors"
	"fmt"

	"github.com/rvolkov-dev/autobridge/app/models"
	"gorm.io/gorm"
)

// calculatorConfigRepository implements the CalculatorConfigRepository interface
type calculatorConfigRepository struct {
	db *gorm.DB
}

// NewCalculatorConfigRepository creates a new calculator config repository instance
func NewCalculatorConfigRepository(db *gorm.DB) CalculatorConfigRepository {
	return &calculatorConfigRepository{db: db}
}

// Create inserts a new configuration. When the new record claims the active
// flag, every sibling is deactivated inside the same transaction so the
// single-active invariant holds at commit.
func (r *calculatorConfigRepository) Create(config *models.CalculatorConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if !config.IsActive {
		return r.db.Create(config).Error
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAll(tx); err != nil {
			return err
		}
		return tx.Create(config).Error
	})
}

// GetByID retrieves a configuration by its ID
func (r *calculatorConfigRepository) GetByID(id string) (*models.CalculatorConfig, error) {
	var config models.CalculatorConfig
	err := r.db.First(&config, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetActive returns the single active configuration, or nil without error
// when none exists. Callers are expected to fall back to the engine
// defaults in that case.
func (r *calculatorConfigRepository) GetActive() (*models.CalculatorConfig, error) {
	var config models.CalculatorConfig
	err := r.db.Where("is_active = ?", true).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// GetAll retrieves all configurations, newest first
func (r *calculatorConfigRepository) GetAll() ([]models.CalculatorConfig, error) {
	var configs []models.CalculatorConfig
	err := r.db.Order("created_at DESC").Find(&configs).Error
	return configs, err
}

// Update saves a configuration. The same activation rule as Create applies
// when the update sets the active flag.
func (r *calculatorConfigRepository) Update(config *models.CalculatorConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if !config.IsActive {
		return r.db.Save(config).Error
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAllExcept(tx, config.ID); err != nil {
			return err
		}
		return tx.Save(config).Error
	})
}

// Delete removes a configuration. Deleting the active one intentionally
// leaves zero active rows; pricing then runs on the engine defaults.
func (r *calculatorConfigRepository) Delete(id string) error {
	return r.db.Delete(&models.CalculatorConfig{}, "id = ?", id).Error
}

// SetActive promotes the given configuration to be the single active one.
// Deactivation and activation run in one transaction; a missing target
// rolls the whole operation back, so a concurrent writer can never observe
// two active rows or lose the previous active one to a failed promotion.
func (r *calculatorConfigRepository) SetActive(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAllExcept(tx, id); err != nil {
			return err
		}

		result := tx.Model(&models.CalculatorConfig{}).
			Where("id = ?", id).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("activate config %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// Count returns the total number of configurations
func (r *calculatorConfigRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.CalculatorConfig{}).Count(&count).Error
	return count, err
}

func deactivateAll(tx *gorm.DB) error {
	return tx.Model(&models.CalculatorConfig{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

func deactivateAllExcept(tx *gorm.DB, id string) error {
	return tx.Model(&models.CalculatorConfig{}).
		Where("is_active = ? AND id != ?", true, id).
		Update("is_active", false).Error
}

package repository

import (
	"strings"

	"github.com/rvolkov-dev/autobridge/app/models"
	"gorm.io/gorm"
)

// vehicleRepository implements the VehicleRepository interface
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle with its relations
func (r *vehicleRepository) Create(vehicle *models.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	return r.db.Create(vehicle).Error
}

// GetByID retrieves a vehicle with all relations by its ID
func (r *vehicleRepository) GetByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.withRelations(r.db).First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetBySlug retrieves a published vehicle by its catalog slug
func (r *vehicleRepository) GetBySlug(slug string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.withRelations(r.db).
		Where("slug = ? AND status = ?", slug, models.VEHICLE_STATUS_PUBLISHED).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetPublished retrieves published vehicles matching the filter, newest first
func (r *vehicleRepository) GetPublished(filter VehicleFilter) ([]models.Vehicle, error) {
	query := r.withRelations(r.db).Where("status = ?", models.VEHICLE_STATUS_PUBLISHED)
	query = applyVehicleFilter(query, filter)

	var vehicles []models.Vehicle
	err := query.Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

// GetFeatured retrieves the most recent published vehicles for the landing page
func (r *vehicleRepository) GetFeatured(limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.withRelations(r.db).
		Where("status = ?", models.VEHICLE_STATUS_PUBLISHED).
		Order("created_at DESC").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

// GetAll retrieves vehicles in any status for the back office
func (r *vehicleRepository) GetAll(offset, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.withRelations(r.db).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

// Update updates an existing vehicle
func (r *vehicleRepository) Update(vehicle *models.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	return r.db.Save(vehicle).Error
}

// Delete soft deletes a vehicle by its ID
func (r *vehicleRepository) Delete(id string) error {
	return r.db.Delete(&models.Vehicle{}, "id = ?", id).Error
}

// Count returns the total number of vehicles
func (r *vehicleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *vehicleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *vehicleRepository) SlugExistsExceptID(slug string, id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

func (r *vehicleRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Specifications", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Logistics", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Documents")
}

func applyVehicleFilter(query *gorm.DB, filter VehicleFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern, pattern)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.Model != "" {
		query = query.Where("model = ?", filter.Model)
	}
	if len(filter.Countries) > 0 {
		query = query.Where("country IN ?", filter.Countries)
	}
	if len(filter.BodyTypes) > 0 {
		query = query.Where("body_type IN ?", filter.BodyTypes)
	}
	if len(filter.FuelTypes) > 0 {
		query = query.Where("fuel_type IN ?", filter.FuelTypes)
	}
	if len(filter.Transmissions) > 0 {
		query = query.Where("transmission IN ?", filter.Transmissions)
	}
	if len(filter.Colors) > 0 {
		query = query.Where("color IN ?", filter.Colors)
	}
	if filter.MinPriceEURCents > 0 {
		query = query.Where("base_price_eur_cents >= ?", filter.MinPriceEURCents)
	}
	if filter.MaxPriceEURCents > 0 {
		query = query.Where("base_price_eur_cents <= ?", filter.MaxPriceEURCents)
	}
	if filter.MinYear > 0 {
		query = query.Where("year >= ?", filter.MinYear)
	}
	if filter.MaxYear > 0 {
		query = query.Where("year <= ?", filter.MaxYear)
	}
	if filter.MinMileage > 0 {
		query = query.Where("mileage >= ?", filter.MinMileage)
	}
	if filter.MaxMileage > 0 {
		query = query.Where("mileage <= ?", filter.MaxMileage)
	}
	if filter.MinEngineVolume > 0 {
		query = query.Where("engine_volume_cc >= ?", filter.MinEngineVolume)
	}
	if filter.MaxEngineVolume > 0 {
		query = query.Where("engine_volume_cc <= ?", filter.MaxEngineVolume)
	}
	if filter.MinPowerHp > 0 {
		query = query.Where("power_hp >= ?", filter.MinPowerHp)
	}
	if filter.MaxPowerHp > 0 {
		query = query.Where("power_hp <= ?", filter.MaxPowerHp)
	}
	return query
}

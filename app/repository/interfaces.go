package repository

import (
	"github.com/rvolkov-dev/autobridge/app/models"
	"gorm.io/gorm"
)

// CalculatorConfigRepository defines the lifecycle operations for pricing
// configurations. Every write that activates a config must deactivate all
// siblings in the same transaction so that at most one row is active.
type CalculatorConfigRepository interface {
	Create(config *models.CalculatorConfig) error
	GetByID(id string) (*models.CalculatorConfig, error)
	// GetActive returns (nil, nil) when no configuration is active.
	GetActive() (*models.CalculatorConfig, error)
	GetAll() ([]models.CalculatorConfig, error)
	Update(config *models.CalculatorConfig) error
	Delete(id string) error
	SetActive(id string) error
	Count() (int64, error)
}

// VehicleFilter narrows public catalog reads. Zero values mean "no filter".
type VehicleFilter struct {
	Search        string
	Brand         string
	Model         string
	Countries     []string
	BodyTypes     []string
	FuelTypes     []string
	Transmissions []string
	Colors        []string

	MinPriceEURCents int64
	MaxPriceEURCents int64
	MinYear          int
	MaxYear          int
	MinMileage       int
	MaxMileage       int
	MinEngineVolume  int
	MaxEngineVolume  int
	MinPowerHp       int
	MaxPowerHp       int
}

// VehicleRepository defines the interface for catalog database operations
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id string) (*models.Vehicle, error)
	GetBySlug(slug string) (*models.Vehicle, error)
	GetPublished(filter VehicleFilter) ([]models.Vehicle, error)
	GetFeatured(limit int) ([]models.Vehicle, error)
	GetAll(offset, limit int) ([]models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	Delete(id string) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id string) (bool, error)
}

// InquiryRepository defines the interface for lead operations
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	GetByID(id string) (*models.Inquiry, error)
	GetAll(offset, limit int) ([]models.Inquiry, error)
	GetByStatus(status string, offset, limit int) ([]models.Inquiry, error)
	UpdateStatus(id string, status string) error
	Count() (int64, error)
}

// ExchangeRateRepository defines the interface for cached currency rates
type ExchangeRateRepository interface {
	// GetPair returns (nil, nil) when the pair has never been fetched.
	GetPair(base, target string) (*models.ExchangeRate, error)
	Upsert(rate *models.ExchangeRate) error
}

// UserRepository defines the interface for back-office accounts
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	CalculatorConfig CalculatorConfigRepository
	Vehicle          VehicleRepository
	Inquiry          InquiryRepository
	ExchangeRate     ExchangeRateRepository
	User             UserRepository
	Setting          SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		CalculatorConfig: NewCalculatorConfigRepository(db),
		Vehicle:          NewVehicleRepository(db),
		Inquiry:          NewInquiryRepository(db),
		ExchangeRate:     NewExchangeRateRepository(db),
		User:             NewUserRepository(db),
		Setting:          NewSettingRepository(db),
	}
}

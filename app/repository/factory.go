package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetCalculatorConfigRepository returns the calculator config repository instance
func (f *Factory) GetCalculatorConfigRepository() CalculatorConfigRepository {
	return f.GetRepositories().CalculatorConfig
}

// GetVehicleRepository returns the vehicle repository instance
func (f *Factory) GetVehicleRepository() VehicleRepository {
	return f.GetRepositories().Vehicle
}

// GetInquiryRepository returns the inquiry repository instance
func (f *Factory) GetInquiryRepository() InquiryRepository {
	return f.GetRepositories().Inquiry
}

// GetExchangeRateRepository returns the exchange rate repository instance
func (f *Factory) GetExchangeRateRepository() ExchangeRateRepository {
	return f.GetRepositories().ExchangeRate
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetSettingRepository returns the setting repository instance
func (f *Factory) GetSettingRepository() SettingRepository {
	return f.GetRepositories().Setting
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

package repository

import (
	"errors"

	"github.com/rvolkov-dev/autobridge/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// exchangeRateRepository implements the ExchangeRateRepository interface
type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository creates a new exchange rate repository instance
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &exchangeRateRepository{db: db}
}

// GetPair returns the cached rate for a currency pair, or nil without error
// when the pair was never fetched.
func (r *exchangeRateRepository) GetPair(base, target string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.Where("base_currency = ? AND target_currency = ?", base, target).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// Upsert writes the rate for its pair, overwriting a previous fetch.
func (r *exchangeRateRepository) Upsert(rate *models.ExchangeRate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base_currency"}, {Name: "target_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "fetched_at", "source"}),
	}).Create(rate).Error
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the cached conversion rate for one currency pair.
// One row per pair; refreshes overwrite rate and fetched_at in place.
type ExchangeRate struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	BaseCurrency   string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair" json:"base_currency"`
	TargetCurrency string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair" json:"target_currency"`
	Rate           decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"rate"`
	FetchedAt      time.Time       `gorm:"not null" json:"fetched_at"`
	Source         string          `gorm:"type:varchar(100);not null;default:'cbr-xml-daily'" json:"source"`
}

// IsFresh reports whether the cached rate is younger than ttl.
func (r *ExchangeRate) IsFresh(ttl time.Duration) bool {
	return time.Since(r.FetchedAt) < ttl
}

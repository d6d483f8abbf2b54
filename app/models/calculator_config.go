package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// PercentScale and AmountScale are the storage scales for decimal columns.
	// Values with more places are truncated in BeforeSave.
	PercentScale = 4
	AmountScale  = 2
)

// CalculatorConfig is a named bundle of landed-cost pricing parameters.
// At most one config is active at any time; the activation rule is enforced
// transactionally in the repository layer, never here.
type CalculatorConfig struct {
	ID                string `gorm:"type:char(36);primaryKey" json:"id"`
	Name              string `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Description       string `gorm:"type:text" json:"description"`
	IsActive          bool   `gorm:"default:false;index" json:"is_active"`
	AppliesToVehicles bool   `gorm:"default:true" json:"applies_to_vehicles"`

	LogisticsBaseCost  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"logistics_base_cost"`
	LogisticsCostPerKm decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"logistics_cost_per_km"`
	DutyPercent        decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"duty_percent"`
	ExciseBaseCost     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"excise_base_cost"`
	RecyclingBaseCost  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"recycling_base_cost"`
	VATPercent         decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"vat_percent"`
	BrokerBaseCost     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"broker_base_cost"`
	CommissionPercent  decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"commission_percent"`

	InsurancePercent            decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"insurance_percent"`
	ServiceFeeIndividualPercent decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"service_fee_individual_percent"`
	ServiceFeeCompanyPercent    decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"service_fee_company_percent"`
	DocumentPackageCost         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"document_package_cost"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *CalculatorConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave truncates every decimal field to its storage scale so that the
// value written equals the value read back.
func (c *CalculatorConfig) BeforeSave(tx *gorm.DB) error {
	for _, p := range c.percentFields() {
		*p = p.Truncate(PercentScale)
	}
	for _, a := range c.amountFields() {
		*a = a.Truncate(AmountScale)
	}
	return nil
}

func (c *CalculatorConfig) percentFields() []*decimal.Decimal {
	return []*decimal.Decimal{
		&c.LogisticsCostPerKm,
		&c.DutyPercent,
		&c.VATPercent,
		&c.CommissionPercent,
		&c.InsurancePercent,
		&c.ServiceFeeIndividualPercent,
		&c.ServiceFeeCompanyPercent,
	}
}

func (c *CalculatorConfig) amountFields() []*decimal.Decimal {
	return []*decimal.Decimal{
		&c.LogisticsBaseCost,
		&c.ExciseBaseCost,
		&c.RecyclingBaseCost,
		&c.BrokerBaseCost,
		&c.DocumentPackageCost,
	}
}

// Validate checks the string fields via validator tags and the decimal
// fields by hand, since validator cannot range-check decimal.Decimal.
func (c *CalculatorConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	hundred := decimal.NewFromInt(100)
	percents := map[string]decimal.Decimal{
		"duty_percent":                   c.DutyPercent,
		"vat_percent":                    c.VATPercent,
		"commission_percent":             c.CommissionPercent,
		"insurance_percent":              c.InsurancePercent,
		"service_fee_individual_percent": c.ServiceFeeIndividualPercent,
		"service_fee_company_percent":    c.ServiceFeeCompanyPercent,
	}
	for field, value := range percents {
		if value.IsNegative() || value.GreaterThan(hundred) {
			return fmt.Errorf("field %s: percentage must be between 0 and 100, got %s", field, value)
		}
	}

	amounts := map[string]decimal.Decimal{
		"logistics_base_cost":   c.LogisticsBaseCost,
		"logistics_cost_per_km": c.LogisticsCostPerKm,
		"excise_base_cost":      c.ExciseBaseCost,
		"recycling_base_cost":   c.RecyclingBaseCost,
		"broker_base_cost":      c.BrokerBaseCost,
		"document_package_cost": c.DocumentPackageCost,
	}
	for field, value := range amounts {
		if value.IsNegative() {
			return fmt.Errorf("field %s: amount must not be negative, got %s", field, value)
		}
	}

	return nil
}

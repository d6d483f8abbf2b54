package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/models"
)

// CertificationCost is the flat certification fee folded into the document
// line of per-vehicle breakdowns, in destination-currency units.
var CertificationCost = decimal.NewFromInt(28000)

// Settings carries every pricing parameter the engine can consume. It is a
// plain value detached from persistence so the engine stays pure.
type Settings struct {
	AppliesToVehicles bool

	LogisticsBaseCost  decimal.Decimal
	LogisticsCostPerKm decimal.Decimal
	DutyPercent        decimal.Decimal
	ExciseBaseCost     decimal.Decimal
	RecyclingBaseCost  decimal.Decimal
	VATPercent         decimal.Decimal
	BrokerBaseCost     decimal.Decimal
	CommissionPercent  decimal.Decimal

	InsurancePercent            decimal.Decimal
	ServiceFeeIndividualPercent decimal.Decimal
	ServiceFeeCompanyPercent    decimal.Decimal
	DocumentPackageCost         decimal.Decimal
}

// DefaultSettings returns the built-in rate table used whenever no calculator
// config exists. Callers must be able to price with these alone.
func DefaultSettings() Settings {
	return Settings{
		AppliesToVehicles:           true,
		LogisticsBaseCost:           decimal.NewFromInt(180000),
		LogisticsCostPerKm:          decimal.Zero,
		DutyPercent:                 decimal.NewFromInt(12),
		ExciseBaseCost:              decimal.Zero,
		RecyclingBaseCost:           decimal.NewFromInt(34000),
		VATPercent:                  decimal.NewFromInt(20),
		BrokerBaseCost:              decimal.NewFromInt(45000),
		CommissionPercent:           decimal.NewFromInt(5),
		InsurancePercent:            decimal.RequireFromString("1.2"),
		ServiceFeeIndividualPercent: decimal.RequireFromString("0.9"),
		ServiceFeeCompanyPercent:    decimal.RequireFromString("1.2"),
		DocumentPackageCost:         decimal.NewFromInt(45000),
	}
}

// SettingsFromConfig maps a stored calculator config onto engine settings.
// A nil config yields the defaults, which is the contract for "no active
// configuration": pricing keeps working instead of failing.
func SettingsFromConfig(cfg *models.CalculatorConfig) Settings {
	if cfg == nil {
		return DefaultSettings()
	}

	return Settings{
		AppliesToVehicles:           cfg.AppliesToVehicles,
		LogisticsBaseCost:           cfg.LogisticsBaseCost,
		LogisticsCostPerKm:          cfg.LogisticsCostPerKm,
		DutyPercent:                 cfg.DutyPercent,
		ExciseBaseCost:              cfg.ExciseBaseCost,
		RecyclingBaseCost:           cfg.RecyclingBaseCost,
		VATPercent:                  cfg.VATPercent,
		BrokerBaseCost:              cfg.BrokerBaseCost,
		CommissionPercent:           cfg.CommissionPercent,
		InsurancePercent:            cfg.InsurancePercent,
		ServiceFeeIndividualPercent: cfg.ServiceFeeIndividualPercent,
		ServiceFeeCompanyPercent:    cfg.ServiceFeeCompanyPercent,
		DocumentPackageCost:         cfg.DocumentPackageCost,
	}
}

// ResolveLogistics computes the flat logistics amount for a delivery
// distance: base cost plus the per-kilometre rate times the distance.
func (s Settings) ResolveLogistics(distanceKm decimal.Decimal) decimal.Decimal {
	if distanceKm.IsNegative() || distanceKm.IsZero() {
		return s.LogisticsBaseCost
	}
	return s.LogisticsBaseCost.Add(s.LogisticsCostPerKm.Mul(distanceKm))
}

// ServiceFeePercent returns the audience-specific service fee rate.
func (s Settings) ServiceFeePercent(audience Audience) decimal.Decimal {
	if audience == AudienceCompany {
		return s.ServiceFeeCompanyPercent
	}
	return s.ServiceFeeIndividualPercent
}

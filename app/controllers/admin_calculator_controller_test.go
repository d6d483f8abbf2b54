package controllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvolkov-dev/autobridge/internal/pkg/pricing"
)

func TestConfigFromDefaultsMatchesEngineDefaults(t *testing.T) {
	t.Parallel()

	cfg := configFromDefaults()
	defaults := pricing.DefaultSettings()

	assert.True(t, cfg.AppliesToVehicles)
	assert.True(t, cfg.LogisticsBaseCost.Equal(defaults.LogisticsBaseCost))
	assert.True(t, cfg.DutyPercent.Equal(defaults.DutyPercent))
	assert.True(t, cfg.VATPercent.Equal(defaults.VATPercent))
	assert.True(t, cfg.ServiceFeeIndividualPercent.Equal(defaults.ServiceFeeIndividualPercent))
	assert.True(t, cfg.ServiceFeeCompanyPercent.Equal(defaults.ServiceFeeCompanyPercent))
	assert.True(t, cfg.DocumentPackageCost.Equal(defaults.DocumentPackageCost))
}

func TestConfigRequestAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	cfg := configFromDefaults()
	name := "winter rates"
	duty := decimal.RequireFromString("15.5")
	active := true

	req := configRequest{
		Name:        &name,
		IsActive:    &active,
		DutyPercent: &duty,
	}
	req.applyTo(cfg)

	assert.Equal(t, "winter rates", cfg.Name)
	assert.True(t, cfg.IsActive)
	assert.True(t, cfg.DutyPercent.Equal(duty), "duty %s", cfg.DutyPercent)

	// Untouched fields keep their defaults
	defaults := pricing.DefaultSettings()
	assert.True(t, cfg.VATPercent.Equal(defaults.VATPercent))
	assert.True(t, cfg.BrokerBaseCost.Equal(defaults.BrokerBaseCost))
}

func TestConfigRequestZeroValuesAreApplied(t *testing.T) {
	t.Parallel()

	cfg := configFromDefaults()
	zero := decimal.Zero

	req := configRequest{RecyclingBaseCost: &zero, CommissionPercent: &zero}
	req.applyTo(cfg)

	assert.True(t, cfg.RecyclingBaseCost.IsZero())
	assert.True(t, cfg.CommissionPercent.IsZero())
}

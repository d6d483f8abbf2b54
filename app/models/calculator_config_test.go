package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *CalculatorConfig {
	return &CalculatorConfig{
		Name:                        "baseline",
		LogisticsBaseCost:           decimal.NewFromInt(180000),
		DutyPercent:                 decimal.NewFromInt(12),
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

func TestCalculatorConfigValidateAcceptsBaseline(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestCalculatorConfigValidateRequiresName(t *testing.T) {
	cfg := validConfig()
	cfg.Name = ""
	assert.Error(t, cfg.Validate())
}

func TestCalculatorConfigValidateRejectsPercentOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CalculatorConfig)
	}{
		{"negative duty", func(c *CalculatorConfig) { c.DutyPercent = decimal.NewFromInt(-1) }},
		{"vat above hundred", func(c *CalculatorConfig) { c.VATPercent = decimal.NewFromInt(101) }},
		{"negative commission", func(c *CalculatorConfig) { c.CommissionPercent = decimal.NewFromInt(-5) }},
		{"negative service fee", func(c *CalculatorConfig) { c.ServiceFeeCompanyPercent = decimal.NewFromInt(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCalculatorConfigValidateRejectsNegativeAmounts(t *testing.T) {
	cfg := validConfig()
	cfg.BrokerBaseCost = decimal.NewFromInt(-100)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker_base_cost")
}

func TestCalculatorConfigBeforeSaveTruncatesScales(t *testing.T) {
	cfg := validConfig()
	cfg.DutyPercent = decimal.RequireFromString("12.99999")
	cfg.LogisticsBaseCost = decimal.RequireFromString("180000.999")

	require.NoError(t, cfg.BeforeSave(nil))

	assert.True(t, cfg.DutyPercent.Equal(decimal.RequireFromString("12.9999")), "duty %s", cfg.DutyPercent)
	assert.True(t, cfg.LogisticsBaseCost.Equal(decimal.RequireFromString("180000.99")), "logistics %s", cfg.LogisticsBaseCost)
}

func TestCalculatorConfigBeforeCreateAssignsID(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.BeforeCreate(nil))
	assert.Len(t, cfg.ID, 36)

	// An explicit ID is preserved
	fixed := validConfig()
	fixed.ID = "11111111-1111-1111-1111-111111111111"
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", fixed.ID)
}

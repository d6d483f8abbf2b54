package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvolkov-dev/autobridge/app/models"
)

func TestDefaultSettingsMatchContract(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.AppliesToVehicles)
	assert.True(t, s.LogisticsBaseCost.Equal(d("180000")))
	assert.True(t, s.LogisticsCostPerKm.Equal(decimal.Zero))
	assert.True(t, s.DutyPercent.Equal(d("12")))
	assert.True(t, s.ExciseBaseCost.Equal(decimal.Zero))
	assert.True(t, s.RecyclingBaseCost.Equal(d("34000")))
	assert.True(t, s.VATPercent.Equal(d("20")))
	assert.True(t, s.BrokerBaseCost.Equal(d("45000")))
	assert.True(t, s.CommissionPercent.Equal(d("5")))
	assert.True(t, s.InsurancePercent.Equal(d("1.2")))
	assert.True(t, s.ServiceFeeIndividualPercent.Equal(d("0.9")))
	assert.True(t, s.ServiceFeeCompanyPercent.Equal(d("1.2")))
	assert.True(t, s.DocumentPackageCost.Equal(d("45000")))
}

func TestSettingsFromNilConfigYieldsDefaults(t *testing.T) {
	assert.Equal(t, DefaultSettings(), SettingsFromConfig(nil))
}

func TestSettingsFromConfigCopiesEveryField(t *testing.T) {
	cfg := &models.CalculatorConfig{
		AppliesToVehicles:           false,
		LogisticsBaseCost:           d("200000"),
		LogisticsCostPerKm:          d("12.5"),
		DutyPercent:                 d("10"),
		ExciseBaseCost:              d("5000"),
		RecyclingBaseCost:           d("30000"),
		VATPercent:                  d("18"),
		BrokerBaseCost:              d("40000"),
		CommissionPercent:           d("4"),
		InsurancePercent:            d("1.5"),
		ServiceFeeIndividualPercent: d("1"),
		ServiceFeeCompanyPercent:    d("1.4"),
		DocumentPackageCost:         d("50000"),
	}

	s := SettingsFromConfig(cfg)

	assert.False(t, s.AppliesToVehicles)
	assert.True(t, s.LogisticsBaseCost.Equal(d("200000")))
	assert.True(t, s.LogisticsCostPerKm.Equal(d("12.5")))
	assert.True(t, s.DutyPercent.Equal(d("10")))
	assert.True(t, s.ExciseBaseCost.Equal(d("5000")))
	assert.True(t, s.RecyclingBaseCost.Equal(d("30000")))
	assert.True(t, s.VATPercent.Equal(d("18")))
	assert.True(t, s.BrokerBaseCost.Equal(d("40000")))
	assert.True(t, s.CommissionPercent.Equal(d("4")))
	assert.True(t, s.InsurancePercent.Equal(d("1.5")))
	assert.True(t, s.ServiceFeeIndividualPercent.Equal(d("1")))
	assert.True(t, s.ServiceFeeCompanyPercent.Equal(d("1.4")))
	assert.True(t, s.DocumentPackageCost.Equal(d("50000")))
}

func TestFormatRUB(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "6574800", want: "6 574 800 ₽"},
		{in: "0", want: "0 ₽"},
		{in: "999", want: "999 ₽"},
		{in: "1000", want: "1 000 ₽"},
		{in: "1050800.49", want: "1 050 800 ₽"},
		{in: "1050800.5", want: "1 050 801 ₽"},
		{in: "-45000", want: "-45 000 ₽"},
	}

	for _, tt := range tests {
		if got := FormatRUB(d(tt.in)); got != tt.want {
			t.Fatalf("FormatRUB(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

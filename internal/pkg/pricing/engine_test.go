package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// The reference computation: 45 000 EUR at a rate of 100 with the default
// rate table and no optional lines.
func referenceInput() Input {
	return Input{
		BasePrice:         d("45000"),
		ExchangeRate:      d("100"),
		Logistics:         d("180000"),
		DutyPercent:       d("12"),
		Excise:            d("0"),
		Recycling:         d("34000"),
		VATPercent:        d("20"),
		Broker:            d("45000"),
		CommissionPercent: d("5"),
	}
}

func TestCalculateReferenceExample(t *testing.T) {
	b, err := Calculate(referenceInput())
	require.NoError(t, err)

	assert.True(t, b.BaseInDestination.Equal(d("4500000")), "base = %s", b.BaseInDestination)
	assert.True(t, b.Duty.Equal(d("540000")), "duty = %s", b.Duty)
	assert.True(t, b.VAT.Equal(d("1050800")), "vat = %s", b.VAT)
	assert.True(t, b.Commission.Equal(d("225000")), "commission = %s", b.Commission)
	assert.True(t, b.Total.Equal(d("6574800")), "total = %s", b.Total)
}

func TestCalculateIdentityCase(t *testing.T) {
	in := Input{
		BasePrice:    d("12345.67"),
		ExchangeRate: d("90.5"),
	}

	b, err := Calculate(in)
	require.NoError(t, err)

	assert.True(t, b.Total.Equal(b.BaseInDestination), "total %s != base %s", b.Total, b.BaseInDestination)
}

func TestCalculateVATBaseExcludesFees(t *testing.T) {
	// With zero duty, excise, recycling and logistics the VAT must equal
	// base × vatPercent / 100 even when broker, commission and document
	// fees are present.
	in := Input{
		BasePrice:         d("10000"),
		ExchangeRate:      d("100"),
		VATPercent:        d("20"),
		Broker:            d("45000"),
		CommissionPercent: d("5"),
		DocumentPackage:   d("45000"),
	}

	b, err := Calculate(in)
	require.NoError(t, err)

	want := b.BaseInDestination.Mul(d("20")).Div(d("100"))
	assert.True(t, b.VAT.Equal(want), "vat %s, want %s", b.VAT, want)
}

func TestCalculateCommissionIndependentOfTaxRates(t *testing.T) {
	base := referenceInput()

	first, err := Calculate(base)
	require.NoError(t, err)

	base.DutyPercent = d("33")
	base.VATPercent = d("7.5")
	second, err := Calculate(base)
	require.NoError(t, err)

	assert.True(t, first.Commission.Equal(second.Commission),
		"commission moved from %s to %s when only tax rates changed", first.Commission, second.Commission)
}

func TestCalculateTotalNeverBelowBase(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "defaults", in: referenceInput()},
		{name: "tiny price", in: Input{BasePrice: d("0.01"), ExchangeRate: d("1")}},
		{name: "all lines", in: Input{
			BasePrice:         d("99999.99"),
			ExchangeRate:      d("104.3"),
			Logistics:         d("250000"),
			DutyPercent:       d("15"),
			Excise:            d("12000"),
			Recycling:         d("34000"),
			VATPercent:        d("20"),
			Broker:            d("45000"),
			CommissionPercent: d("5"),
			InsurancePercent:  d("1.2"),
			ServiceFeePercent: d("0.9"),
			DocumentPackage:   d("73000"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.True(t, b.Total.GreaterThanOrEqual(b.BaseInDestination),
				"total %s below base %s", b.Total, b.BaseInDestination)
		})
	}
}

func TestCalculateDocumentPackageInTotal(t *testing.T) {
	withoutDocs := referenceInput()
	withDocs := referenceInput()
	withDocs.DocumentPackage = d("45000")

	plain, err := Calculate(withoutDocs)
	require.NoError(t, err)
	documented, err := Calculate(withDocs)
	require.NoError(t, err)

	assert.True(t, documented.Total.Sub(plain.Total).Equal(d("45000")),
		"document package must shift the total by exactly its amount")
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Input)
		field string
	}{
		{name: "zero base price", mod: func(in *Input) { in.BasePrice = decimal.Zero }, field: "base_price"},
		{name: "negative base price", mod: func(in *Input) { in.BasePrice = d("-1") }, field: "base_price"},
		{name: "zero exchange rate", mod: func(in *Input) { in.ExchangeRate = decimal.Zero }, field: "exchange_rate"},
		{name: "negative exchange rate", mod: func(in *Input) { in.ExchangeRate = d("-100") }, field: "exchange_rate"},
		{name: "negative logistics", mod: func(in *Input) { in.Logistics = d("-0.01") }, field: "logistics"},
		{name: "negative vat percent", mod: func(in *Input) { in.VATPercent = d("-20") }, field: "vat_percent"},
		{name: "negative commission", mod: func(in *Input) { in.CommissionPercent = d("-5") }, field: "commission_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.mod(&in)

			b, err := Calculate(in)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.True(t, b.Total.IsZero(), "no partial result on validation failure")
		})
	}
}

func TestCalculateKeepsFullPrecision(t *testing.T) {
	// 1/3-style rates must not accumulate float drift across the sum.
	in := Input{
		BasePrice:         d("10000.33"),
		ExchangeRate:      d("91.4567"),
		Logistics:         d("180000"),
		DutyPercent:       d("12.5"),
		Recycling:         d("34000"),
		VATPercent:        d("20"),
		Broker:            d("45000"),
		CommissionPercent: d("5"),
	}

	b, err := Calculate(in)
	require.NoError(t, err)

	base := d("10000.33").Mul(d("91.4567"))
	duty := base.Mul(d("12.5")).Div(d("100"))
	vat := base.Add(duty).Add(d("34000")).Add(d("180000")).Mul(d("20")).Div(d("100"))
	commission := base.Mul(d("5")).Div(d("100"))
	total := base.Add(d("180000")).Add(duty).Add(d("34000")).Add(vat).Add(d("45000")).Add(commission)

	assert.True(t, b.Total.Equal(total), "total %s, want %s", b.Total, total)
}

package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/models"
)

func TestAudienceVariantsDifferOnlyInServiceFee(t *testing.T) {
	s := DefaultSettings()
	in := QuoteInput(d("45000"), d("100"), decimal.Zero, s)
	in.InsurancePercent = s.InsurancePercent

	individual, err := ComputeForIndividual(in, s)
	if err != nil {
		t.Fatalf("individual: %v", err)
	}
	company, err := ComputeForCompany(in, s)
	if err != nil {
		t.Fatalf("company: %v", err)
	}

	if individual.Audience != AudienceIndividual || company.Audience != AudienceCompany {
		t.Fatalf("audience tags wrong: %s / %s", individual.Audience, company.Audience)
	}

	// Every line except the service fee and total must match exactly.
	if !individual.BaseInDestination.Equal(company.BaseInDestination) ||
		!individual.Duty.Equal(company.Duty) ||
		!individual.VAT.Equal(company.VAT) ||
		!individual.Commission.Equal(company.Commission) ||
		!individual.Insurance.Equal(company.Insurance) ||
		!individual.Broker.Equal(company.Broker) {
		t.Fatalf("audience variants diverged outside the service fee")
	}

	feeDiff := company.ServiceFee.Sub(individual.ServiceFee)
	totalDiff := company.Total.Sub(individual.Total)
	if !feeDiff.Equal(totalDiff) {
		t.Fatalf("total diff %s != service fee diff %s", totalDiff, feeDiff)
	}

	// Default rates: 1.2% company vs 0.9% individual on a 4.5M base.
	wantDiff := d("4500000").Mul(d("0.3")).Div(d("100"))
	if !feeDiff.Equal(wantDiff) {
		t.Fatalf("service fee diff %s, want %s", feeDiff, wantDiff)
	}
}

func TestQuoteInputResolvesLogisticsFromDistance(t *testing.T) {
	s := DefaultSettings()
	s.LogisticsCostPerKm = d("25.5")

	in := QuoteInput(d("10000"), d("100"), d("1200"), s)

	want := d("180000").Add(d("25.5").Mul(d("1200")))
	if !in.Logistics.Equal(want) {
		t.Fatalf("logistics %s, want %s", in.Logistics, want)
	}

	// Zero distance keeps the flat base cost.
	flat := QuoteInput(d("10000"), d("100"), decimal.Zero, s)
	if !flat.Logistics.Equal(d("180000")) {
		t.Fatalf("flat logistics %s, want 180000", flat.Logistics)
	}
}

func TestQuoteInputLeavesOptionalLinesZero(t *testing.T) {
	in := QuoteInput(d("45000"), d("100"), decimal.Zero, DefaultSettings())

	if !in.InsurancePercent.IsZero() || !in.ServiceFeePercent.IsZero() || !in.DocumentPackage.IsZero() {
		t.Fatalf("quote input must not price insurance, service or documents")
	}
}

func TestVehicleInputHonorsBpsOverrides(t *testing.T) {
	vatBps := 1000
	dutyBps := 1550
	v := &models.Vehicle{
		BasePriceEURCents: 4500000, // 45 000 EUR
		VATRateBps:        &vatBps,
		CustomsDutyBps:    &dutyBps,
	}

	in := VehicleInput(v, d("100"), DefaultSettings())

	if !in.VATPercent.Equal(d("10")) {
		t.Fatalf("vat percent %s, want 10", in.VATPercent)
	}
	if !in.DutyPercent.Equal(d("15.5")) {
		t.Fatalf("duty percent %s, want 15.5", in.DutyPercent)
	}
	if !in.BasePrice.Equal(d("45000")) {
		t.Fatalf("base price %s, want 45000", in.BasePrice)
	}
	if !in.DocumentPackage.Equal(d("73000")) {
		t.Fatalf("document line %s, want 45000 + 28000 certification", in.DocumentPackage)
	}
}

func TestVehicleInputFallsBackWhenConfigIsCalculatorOnly(t *testing.T) {
	s := DefaultSettings()
	s.AppliesToVehicles = false
	s.DutyPercent = d("99")

	v := &models.Vehicle{BasePriceEURCents: 1000000}
	in := VehicleInput(v, d("100"), s)

	if !in.DutyPercent.Equal(d("12")) {
		t.Fatalf("calculator-only config leaked into vehicle pricing: duty %s", in.DutyPercent)
	}
}

func TestVehicleBreakdownSharesEngineContract(t *testing.T) {
	v := &models.Vehicle{BasePriceEURCents: 4500000}
	s := DefaultSettings()

	b, err := VehicleBreakdown(v, d("100"), AudienceCompany, s)
	if err != nil {
		t.Fatalf("vehicle breakdown: %v", err)
	}

	direct, err := Calculate(VehicleInput(v, d("100"), s))
	if err != nil {
		t.Fatalf("direct calculate: %v", err)
	}

	// The presenter adds only the audience service fee on top of the raw
	// engine result.
	fee := b.BaseInDestination.Mul(s.ServiceFeeCompanyPercent).Div(d("100"))
	if !b.Total.Equal(direct.Total.Add(fee)) {
		t.Fatalf("vehicle total %s, want %s", b.Total, direct.Total.Add(fee))
	}
}

func TestParseAudience(t *testing.T) {
	tests := []struct {
		in   string
		want Audience
	}{
		{in: "COMPANY", want: AudienceCompany},
		{in: "company", want: AudienceCompany},
		{in: "INDIVIDUAL", want: AudienceIndividual},
		{in: "individual", want: AudienceIndividual},
		{in: "", want: AudienceIndividual},
		{in: "garbage", want: AudienceIndividual},
	}

	for _, tt := range tests {
		if got := ParseAudience(tt.in); got != tt.want {
			t.Fatalf("ParseAudience(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/models"
)

// Audience selects which service-fee rate applies to a breakdown. VAT is
// the same for both audiences; a caller that needs a different VAT
// treatment sets Input.VATPercent before delegating.
type Audience string

const (
	AudienceIndividual Audience = "INDIVIDUAL"
	AudienceCompany    Audience = "COMPANY"
)

// ParseAudience maps a request value onto an audience, defaulting to
// individual for anything unrecognized.
func ParseAudience(value string) Audience {
	switch value {
	case string(AudienceCompany), models.CUSTOMER_TYPE_COMPANY:
		return AudienceCompany
	default:
		return AudienceIndividual
	}
}

// CustomerType returns the persistence value for the audience.
func (a Audience) CustomerType() string {
	if a == AudienceCompany {
		return models.CUSTOMER_TYPE_COMPANY
	}
	return models.CUSTOMER_TYPE_INDIVIDUAL
}

// QuoteInput builds the shared engine input for the standalone calculator:
// every term comes from the settings, logistics is resolved from the
// delivery distance, and the insurance and document lines stay zero so
// quote totals carry only the landed components. The service fee is filled
// in per audience at compute time.
func QuoteInput(basePrice, exchangeRate, distanceKm decimal.Decimal, s Settings) Input {
	return Input{
		BasePrice:         basePrice,
		ExchangeRate:      exchangeRate,
		Logistics:         s.ResolveLogistics(distanceKm),
		DutyPercent:       s.DutyPercent,
		Excise:            s.ExciseBaseCost,
		Recycling:         s.RecyclingBaseCost,
		VATPercent:        s.VATPercent,
		Broker:            s.BrokerBaseCost,
		CommissionPercent: s.CommissionPercent,
	}
}

// ComputeForIndividual prices the input with the individual service fee.
func ComputeForIndividual(in Input, s Settings) (Breakdown, error) {
	return computeForAudience(in, s, AudienceIndividual)
}

// ComputeForCompany prices the input with the company service fee. The two
// audience calls are independent and differ only in the service-fee term,
// so their totals are directly comparable.
func ComputeForCompany(in Input, s Settings) (Breakdown, error) {
	return computeForAudience(in, s, AudienceCompany)
}

func computeForAudience(in Input, s Settings, audience Audience) (Breakdown, error) {
	in.ServiceFeePercent = s.ServiceFeePercent(audience)
	b, err := Calculate(in)
	if err != nil {
		return Breakdown{}, err
	}
	b.Audience = audience
	return b, nil
}

// VehicleInput resolves the engine input for a catalog vehicle: the duty
// and VAT rates honor per-vehicle basis-point overrides, flat costs come
// from the settings, and the document line carries the document package
// plus the certification fee. When the settings are not marked for vehicle
// pricing the defaults take over, mirroring the calculator-only flag.
func VehicleInput(v *models.Vehicle, exchangeRate decimal.Decimal, s Settings) Input {
	if !s.AppliesToVehicles {
		s = DefaultSettings()
	}

	dutyPercent := s.DutyPercent
	if v.CustomsDutyBps != nil {
		dutyPercent = decimal.NewFromInt(int64(*v.CustomsDutyBps)).Div(oneHundred)
	}
	vatPercent := s.VATPercent
	if v.VATRateBps != nil {
		vatPercent = decimal.NewFromInt(int64(*v.VATRateBps)).Div(oneHundred)
	}

	return Input{
		BasePrice:         decimal.NewFromInt(v.BasePriceEURCents).Div(oneHundred),
		ExchangeRate:      exchangeRate,
		Logistics:         s.LogisticsBaseCost,
		DutyPercent:       dutyPercent,
		Excise:            s.ExciseBaseCost,
		Recycling:         s.RecyclingBaseCost,
		VATPercent:        vatPercent,
		Broker:            s.BrokerBaseCost,
		CommissionPercent: s.CommissionPercent,
		InsurancePercent:  s.InsurancePercent,
		DocumentPackage:   s.DocumentPackageCost.Add(CertificationCost),
	}
}

// VehicleBreakdown prices a vehicle for one audience through the same
// engine the calculator uses.
func VehicleBreakdown(v *models.Vehicle, exchangeRate decimal.Decimal, audience Audience, s Settings) (Breakdown, error) {
	if !s.AppliesToVehicles {
		s = DefaultSettings()
	}
	return computeForAudience(VehicleInput(v, exchangeRate, s), s, audience)
}

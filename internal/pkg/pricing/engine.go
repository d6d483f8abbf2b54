package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports a malformed engine input. The engine returns it
// before computing anything, so a caller never sees a partial breakdown.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Input is the full term set for one landed-cost computation. Flat amounts
// are in destination-currency units, the base price in source currency.
// Call sites that do not price a term pass zero for it.
type Input struct {
	BasePrice    decimal.Decimal
	ExchangeRate decimal.Decimal
	Logistics    decimal.Decimal

	DutyPercent       decimal.Decimal
	Excise            decimal.Decimal
	Recycling         decimal.Decimal
	VATPercent        decimal.Decimal
	Broker            decimal.Decimal
	CommissionPercent decimal.Decimal

	InsurancePercent  decimal.Decimal
	ServiceFeePercent decimal.Decimal
	DocumentPackage   decimal.Decimal
}

// Breakdown is the itemized result of one computation. It is owned by the
// caller and never persisted; display layers round it, the engine does not.
type Breakdown struct {
	Audience Audience `json:"audience,omitempty"`

	BaseInDestination decimal.Decimal `json:"base_in_destination"`
	Logistics         decimal.Decimal `json:"logistics"`
	Duty              decimal.Decimal `json:"duty"`
	Excise            decimal.Decimal `json:"excise"`
	Recycling         decimal.Decimal `json:"recycling"`
	VAT               decimal.Decimal `json:"vat"`
	Broker            decimal.Decimal `json:"broker"`
	Commission        decimal.Decimal `json:"commission"`
	Insurance         decimal.Decimal `json:"insurance"`
	ServiceFee        decimal.Decimal `json:"service_fee"`
	DocumentPackage   decimal.Decimal `json:"document_package"`
	Total             decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// Calculate derives the full landed-cost breakdown from one input set.
// The term order is fixed: VAT is levied on the landed components (base,
// duty, excise, recycling, logistics) and never on broker, commission,
// service or document fees; commission, insurance and the service fee are
// computed on the converted base price alone. The document package, when
// supplied, is part of the total.
func Calculate(in Input) (Breakdown, error) {
	if err := validate(in); err != nil {
		return Breakdown{}, err
	}

	base := in.BasePrice.Mul(in.ExchangeRate)
	duty := base.Mul(in.DutyPercent).Div(oneHundred)
	vatBase := base.Add(duty).Add(in.Excise).Add(in.Recycling).Add(in.Logistics)
	vat := vatBase.Mul(in.VATPercent).Div(oneHundred)
	commission := base.Mul(in.CommissionPercent).Div(oneHundred)
	insurance := base.Mul(in.InsurancePercent).Div(oneHundred)
	serviceFee := base.Mul(in.ServiceFeePercent).Div(oneHundred)

	total := base.
		Add(in.Logistics).
		Add(duty).
		Add(in.Excise).
		Add(in.Recycling).
		Add(vat).
		Add(in.Broker).
		Add(commission).
		Add(insurance).
		Add(serviceFee).
		Add(in.DocumentPackage)

	return Breakdown{
		BaseInDestination: base,
		Logistics:         in.Logistics,
		Duty:              duty,
		Excise:            in.Excise,
		Recycling:         in.Recycling,
		VAT:               vat,
		Broker:            in.Broker,
		Commission:        commission,
		Insurance:         insurance,
		ServiceFee:        serviceFee,
		DocumentPackage:   in.DocumentPackage,
		Total:             total,
	}, nil
}

func validate(in Input) error {
	if !in.BasePrice.IsPositive() {
		return &ValidationError{Field: "base_price", Reason: "must be greater than zero"}
	}
	if !in.ExchangeRate.IsPositive() {
		return &ValidationError{Field: "exchange_rate", Reason: "must be greater than zero"}
	}

	nonNegative := map[string]decimal.Decimal{
		"logistics":           in.Logistics,
		"duty_percent":        in.DutyPercent,
		"excise":              in.Excise,
		"recycling":           in.Recycling,
		"vat_percent":         in.VATPercent,
		"broker":              in.Broker,
		"commission_percent":  in.CommissionPercent,
		"insurance_percent":   in.InsurancePercent,
		"service_fee_percent": in.ServiceFeePercent,
		"document_package":    in.DocumentPackage,
	}
	for field, value := range nonNegative {
		if value.IsNegative() {
			return &ValidationError{Field: field, Reason: "must not be negative"}
		}
	}

	return nil
}

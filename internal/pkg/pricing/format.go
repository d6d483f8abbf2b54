package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMinor rounds an amount to the destination currency's minor unit
// (whole rubles). Only display layers call this; breakdown math stays at
// full precision.
func RoundMinor(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FormatRUB renders an amount as a grouped ruble string, e.g. "6 574 800 ₽".
func FormatRUB(d decimal.Decimal) string {
	s := RoundMinor(d).StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₽")
	return b.String()
}

// FormattedBreakdown is the display variant of a breakdown with every line
// rounded to whole rubles.
type FormattedBreakdown struct {
	BaseInDestination string `json:"base_in_destination"`
	Logistics         string `json:"logistics"`
	Duty              string `json:"duty"`
	Excise            string `json:"excise"`
	Recycling         string `json:"recycling"`
	VAT               string `json:"vat"`
	Broker            string `json:"broker"`
	Commission        string `json:"commission"`
	Insurance         string `json:"insurance"`
	ServiceFee        string `json:"service_fee"`
	DocumentPackage   string `json:"document_package"`
	Total             string `json:"total"`
}

// Formatted renders the breakdown for display.
func (b Breakdown) Formatted() FormattedBreakdown {
	return FormattedBreakdown{
		BaseInDestination: FormatRUB(b.BaseInDestination),
		Logistics:         FormatRUB(b.Logistics),
		Duty:              FormatRUB(b.Duty),
		Excise:            FormatRUB(b.Excise),
		Recycling:         FormatRUB(b.Recycling),
		VAT:               FormatRUB(b.VAT),
		Broker:            FormatRUB(b.Broker),
		Commission:        FormatRUB(b.Commission),
		Insurance:         FormatRUB(b.Insurance),
		ServiceFee:        FormatRUB(b.ServiceFee),
		DocumentPackage:   FormatRUB(b.DocumentPackage),
		Total:             FormatRUB(b.Total),
	}
}

package domain

import "github.com/shopspring/decimal"

// PricingLine is the contribution of one ledger entry to a pricing result.
type PricingLine struct {
	WorkNumber string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// PricingResult is the outcome of one pricing computation. Values are exact
// and unrounded; rounding is a display concern.
type PricingResult struct {
	Total   decimal.Decimal
	Divisor decimal.Decimal
	Rate    decimal.Decimal

	// DivisorApplied is false when the divisor input was empty, unparsable,
	// or zero. Divisor is then 1 and Rate equals Total.
	DivisorApplied bool

	Lines []PricingLine
}

// Equal compares the aggregate figures, ignoring the per-line breakdown.
func (r PricingResult) Equal(o PricingResult) bool {
	return r.Total.Equal(o.Total) &&
		r.Divisor.Equal(o.Divisor) &&
		r.Rate.Equal(o.Rate) &&
		r.DivisorApplied == o.DivisorApplied
}

// Package pricing turns a ledger snapshot and a quantity selection into a
// total price and an hourly rate.
//
// Everything here is pure: no I/O, no stored state, and no failure mode.
// Malformed numeric input degrades to zero instead of erroring.
package pricing

import (
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Compute sums quantity × price over every ledger entry and divides the total
// by the divisor. An empty, unparsable or zero divisor means no division: the
// rate equals the total and the reported divisor is 1.
//
// Duplicate work numbers each contribute, using the same quantity entry.
func Compute(ledger domain.Ledger, quantities domain.QuantitySelection, divisorInput string) domain.PricingResult {
	total := decimal.Zero
	lines := make([]domain.PricingLine, 0, len(ledger))

	for _, item := range ledger {
		qty := ParseQuantity(quantities.Get(item.WorkNumber))
		price := ParsePrice(item.Price)
		subtotal := qty.Mul(price)
		total = total.Add(subtotal)

		lines = append(lines, domain.PricingLine{
			WorkNumber: item.WorkNumber,
			Quantity:   qty,
			UnitPrice:  price,
			Subtotal:   subtotal,
		})
	}

	result := domain.PricingResult{
		Total:   total,
		Divisor: one,
		Rate:    total,
		Lines:   lines,
	}

	if divisor, ok := ParseDecimal(divisorInput); ok && !divisor.IsZero() {
		result.Divisor = divisor
		result.Rate = total.Div(divisor)
		result.DivisorApplied = true
	}

	return result
}

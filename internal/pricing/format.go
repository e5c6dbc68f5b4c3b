package pricing

import (
	"github.com/Rhymond/go-money"
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the single currency amounts are displayed in.
const CurrencyCode = money.EUR

// Display holds the presentation strings for a pricing result.
type Display struct {
	Total   string
	Divisor string
	Rate    string
}

func currency() money.Currency {
	// money.New always resolves a currency, unlike a bare lookup.
	return *money.New(0, CurrencyCode).Currency()
}

// FormatAmount renders d as the currency symbol followed by the amount fixed
// to the currency's minor-unit digits, e.g. "€40.00". Rounding is half away
// from zero and happens only here.
func FormatAmount(d decimal.Decimal) string {
	cur := currency()
	return cur.Grapheme + d.StringFixed(int32(cur.Fraction))
}

// FormatDivisor renders the divisor in its shortest form: "4", "7.5", "1".
func FormatDivisor(d decimal.Decimal) string {
	return d.String()
}

// Format produces the display strings for r.
func Format(r domain.PricingResult) Display {
	return Display{
		Total:   FormatAmount(r.Total),
		Divisor: FormatDivisor(r.Divisor),
		Rate:    FormatAmount(r.Rate),
	}
}

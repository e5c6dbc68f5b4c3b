package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Leading signed integer; anything after the digits is ignored.
	intPrefix = regexp.MustCompile(`^[+-]?\d+`)

	// Leading signed decimal with optional exponent. "10€" reads as 10,
	// ".5" as 0.5, "1e2" as 100.
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

	// A decimal point with no digits after it, as in "5." or "5.e2".
	bareDot = regexp.MustCompile(`\.([eE]|$)`)
)

// ParseQuantity reads the leading integer of s, sign included. Empty and
// unparsable input count as zero; a negative quantity is kept and
// subtracts from the total.
func ParseQuantity(s string) decimal.Decimal {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(m, "+"))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePrice reads the leading decimal of s. Unparsable, negative and
// non-finite prices count as zero.
func ParsePrice(s string) decimal.Decimal {
	d, ok := ParseDecimal(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseDecimal reads the leading floating-point number of s. ok is false
// when s has no numeric prefix or the value overflows a float64. The
// digits are kept exactly; the float parse only bounds the range.
func ParseDecimal(s string) (d decimal.Decimal, ok bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	d, err = decimal.NewFromString(bareDot.ReplaceAllString(strings.TrimPrefix(m, "+"), "$1"))
	if err != nil {
		return decimal.NewFromFloat(f), true
	}
	return d, true
}

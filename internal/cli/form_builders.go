package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/charmbracelet/huh"
)

// requiredInput returns a huh.Input that rejects blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRequired(strings.ToLower(title)))
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// addItemForm collects a work number and its unit price.
func addItemForm(number, price *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Work number", "W1", number),
			requiredInput("Price", "12.50", price).
				Description("Unit price in euros, stored as entered"),
		),
	).WithTheme(laskuriHuhTheme()).WithShowHelp(false)
}

// pricingInput holds the values bound to a pricing form: one quantity per
// distinct work number, plus the hours divisor.
type pricingInput struct {
	numbers []string
	qty     []string
	hours   string
}

// newPricingInput prepares inputs for numbers, pre-filled from preset.
func newPricingInput(numbers []string, preset domain.QuantitySelection, hours string) *pricingInput {
	in := &pricingInput{
		numbers: numbers,
		qty:     make([]string, len(numbers)),
		hours:   hours,
	}
	for i, n := range numbers {
		in.qty[i] = preset.Get(n)
	}
	return in
}

// selection returns the entered quantities keyed by work number.
func (in *pricingInput) selection() domain.QuantitySelection {
	sel := make(domain.QuantitySelection, len(in.numbers))
	for i, n := range in.numbers {
		sel[n] = in.qty[i]
	}
	return sel
}

// form builds the huh form. Values are read leniently when pricing, so no
// field is validated: a blank or malformed quantity counts as 0.
func (in *pricingInput) form() *huh.Form {
	fields := make([]huh.Field, 0, len(in.numbers)+1)
	for i, n := range in.numbers {
		fields = append(fields, huh.NewInput().
			Title(n).
			Placeholder("0").
			Value(&in.qty[i]))
	}
	fields = append(fields, huh.NewInput().
		Title("Hours").
		Description("Blank or 0 leaves the total undivided").
		Placeholder("0").
		Value(&in.hours))

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(laskuriHuhTheme()).
		WithShowHelp(false)
}

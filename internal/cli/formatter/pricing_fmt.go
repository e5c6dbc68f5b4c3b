package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/pricing"
)

// FormatPricingResult renders the per-item breakdown and the three summary
// figures in a titled box.
func FormatPricingResult(r domain.PricingResult) string {
	return RenderBox("Result", FormatPricingBody(r))
}

// FormatPricingBody renders the result without the surrounding box.
func FormatPricingBody(r domain.PricingResult) string {
	var b strings.Builder

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		if line.Quantity.IsZero() {
			continue
		}
		rows = append(rows, []string{
			line.WorkNumber,
			line.Quantity.String(),
			pricing.FormatAmount(line.UnitPrice),
			pricing.FormatAmount(line.Subtotal),
		})
	}
	if len(rows) == 0 {
		b.WriteString(Dim("No quantities entered."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTable([]Column{
			{Title: "WORK NUMBER"},
			{Title: "QTY", Align: AlignRight},
			{Title: "PRICE", Align: AlignRight},
			{Title: "SUBTOTAL", Align: AlignRight},
		}, rows))
	}
	b.WriteString("\n")

	d := pricing.Format(r)
	hours := d.Divisor
	if !r.DivisorApplied {
		hours += " " + Dim("(no hours given)")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Total"), Money(d.Total)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Hours"), hours))
	b.WriteString(fmt.Sprintf("%s  %s", Dim("Rate "), Money(d.Rate)))
	return b.String()
}

// FormatPricingPlain renders the three summary lines without styling, for
// piping into other tools.
func FormatPricingPlain(r domain.PricingResult) string {
	d := pricing.Format(r)
	return fmt.Sprintf("Total %s\nHours %s\nRate %s\n", d.Total, d.Divisor, d.Rate)
}

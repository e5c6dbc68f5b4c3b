package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/pricing"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatLedger_Empty(t *testing.T) {
	out := stripANSI(FormatLedger(nil))
	assert.Contains(t, out, "No work items yet")
}

func TestFormatLedger_RowsInOrder(t *testing.T) {
	l := domain.Ledger{{WorkNumber: "W1", Price: "10"}, {WorkNumber: "W2", Price: "7.5"}}

	out := stripANSI(FormatLedger(l))

	assert.Contains(t, out, "WORK NUMBER")
	assert.Contains(t, out, "10€")
	assert.Contains(t, out, "7.5€")
	assert.Less(t, strings.Index(out, "W1"), strings.Index(out, "W2"))
	assert.Contains(t, out, "2 items")
	assert.NotContains(t, out, "dup")
}

func TestFormatLedger_FlagsDuplicates(t *testing.T) {
	l := domain.Ledger{{WorkNumber: "W1", Price: "10"}, {WorkNumber: "W1", Price: "12"}}

	out := stripANSI(FormatLedger(l))

	assert.Equal(t, 2, strings.Count(out, "W1 dup"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]Column{{Title: "A"}, {Title: "N", Align: AlignRight}}, [][]string{
		{"long-name", "1"},
		{"x", "100"},
	})
	lines := strings.Split(strings.TrimRight(stripANSI(out), "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "long-name    1", lines[2])
	assert.Equal(t, "x          100", lines[3])
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatPricingResult_Summary(t *testing.T) {
	l := domain.Ledger{{WorkNumber: "W1", Price: "10"}, {WorkNumber: "W2", Price: "5"}}
	r := pricing.Compute(l, domain.QuantitySelection{"W1": "3", "W2": "2"}, "4")

	out := stripANSI(FormatPricingResult(r))

	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "€40.00")
	assert.Contains(t, out, "€10.00")
	assert.Contains(t, out, "€30.00", "W1 subtotal")
	assert.NotContains(t, out, "no hours given")
}

func TestFormatPricingResult_NoDivisorAndNoQuantities(t *testing.T) {
	r := pricing.Compute(domain.Ledger{{WorkNumber: "W1", Price: "10"}}, nil, "")

	out := stripANSI(FormatPricingBody(r))

	assert.Contains(t, out, "No quantities entered.")
	assert.Contains(t, out, "no hours given")
	assert.Contains(t, out, "€0.00")
}

func TestFormatPricingPlain(t *testing.T) {
	l := domain.Ledger{{WorkNumber: "W1", Price: "10"}, {WorkNumber: "W2", Price: "5"}}
	r := pricing.Compute(l, domain.QuantitySelection{"W1": "2"}, "")

	assert.Equal(t, "Total €20.00\nHours 1\nRate €20.00\n", FormatPricingPlain(r))
}

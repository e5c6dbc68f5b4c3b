package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// FormatLedger renders the ledger as a numbered table in insertion order.
// Work numbers that occur more than once are flagged, since they share one
// quantity entry when pricing.
func FormatLedger(l domain.Ledger) string {
	if len(l) == 0 {
		return Dim("No work items yet. Add one with: laskuri work add NUMBER PRICE") + "\n"
	}

	counts := make(map[string]int, len(l))
	for _, w := range l {
		counts[w.WorkNumber]++
	}

	rows := make([][]string, 0, len(l))
	for i, w := range l {
		number := w.WorkNumber
		if counts[number] > 1 {
			number += " " + StyleYellow.Render("dup")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			number,
			FormatPriceText(w.Price),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]Column{
		{Title: "#", Align: AlignRight},
		{Title: "WORK NUMBER"},
		{Title: "PRICE", Align: AlignRight},
	}, rows))
	b.WriteString(Dim(pluralItems(len(l))))
	b.WriteString("\n")
	return b.String()
}

// FormatPriceText shows a stored price as entered, followed by the euro sign.
func FormatPriceText(price string) string {
	return price + "€"
}

// FormatWorkItem renders a single item on one line.
func FormatWorkItem(w domain.WorkItem) string {
	return fmt.Sprintf("%s  %s", Bold(w.WorkNumber), FormatPriceText(w.Price))
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

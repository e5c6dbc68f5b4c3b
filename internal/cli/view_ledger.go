package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ledgerView lists the work items with a cursor for removal.
type ledgerView struct {
	state  *SharedState
	cursor int
}

func newLedgerView(state *SharedState) *ledgerView {
	return &ledgerView{state: state}
}

func (v *ledgerView) Init() tea.Cmd { return nil }

func (v *ledgerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	items := v.state.Ledger.snapshot()
	v.clamp(len(items))

	switch {
	case key.Matches(keyMsg, ledgerKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, ledgerKeys.Down):
		if v.cursor < len(items)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, ledgerKeys.Add):
		return v, startAddWizard(v.state)
	case key.Matches(keyMsg, ledgerKeys.Remove):
		if len(items) == 0 {
			return v, flash(flashInfo, "Nothing to remove.")
		}
		return v, removeItemCmd(v.state, items[v.cursor].WorkNumber)
	case key.Matches(keyMsg, ledgerKeys.Price):
		return v, startPricingWizard(v.state)
	}
	return v, nil
}

func (v *ledgerView) clamp(n int) {
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *ledgerView) View() string {
	items := v.state.Ledger.snapshot()
	v.clamp(len(items))

	if len(items) == 0 {
		return "\n  " + formatter.Dim("No work items yet. Press a to add one.") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for i, w := range items {
		marker := " "
		number := w.WorkNumber
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("›")
			number = formatter.Bold(number)
		}
		rows = append(rows, []string{
			marker,
			formatter.Dim(strconv.Itoa(i + 1)),
			number,
			formatter.FormatPriceText(w.Price),
		})
	}

	table := formatter.RenderTable([]formatter.Column{
		{Title: " "},
		{Title: "#", Align: formatter.AlignRight},
		{Title: "WORK NUMBER"},
		{Title: "PRICE", Align: formatter.AlignRight},
	}, rows)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (v *ledgerView) ID() ViewID    { return ViewLedger }
func (v *ledgerView) Title() string { return "" }
func (v *ledgerView) ShortHelp() []key.Binding {
	return []key.Binding{ledgerKeys.Add, ledgerKeys.Remove, ledgerKeys.Price, globalKeys.Quit}
}

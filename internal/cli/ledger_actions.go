package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type mutationKind int

const (
	mutationAdd mutationKind = iota
	mutationRemove
)

// mutationDoneMsg reports the outcome of an add or remove run as a Cmd.
// The ledger itself reaches the TUI through the service listener.
type mutationDoneMsg struct {
	kind    mutationKind
	number  string
	removed int
	err     error
}

func addItemCmd(state *SharedState, number, price string) tea.Cmd {
	number = strings.TrimSpace(number)
	return func() tea.Msg {
		_, err := state.App.Ledger.Add(state.Ctx, number, price)
		return mutationDoneMsg{kind: mutationAdd, number: number, err: err}
	}
}

func removeItemCmd(state *SharedState, number string) tea.Cmd {
	number = strings.TrimSpace(number)
	return func() tea.Msg {
		before := len(state.App.Ledger.Items())
		after, err := state.App.Ledger.Remove(state.Ctx, number)
		return mutationDoneMsg{kind: mutationRemove, number: number, removed: before - len(after), err: err}
	}
}

// flashFor turns a mutation outcome into a status line.
func flashFor(msg mutationDoneMsg) flashMsg {
	if msg.err != nil && !isWarning(msg.err) {
		return flashMsg{text: msg.err.Error(), level: flashError}
	}

	var text string
	level := flashSuccess
	switch {
	case msg.kind == mutationAdd:
		text = "Added " + msg.number
	case msg.removed == 0:
		text = fmt.Sprintf("No work item %q", msg.number)
		level = flashInfo
	case msg.removed == 1:
		text = "Removed " + msg.number
	default:
		text = fmt.Sprintf("Removed %d entries for %s", msg.removed, msg.number)
	}

	if msg.err != nil {
		return flashMsg{text: text + ". " + warningText(msg.err), level: flashWarning}
	}
	return flashMsg{text: text, level: level}
}

// startAddWizard opens the add form and appends the item on submit.
func startAddWizard(state *SharedState) tea.Cmd {
	var number, price string
	return startWizardCmd("Add", addItemForm(&number, &price), func() tea.Cmd {
		return addItemCmd(state, number, price)
	})
}

// startPricingWizard opens the pricing form, pre-filled with the previous
// inputs, and shows the result on submit.
func startPricingWizard(state *SharedState) tea.Cmd {
	numbers := state.Ledger.snapshot().WorkNumbers()
	if len(numbers) == 0 {
		return flash(flashInfo, "Nothing to price yet. Press a to add a work item.")
	}
	in := newPricingInput(numbers, state.Quantities, state.Hours)
	return startWizardCmd("Price", in.form(), func() tea.Cmd {
		state.Quantities = in.selection()
		state.Hours = in.hours
		result := state.App.Ledger.Price(state.Ctx, state.Quantities, state.Hours)
		return pushView(newResultView(result))
	})
}

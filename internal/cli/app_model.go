package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, a status line and the ledger subscription.
type appModel struct {
	state     *SharedState
	viewStack []View
	flash     flashMsg
	quitting  bool

	unsubscribe func()
}

func newAppModel(ctx context.Context, app *App) appModel {
	state := &SharedState{
		App:    app,
		Ctx:    ctx,
		Ledger: newLedgerMirror(nil),
	}

	m := appModel{
		state:     state,
		viewStack: []View{newLedgerView(state)},
	}

	// Subscribe before the first read so no change is missed.
	m.unsubscribe = app.Ledger.Subscribe(state.Ledger.set)
	state.Ledger.set(app.Ledger.Items())

	if app.loadWarning != nil {
		m.flash = flashMsg{text: warningText(app.loadWarning), level: flashWarning}
	}
	return m
}

// close detaches the model from the ledger service.
func (m appModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) pop() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case wizardCompleteMsg:
		m.pop()
		return m, msg.nextCmd

	case repriceMsg:
		if v := m.activeView(); v != nil && v.ID() == ViewResult {
			m.pop()
		}
		return m, startPricingWizard(m.state)

	case flashMsg:
		m.flash = msg
		return m, nil

	case mutationDoneMsg:
		m.flash = flashFor(msg)
		return m, nil
	}

	// Forward everything else (form internals, cursor blink) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	v := m.activeView()

	// Forms receive every key so q and esc reach huh or the wizard.
	if v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	m.flash = flashMsg{}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, globalKeys.Back):
		m.pop()
		return m, nil
	}

	if v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	content := strings.Join(sections, "\n")

	// Pad so the status bar sits at the bottom of the terminal.
	if m.state.Height > 0 {
		lines := strings.Count(content, "\n") + 1
		if want := m.state.Height - 3; lines < want {
			content += strings.Repeat("\n", want-lines)
		}
	}

	return content + "\n" + m.renderStatusBar()
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StyleHeader.Render("laskuri")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	n := len(m.state.Ledger.snapshot())
	header += "  " + formatter.Dim(fmt.Sprintf("[%d in ledger]", n))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.viewStack) > 1 && v.ID() != ViewForm {
			hints = append(hints, formatter.Dim("esc: back"))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return renderFlash(m.flash) + "\n" + sep + "\n" + strings.Join(hints, "  ")
}

func renderFlash(f flashMsg) string {
	if f.text == "" {
		return ""
	}
	switch f.level {
	case flashSuccess:
		return formatter.Success(f.text)
	case flashWarning:
		return formatter.Warning(f.text)
	case flashError:
		return formatter.Error(f.text)
	default:
		return formatter.Dim(f.text)
	}
}

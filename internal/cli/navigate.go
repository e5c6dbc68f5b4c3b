package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation and status messages. The appModel handles these in its Update
// method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// flashLevel picks the style of a status line.
type flashLevel int

const (
	flashInfo flashLevel = iota
	flashSuccess
	flashWarning
	flashError
)

// flashMsg sets the one-line status shown above the key hints.
type flashMsg struct {
	text  string
	level flashLevel
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func flash(level flashLevel, text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text, level: level} }
}

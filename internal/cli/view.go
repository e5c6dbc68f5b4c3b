package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID tells views apart; forms get every key.
type ViewID int

const (
	ViewLedger ViewID = iota
	ViewForm
	ViewResult
)

// View is a screen on the appModel's stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // hints for the status bar
	Title() string            // breadcrumb; empty for the root view
}

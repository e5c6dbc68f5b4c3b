package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI opens the full-screen ledger view and blocks until the user quits.
func runTUI(ctx context.Context, app *App) error {
	m := newAppModel(ctx, app)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ledger view: %w", err)
	}
	return nil
}

package cli

import (
	"github.com/alexanderramin/laskuri/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment hooks used by CLI commands.
type App struct {
	Ledger service.LedgerService

	// IsInteractive reports whether stdin is a terminal. A bare invocation
	// opens the TUI only when it returns true.
	IsInteractive func() bool

	// NoTUI forces a bare invocation to print help instead of opening the TUI.
	NoTUI bool

	// loadWarning is the persistence warning from the last ledger load, if any.
	loadWarning error
}

// NewRootCmd creates the top-level "laskuri" command and registers all
// subcommands against the provided App. The stored ledger is loaded once
// before any subcommand runs.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "laskuri",
		Short: "Work-item ledger and pricing calculator",
		Long: `Keep a ledger of work items and their unit prices, then price a job by
entering a quantity per work item and, optionally, the hours it took.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Ledger.Load(cmd.Context())
			app.loadWarning = err
			return reportWarning(cmd, err)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.NoTUI || app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newWorkCmd(app),
		newPriceCmd(app),
	)

	return root
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Manage the work-item ledger",
	}

	cmd.AddCommand(
		newWorkAddCmd(app),
		newWorkListCmd(app),
		newWorkRemoveCmd(app),
	)

	return cmd
}

func newWorkAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NUMBER PRICE",
		Short: "Append a work item with its unit price",
		Long: `Append a work item to the ledger. The price is stored as entered and
read leniently when pricing, so "12.50" and "12.50€" both price at 12.50.
Adding a work number that already exists keeps both entries.`,
		Example: "  laskuri work add W1 10\n  laskuri work add 2040 12.50",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := strings.TrimSpace(args[0])
			existed := app.Ledger.Items().Contains(number)

			_, err := app.Ledger.Add(cmd.Context(), args[0], args[1])
			if err != nil && !isWarning(err) {
				return err
			}

			out := cmd.OutOrStdout()
			item := domain.WorkItem{WorkNumber: number, Price: strings.TrimSpace(args[1])}
			fmt.Fprintln(out, formatter.Success("Added "+formatter.FormatWorkItem(item)))
			if existed {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf(
					"%s now appears more than once; each entry is priced with the same quantity.", number)))
			}
			return reportWarning(cmd, err)
		},
	}
}

func newWorkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the ledger in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedger(app.Ledger.Items()))
			return nil
		},
	}
}

func newWorkRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NUMBER",
		Aliases: []string{"rm"},
		Short:   "Remove every entry with the given work number",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := strings.TrimSpace(args[0])
			before := len(app.Ledger.Items())

			after, err := app.Ledger.Remove(cmd.Context(), number)
			if err != nil && !isWarning(err) {
				return err
			}

			out := cmd.OutOrStdout()
			switch removed := before - len(after); removed {
			case 0:
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("No work item %q; nothing removed.", number)))
			case 1:
				fmt.Fprintln(out, formatter.Success("Removed "+number))
			default:
				fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Removed %d entries for %s", removed, number)))
			}
			return reportWarning(cmd, err)
		},
	}
}

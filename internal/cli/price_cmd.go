package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// priceOptions collects the inputs of a pricing run.
type priceOptions struct {
	quantities  map[string]string
	hours       string
	interactive bool
	plain       bool
}

func (o *priceOptions) bindFlags(fs *pflag.FlagSet) {
	fs.StringToStringVarP(&o.quantities, "qty", "q", nil,
		"quantity for a work number as NUMBER=QTY (repeatable)")
	fs.StringVar(&o.hours, "hours", "",
		"hours to divide the total by; blank or 0 means no division")
	fs.BoolVarP(&o.interactive, "interactive", "i", false,
		"enter quantities and hours in a form")
	fs.BoolVar(&o.plain, "plain", false,
		"print only the total, hours and rate lines without styling")
}

func (o *priceOptions) selection() domain.QuantitySelection {
	sel := make(domain.QuantitySelection, len(o.quantities))
	for k, v := range o.quantities {
		sel[strings.TrimSpace(k)] = v
	}
	return sel
}

func newPriceCmd(app *App) *cobra.Command {
	opts := &priceOptions{}

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price the ledger for a set of quantities",
		Long: `Multiply each ledger entry's unit price by the quantity given for its
work number and sum the result. Work numbers without a quantity count as 0.
With --hours the total is also divided into an hourly rate.`,
		Example: "  laskuri price --qty W1=3 --qty W2=2 --hours 4\n  laskuri price -i",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sel := opts.selection()
			hours := opts.hours

			if opts.interactive {
				numbers := app.Ledger.Items().WorkNumbers()
				if len(numbers) == 0 {
					fmt.Fprintln(out, formatter.Dim("No work items to price. Add one with: laskuri work add NUMBER PRICE"))
					return nil
				}
				in := newPricingInput(numbers, sel, hours)
				if err := in.form().Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(out, formatter.Dim("Cancelled."))
						return nil
					}
					return fmt.Errorf("reading quantities: %w", err)
				}
				sel, hours = in.selection(), in.hours
			}

			result := app.Ledger.Price(cmd.Context(), sel, hours)
			if opts.plain {
				fmt.Fprint(out, formatter.FormatPricingPlain(result))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatPricingResult(result))
			return nil
		},
	}

	opts.bindFlags(cmd.Flags())
	return cmd
}

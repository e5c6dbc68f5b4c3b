package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/laskuri/internal/cli/formatter"
	"github.com/alexanderramin/laskuri/internal/repository"
	"github.com/spf13/cobra"
)

// reportWarning prints persistence failures to stderr and swallows them, so
// the command still succeeds. Any other error is returned unchanged.
func reportWarning(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if !isWarning(err) {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(warningText(err)))
	return nil
}

func isWarning(err error) bool {
	return errors.Is(err, repository.ErrPersistence)
}

func warningText(err error) string {
	var perr *repository.PersistenceError
	if errors.As(err, &perr) {
		switch {
		case errors.Is(err, repository.ErrCorrupt):
			return "Warning: stored ledger is unreadable, starting empty: " + perr.Err.Error()
		case perr.Op == repository.OpLoad:
			return "Warning: could not load the ledger, starting empty: " + perr.Err.Error()
		case perr.Op == repository.OpSave:
			return "Warning: change kept in memory but not saved: " + perr.Err.Error()
		}
	}
	return "Warning: " + err.Error()
}

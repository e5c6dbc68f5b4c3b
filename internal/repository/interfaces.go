package repository

import (
	"context"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// LedgerKey is the fixed record name the ledger is stored under.
const LedgerKey = "workItems"

// LedgerRepo persists the whole ledger as one opaque record. There is no
// incremental write: every Save replaces the stored ledger.
type LedgerRepo interface {
	// Load returns the stored ledger. A missing record yields an empty
	// ledger and no error. On failure the returned ledger is still empty
	// and usable.
	Load(ctx context.Context) (domain.Ledger, error)
	Save(ctx context.Context, l domain.Ledger) error
}

var (
	_ LedgerRepo = (*SQLiteLedgerRepo)(nil)
	_ LedgerRepo = (*MemoryLedgerRepo)(nil)
)

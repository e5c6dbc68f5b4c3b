package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/repository"
)

// FailingLedgerRepo wraps a LedgerRepo, counts calls, and injects failures.
// A non-nil LoadErr or SaveErr is returned wrapped in a PersistenceError in
// place of the inner call.
type FailingLedgerRepo struct {
	Inner   repository.LedgerRepo
	LoadErr error
	SaveErr error

	loads atomic.Int32
	saves atomic.Int32
}

func (f *FailingLedgerRepo) Load(ctx context.Context) (domain.Ledger, error) {
	f.loads.Add(1)
	if f.LoadErr != nil {
		return domain.Ledger{}, &repository.PersistenceError{Op: repository.OpLoad, Key: repository.LedgerKey, Err: f.LoadErr}
	}
	return f.Inner.Load(ctx)
}

func (f *FailingLedgerRepo) Save(ctx context.Context, l domain.Ledger) error {
	f.saves.Add(1)
	if f.SaveErr != nil {
		return &repository.PersistenceError{Op: repository.OpSave, Key: repository.LedgerKey, Err: f.SaveErr}
	}
	return f.Inner.Save(ctx, l)
}

// Loads returns how many times Load was called.
func (f *FailingLedgerRepo) Loads() int { return int(f.loads.Load()) }

// Saves returns how many times Save was attempted, failed or not.
func (f *FailingLedgerRepo) Saves() int { return int(f.saves.Load()) }

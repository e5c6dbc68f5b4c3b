package service

import (
	"context"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// Listener receives a snapshot of the ledger after it changed in memory.
// It runs synchronously on the mutating goroutine and must not call back
// into the service's mutating methods.
type Listener func(domain.Ledger)

// LedgerService owns the in-memory ledger and keeps its persisted copy in
// step. Add and Remove report a *repository.PersistenceError when the write
// fails; the in-memory change is kept regardless.
type LedgerService interface {
	Load(ctx context.Context) (domain.Ledger, error)
	Items() domain.Ledger
	Add(ctx context.Context, workNumber, price string) (domain.Ledger, error)
	Remove(ctx context.Context, workNumber string) (domain.Ledger, error)
	Price(ctx context.Context, quantities domain.QuantitySelection, divisor string) domain.PricingResult
	Subscribe(fn Listener) (unsubscribe func())
}

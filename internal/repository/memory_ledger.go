package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// MemoryLedgerRepo implements LedgerRepo in process memory. It keeps the
// encoded form rather than the slice so round trips go through the same
// codec as the SQLite store.
type MemoryLedgerRepo struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryLedgerRepo returns an empty store with no record written.
func NewMemoryLedgerRepo() *MemoryLedgerRepo {
	return &MemoryLedgerRepo{}
}

func (r *MemoryLedgerRepo) Load(_ context.Context) (domain.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blob == nil {
		return domain.Ledger{}, nil
	}
	l, err := decodeLedger(r.blob)
	if err != nil {
		return domain.Ledger{}, &PersistenceError{Op: OpLoad, Key: LedgerKey, Err: err}
	}
	return l, nil
}

func (r *MemoryLedgerRepo) Save(_ context.Context, l domain.Ledger) error {
	b, err := encodeLedger(l)
	if err != nil {
		return &PersistenceError{Op: OpSave, Key: LedgerKey, Err: err}
	}
	r.mu.Lock()
	r.blob = b
	r.mu.Unlock()
	return nil
}

// Raw returns the stored record, or nil when nothing was written.
func (r *MemoryLedgerRepo) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blob == nil {
		return nil
	}
	out := make([]byte, len(r.blob))
	copy(out, r.blob)
	return out
}

// SetRaw replaces the stored record verbatim, bypassing the codec.
func (r *MemoryLedgerRepo) SetRaw(b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = append([]byte(nil), b...)
}

package cli

import (
	"context"
	"sync"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Ctx context.Context

	// Ledger mirrors the service's ledger; a listener keeps it current.
	Ledger *ledgerMirror

	// Last pricing inputs, offered again the next time the form opens.
	Quantities domain.QuantitySelection
	Hours      string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the height left for view content after the header
// (2 lines) and the status bar (3 lines: flash, separator, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// ledgerMirror is the TUI's copy of the ledger. The service listener writes
// it from whichever goroutine mutated the ledger, and views read it when
// rendering.
type ledgerMirror struct {
	mu    sync.Mutex
	items domain.Ledger
}

func newLedgerMirror(initial domain.Ledger) *ledgerMirror {
	return &ledgerMirror{items: initial.Clone()}
}

// set is registered as a service listener.
func (m *ledgerMirror) set(l domain.Ledger) {
	m.mu.Lock()
	m.items = l
	m.mu.Unlock()
}

func (m *ledgerMirror) snapshot() domain.Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items.Clone()
}

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/alexanderramin/laskuri/internal/domain"
	"github.com/alexanderramin/laskuri/internal/pricing"
	"github.com/alexanderramin/laskuri/internal/repository"
)

type ledgerService struct {
	repo     repository.LedgerRepo
	observer UseCaseObserver

	// mu serializes mutations so at most one write is in flight.
	mu    sync.Mutex
	items domain.Ledger

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// NewLedgerService returns a service with an empty in-memory ledger. Call
// Load to populate it from the repository.
func NewLedgerService(repo repository.LedgerRepo, observers ...UseCaseObserver) LedgerService {
	return &ledgerService{
		repo:      repo,
		observer:  useCaseObserverOrNoop(observers),
		items:     domain.Ledger{},
		listeners: make(map[int]Listener),
	}
}

// Load replaces the in-memory ledger with the stored one. On a failed or
// corrupt read the ledger becomes empty and the error is returned as a
// warning alongside it.
func (s *ledgerService) Load(ctx context.Context) (l domain.Ledger, err error) {
	span := startUseCase(s.observer, "load-ledger")
	defer func() { span.finish(ctx, err) }()

	s.mu.Lock()
	loaded, err := s.repo.Load(ctx)
	if loaded == nil {
		loaded = domain.Ledger{}
	}
	s.items = loaded.Clone()
	snapshot := s.items.Clone()
	s.mu.Unlock()

	span.set("items", len(snapshot))
	s.notify(snapshot)
	return snapshot, err
}

func (s *ledgerService) Items() domain.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

func (s *ledgerService) Add(ctx context.Context, workNumber, price string) (l domain.Ledger, err error) {
	span := startUseCase(s.observer, "add-work-item")
	defer func() { span.finish(ctx, err) }()

	item, err := domain.NewWorkItem(workNumber, price)
	if err != nil {
		return s.Items(), err
	}
	span.set("work_number", item.WorkNumber)

	s.mu.Lock()
	if s.items.Contains(item.WorkNumber) {
		span.set("duplicate", true)
	}
	s.items = s.items.Append(item)
	snapshot := s.items.Clone()
	err = s.repo.Save(ctx, snapshot)
	s.mu.Unlock()

	span.set("items", len(snapshot))
	s.notify(snapshot)
	return snapshot, err
}

// Remove drops every entry for workNumber. The ledger is persisted even
// when nothing matched, so storage always reflects the in-memory state.
func (s *ledgerService) Remove(ctx context.Context, workNumber string) (l domain.Ledger, err error) {
	span := startUseCase(s.observer, "remove-work-item")
	defer func() { span.finish(ctx, err) }()
	span.set("work_number", workNumber)

	s.mu.Lock()
	next, removed := s.items.WithoutWorkNumber(workNumber)
	s.items = next
	snapshot := s.items.Clone()
	err = s.repo.Save(ctx, snapshot)
	s.mu.Unlock()

	span.set("removed", removed)
	span.set("items", len(snapshot))
	if removed > 0 {
		s.notify(snapshot)
	}
	return snapshot, err
}

func (s *ledgerService) Price(ctx context.Context, quantities domain.QuantitySelection, divisor string) domain.PricingResult {
	span := startUseCase(s.observer, "price-ledger")
	result := pricing.Compute(s.Items(), quantities, divisor)
	span.set("lines", len(result.Lines))
	span.set("divisor_applied", result.DivisorApplied)
	span.finish(ctx, nil)
	return result
}

func (s *ledgerService) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// notify calls listeners in registration order, each with its own copy.
func (s *ledgerService) notify(snapshot domain.Ledger) {
	s.listenersMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	fns := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snapshot.Clone())
	}
}

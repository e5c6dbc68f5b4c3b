package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/laskuri/internal/domain"
)

var testWorkNumberCounter atomic.Int64

// WorkItemOption adjusts a fixture work item.
type WorkItemOption func(*domain.WorkItem)

func WithWorkNumber(n string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.WorkNumber = n
	}
}

func WithPrice(p string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Price = p
	}
}

// NewTestWorkItem returns a valid work item with a unique work number.
func NewTestWorkItem(opts ...WorkItemOption) domain.WorkItem {
	n := testWorkNumberCounter.Add(1)
	w := domain.WorkItem{
		WorkNumber: fmt.Sprintf("T%03d", n),
		Price:      "10",
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// NewTestLedger returns n fixture items with distinct work numbers.
func NewTestLedger(n int) domain.Ledger {
	l := make(domain.Ledger, 0, n)
	for i := 0; i < n; i++ {
		l = append(l, NewTestWorkItem(WithPrice(fmt.Sprintf("%d.50", i+1))))
	}
	return l
}

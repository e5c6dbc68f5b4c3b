package domain

// Ledger is the ordered collection of work items. Order is insertion order
// and is what every listing shows.
type Ledger []WorkItem

// Clone returns an independent copy. A nil ledger clones to an empty one so
// callers can always range and encode it as [].
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// Append returns a new ledger with w at the end. The receiver is not modified.
func (l Ledger) Append(w WorkItem) Ledger {
	out := make(Ledger, len(l), len(l)+1)
	copy(out, l)
	return append(out, w)
}

// WithoutWorkNumber returns a new ledger with every entry for workNumber
// removed, and how many entries were dropped.
func (l Ledger) WithoutWorkNumber(workNumber string) (Ledger, int) {
	out := make(Ledger, 0, len(l))
	for _, w := range l {
		if w.WorkNumber == workNumber {
			continue
		}
		out = append(out, w)
	}
	return out, len(l) - len(out)
}

// Contains reports whether any entry carries workNumber.
func (l Ledger) Contains(workNumber string) bool {
	for _, w := range l {
		if w.WorkNumber == workNumber {
			return true
		}
	}
	return false
}

// WorkNumbers returns the distinct work numbers in first-seen order.
// Duplicated numbers share a single quantity entry, so quantity forms are
// built from this list rather than from the raw items.
func (l Ledger) WorkNumbers() []string {
	seen := make(map[string]bool, len(l))
	out := make([]string, 0, len(l))
	for _, w := range l {
		if seen[w.WorkNumber] {
			continue
		}
		seen[w.WorkNumber] = true
		out = append(out, w.WorkNumber)
	}
	return out
}

package domain

// QuantitySelection maps a work number to the quantity text entered for it
// in one pricing session. It is never persisted; a missing entry means zero.
type QuantitySelection map[string]string

// Get returns the raw quantity text for workNumber, or "" when unset.
func (q QuantitySelection) Get(workNumber string) string {
	if q == nil {
		return ""
	}
	return q[workNumber]
}

// With returns a copy of q with workNumber set to value.
func (q QuantitySelection) With(workNumber, value string) QuantitySelection {
	out := make(QuantitySelection, len(q)+1)
	for k, v := range q {
		out[k] = v
	}
	out[workNumber] = value
	return out
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// WorkItem is one priced unit of work. The work number is the key the user
// sees and types; it is not enforced unique.
type WorkItem struct {
	WorkNumber string `json:"workNumber"`
	Price      string `json:"price"`
}

// NewWorkItem trims the raw form input and validates it.
func NewWorkItem(workNumber, price string) (WorkItem, error) {
	w := WorkItem{
		WorkNumber: strings.TrimSpace(workNumber),
		Price:      strings.TrimSpace(price),
	}
	if err := w.Validate(); err != nil {
		return WorkItem{}, err
	}
	return w, nil
}

// Validate reports a ValidationError naming every empty required field.
// The price text is deliberately not parsed here; malformed prices degrade
// to zero at pricing time.
func (w WorkItem) Validate() error {
	var fields []string
	if w.WorkNumber == "" {
		fields = append(fields, "work number")
	}
	if w.Price == "" {
		fields = append(fields, "price")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UnmarshalJSON accepts either a string or a bare JSON number for both
// fields. Older stores and hand-edited blobs sometimes carry numeric prices.
func (w *WorkItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		WorkNumber json.RawMessage `json:"workNumber"`
		Price      json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	workNumber, err := scalarString(raw.WorkNumber)
	if err != nil {
		return fmt.Errorf("workNumber: %w", err)
	}
	price, err := scalarString(raw.Price)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	w.WorkNumber = workNumber
	w.Price = price
	return nil
}

func scalarString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", raw)
	}
	return n.String(), nil
}

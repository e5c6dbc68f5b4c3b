package repository

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/laskuri/internal/domain"
)

// encodeLedger renders the stored form: a JSON array of
// {"workNumber","price"} objects. An empty ledger encodes as [].
func encodeLedger(l domain.Ledger) ([]byte, error) {
	b, err := json.Marshal(l.Clone())
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return b, nil
}

// decodeLedger parses the stored form. A JSON null decodes to an empty ledger.
func decodeLedger(b []byte) (domain.Ledger, error) {
	var l domain.Ledger
	if err := json.Unmarshal(b, &l); err != nil {
		return domain.Ledger{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return l.Clone(), nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/laskuri/internal/db"
	"github.com/alexanderramin/laskuri/internal/domain"
)

// SQLiteLedgerRepo implements LedgerRepo on the kv_store table.
type SQLiteLedgerRepo struct {
	db  db.DBTX
	key string
}

// NewSQLiteLedgerRepo creates a new SQLiteLedgerRepo storing under LedgerKey.
func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn, key: LedgerKey}
}

func (r *SQLiteLedgerRepo) Load(ctx context.Context) (domain.Ledger, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, r.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Ledger{}, nil
		}
		return domain.Ledger{}, &PersistenceError{Op: OpLoad, Key: r.key, Err: fmt.Errorf("reading ledger: %w", err)}
	}

	l, err := decodeLedger([]byte(value))
	if err != nil {
		return domain.Ledger{}, &PersistenceError{Op: OpLoad, Key: r.key, Err: err}
	}
	return l, nil
}

func (r *SQLiteLedgerRepo) Save(ctx context.Context, l domain.Ledger) error {
	b, err := encodeLedger(l)
	if err != nil {
		return &PersistenceError{Op: OpSave, Key: r.key, Err: err}
	}

	query := `INSERT OR REPLACE INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, r.key, string(b), nowUTC()); err != nil {
		return &PersistenceError{Op: OpSave, Key: r.key, Err: fmt.Errorf("writing ledger: %w", err)}
	}
	return nil
}

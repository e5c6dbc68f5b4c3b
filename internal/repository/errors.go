package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistence is matched by every PersistenceError via errors.Is.
	ErrPersistence = errors.New("persistence failure")

	// ErrCorrupt indicates the stored record exists but cannot be decoded.
	ErrCorrupt = errors.New("stored ledger is corrupt")
)

// Operations reported in PersistenceError.Op.
const (
	OpLoad = "load"
	OpSave = "save"
)

// PersistenceError reports a failed read or write of the durable store.
// It is a warning, never fatal: callers keep a usable in-memory ledger.
type PersistenceError struct {
	Op  string // OpLoad or OpSave
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

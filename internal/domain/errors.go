package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError is returned when user input for a work item is incomplete.
// The ledger is left untouched whenever one is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s required", strings.Join(e.Fields, " and "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

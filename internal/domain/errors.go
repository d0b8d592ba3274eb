package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ValidationError reports bad caller input. Validation always runs before
// any store mutation is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidOperationError reports an operation that is structurally impossible
// in the current state, e.g. copy-forward with no predecessor day.
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string { return e.Msg }

func NewInvalidOperationError(format string, args ...any) error {
	return &InvalidOperationError{Msg: fmt.Sprintf(format, args...)}
}

func IsInvalidOperationError(err error) bool {
	var ie *InvalidOperationError
	return errors.As(err, &ie)
}

// StorageError wraps an I/O failure from the persistence boundary. It is
// always surfaced to the caller, never swallowed or retried at this layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

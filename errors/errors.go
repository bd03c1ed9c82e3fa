// Package errors provides error handling for innkeep.
//
// This package re-exports github.com/cockroachdb/errors, providing stack traces,
// wrapping with context, and user-facing hints for the CLI.
//
// Usage:
//
//	if err := loadCatalog(path); err != nil {
//	    return errors.Wrap(err, "failed to load room catalog")
//	}
//
//	return errors.WithHint(errors.ErrReadOnly, "system-synced rooms cannot be edited")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap them to add context; check them with Is.
var (
	// ErrNotFound indicates the requested room, group or item does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed user input (bad command, unknown field)
	ErrInvalidRequest = New("invalid request")

	// ErrReadOnly indicates an edit against a system-synced record
	ErrReadOnly = New("read-only record")

	// ErrConflict indicates the record clashes with an existing one
	ErrConflict = New("resource conflict")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsReadOnlyError checks if an error is or wraps ErrReadOnly
func IsReadOnlyError(err error) bool {
	return err != nil && Is(err, ErrReadOnly)
}

// IsConflictError checks if an error is or wraps ErrConflict
func IsConflictError(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}

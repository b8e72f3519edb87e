// Package errs holds sentinel errors shared by all storage backends so
// handlers can map store faults to HTTP statuses without knowing the driver.
package errs

import "errors"

var (
	// ErrNotFound is returned when no record matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

package service

import (
	"errors"
	"fmt"
)

// Service-level error taxonomy. All of these are terminal: they
// propagate to the handler untouched and are never retried.
var (
	// ErrNotFound marks a well-formed query with zero results left
	// after filtering.
	ErrNotFound = errors.New("not found")

	// ErrUnknownRoute is the finer-grained variant of ErrNotFound for
	// origin/destination pairs no line serves at all. errors.Is matches
	// it against ErrNotFound.
	ErrUnknownRoute = fmt.Errorf("%w: unknown route", ErrNotFound)

	// ErrInvalidDayType marks a day type outside the canonical
	// enumeration.
	ErrInvalidDayType = errors.New("invalid day type")

	// ErrValidation marks a write payload that violates a data model
	// invariant.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a write that collides with an existing record.
	ErrConflict = errors.New("conflict")
)

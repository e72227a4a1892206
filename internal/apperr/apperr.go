// Package apperr defines the error taxonomy shared by repositories,
// services and handlers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing row and a row the caller may not
	// see; the two are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an optimistic version check fails.
	ErrConflict = errors.New("conflict: the record was modified by someone else")

	// ErrUnauthorized is returned when the caller lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a user-facing message for rejected input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

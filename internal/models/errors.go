package models

import "errors"

// Error kinds returned by services. Wrap with fmt.Errorf("...: %w", ...) and
// test with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrPersistence  = errors.New("persistence failure")
	ErrUnauthorized = errors.New("unauthorized")
)

// IsClassified reports whether err already carries one of the kinds above.
func IsClassified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrUnauthorized)
}

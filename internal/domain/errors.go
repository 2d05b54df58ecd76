package domain

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a registration collision on a unique field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("user with this %s already exists", e.Field)
}

// ErrInvalidCredentials is the single generic login failure. The same value
// is returned for an unknown email and for a wrong password so the response
// never leaks account existence.
var ErrInvalidCredentials = errors.New("invalid email or password")

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is a unique-field collision.
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}

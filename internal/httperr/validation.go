package httperr

import (
	"errors"
	"strings"
)

// ValidationError carries field-level problems found before any
// conflict checking happens. It maps to HTTP 400.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func ErrValidation(errs []string) error {
	return ValidationError{Errors: errs}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}

package calculations

import (
	"errors"
	"fmt"
)

// ErrUnknownProduct is returned when the product type is not one of the
// supported calculators
var ErrUnknownProduct = errors.New("unknown product type")

// InvalidInputError reports a missing, negative, or structurally invalid
// calculation parameter. It is recoverable by the caller, which should
// prompt for corrected input.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func newInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}

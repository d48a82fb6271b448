package builder

import (
	"fmt"

	"emperror.dev/errors"
)

// ErrorKind classifies a ValidationError.
type ErrorKind int

const (
	MissingRequiredField ErrorKind = iota + 1
)

// ErrMissingRequiredField matches any ValidationError of kind
// MissingRequiredField with errors.Is.
var ErrMissingRequiredField = errors.New("missing required field")

// ValidationError is returned when a mode's required field is empty.
type ValidationError struct {
	Kind  ErrorKind
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingRequiredField && e.Kind == MissingRequiredField
}

func errUnknownMode(m Mode) error {
	return errors.Errorf("unknown mode %d", int(m))
}

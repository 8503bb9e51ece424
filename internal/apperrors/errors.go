package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates a status change that the invoice lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError carries the rejected status pair. It unwraps to ErrInvalidTransition.
type TransitionError struct {
	InvoiceID string
	From      string
	To        string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: invoice %s cannot move from %q to %q", ErrInvalidTransition.Error(), e.InvoiceID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOverflow     = errors.New("numeric overflow")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindOverflow     ErrorKind = "overflow"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindOverflow:
		return target == ErrOverflow
	}
	return false
}

func InvalidInput(op, field string, err error) *OpError {
	return &OpError{Op: op, Kind: KindInvalidInput, Field: field, Err: err}
}

func Overflow(op, field string) *OpError {
	return &OpError{Op: op, Kind: KindOverflow, Field: field, Err: errors.New("value is not finite")}
}

// IsKind helps callers classify errors without depending on service internals.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

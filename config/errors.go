package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration problems.
var (
	ErrOutOfRange     = errors.New("config: value out of range")
	ErrUnknownFont    = errors.New("config: unknown font")
	ErrUnknownBarcode = errors.New("config: unknown barcode kind")
)

// FieldError reports a single field outside its closed range.
type FieldError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %g, must be between %g and %g", e.Field, e.Value, e.Min, e.Max)
}

func (e *FieldError) Unwrap() error {
	return ErrOutOfRange
}

// ValidationError aggregates every problem found in one configuration.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "config: invalid configuration: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errs
}

// Fields returns the names of the out-of-range fields.
func (e *ValidationError) Fields() []string {
	var names []string
	for _, err := range e.Errs {
		var fe *FieldError
		if errors.As(err, &fe) {
			names = append(names, fe.Field)
		}
	}
	return names
}

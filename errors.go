package lottopdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ways a generation run can fail. Every error
// returned by Generate wraps exactly one of them.
var (
	ErrConfig         = errors.New("lottopdf: invalid configuration")
	ErrFont           = errors.New("lottopdf: no usable font")
	ErrCardGeneration = errors.New("lottopdf: card generation failed")
	ErrRender         = errors.New("lottopdf: rendering failed")
	ErrBackground     = errors.New("lottopdf: background template unusable")
	ErrOutput         = errors.New("lottopdf: writing document failed")
)

// Error is an error that occurred during a specific operation.
// It wraps one of the sentinel errors together with the underlying cause.
type Error struct {
	Op  string // operation name, e.g. "Generate", "Output"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lottopdf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lottopdf.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps cause with the sentinel kind and the operation name.
func newError(op string, kind, cause error) *Error {
	if cause == nil {
		return &Error{Op: op, Err: kind}
	}
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", kind, cause)}
}

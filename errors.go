package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by vector operations. Every error returned by
// this package wraps exactly one of them; use errors.Is to classify.
var (
	// ErrInvalidArgument is returned for a nil or freed vector, a nil data
	// slice, or data whose size does not match the element size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmpty is returned when popping or removing from an empty vector.
	ErrEmpty = errors.New("vector is empty")

	// ErrOutOfBounds is returned when an index is not below the length.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrRangeTooLarge is returned by ReplaceRange when index+range
	// exceeds the length.
	ErrRangeTooLarge = errors.New("range too large")

	// ErrAllocation is returned when the allocator cannot grow or shrink
	// the buffer. The allocator's own error is wrapped alongside it.
	ErrAllocation = errors.New("allocation failed")

	// ErrCorruptSnapshot is returned when a snapshot cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

var (
	errNilVector = fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	errNoBuffer  = fmt.Errorf("%w: vector has no buffer", ErrInvalidArgument)
	errNilData   = fmt.Errorf("%w: nil data", ErrInvalidArgument)
	errOverflow  = fmt.Errorf("%w: capacity overflows int", ErrAllocation)
)

// OpError records the operation that failed and, for indexed
// operations, the offending index.
type OpError struct {
	Op    string
	Index int // -1 when the operation takes no index
	Err   error
}

func (e *OpError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("vector: %s [%d]: %v", e.Op, e.Index, e.Err)
	}
	return "vector: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	return &OpError{Op: op, Index: -1, Err: err}
}

func indexErr(op string, index int, err error) error {
	return &OpError{Op: op, Index: index, Err: err}
}

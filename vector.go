package vector

import (
	"fmt"
	"math"
)

// DefaultCapacity is the capacity of a new vector and the floor below
// which it never shrinks.
const DefaultCapacity = 8

// Invalid is returned by Len, ElemSize and Cap on a nil vector.
const Invalid = math.MaxInt

// Raw is a growable array of fixed-size elements stored contiguously as
// bytes. Element i lives at byte offset i*ElemSize(). Not goroutine-safe.
type Raw struct {
	buf      []byte // exactly capacity*elemSize bytes
	elemSize int
	capacity int
	length   int
	alloc    Allocator

	grows   int
	shrinks int
}

// NewRaw creates an empty vector of elemSize-byte elements with
// DefaultCapacity slots.
func NewRaw(elemSize int, opts ...Option) (*Raw, error) {
	if elemSize <= 0 {
		return nil, opErr("new", fmt.Errorf("%w: element size %d", ErrInvalidArgument, elemSize))
	}
	if elemSize > math.MaxInt/DefaultCapacity {
		return nil, opErr("new", errOverflow)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.alloc == nil {
		o.alloc = HeapAllocator{}
	}

	n := DefaultCapacity * elemSize
	buf, err := o.alloc.Allocate(n)
	if err != nil {
		return nil, opErr("new", fmt.Errorf("%w: %w", ErrAllocation, err))
	}
	if len(buf) != n {
		return nil, opErr("new", fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrAllocation, len(buf), n))
	}
	return &Raw{
		buf:      buf,
		elemSize: elemSize,
		capacity: DefaultCapacity,
		alloc:    o.alloc,
	}, nil
}

// Free returns the buffer to the allocator. The vector is unusable
// afterwards; every later operation fails with ErrInvalidArgument.
func (v *Raw) Free() error {
	if err := v.check("free"); err != nil {
		return err
	}
	v.alloc.Free(v.buf)
	v.buf = nil
	v.capacity = 0
	v.length = 0
	return nil
}

// Len returns the number of elements, or Invalid if v is nil.
func (v *Raw) Len() int {
	if v == nil {
		return Invalid
	}
	return v.length
}

// ElemSize returns the element size in bytes, or Invalid if v is nil.
func (v *Raw) ElemSize() int {
	if v == nil {
		return Invalid
	}
	return v.elemSize
}

// Cap returns the number of elements the buffer holds without
// reallocating, or Invalid if v is nil.
func (v *Raw) Cap() int {
	if v == nil {
		return Invalid
	}
	return v.capacity
}

// View returns the bytes of element index. The slice aliases the
// vector's buffer and must not be modified; it is invalidated by the
// next mutation.
func (v *Raw) View(index int) ([]byte, error) {
	if err := v.check("view"); err != nil {
		return nil, err
	}
	if err := v.checkIndex("view", index); err != nil {
		return nil, err
	}
	off := index * v.elemSize
	return v.buf[off : off+v.elemSize : off+v.elemSize], nil
}

// Bytes returns the live elements as one contiguous slice under the
// same rules as View. It returns nil for a nil or freed vector.
func (v *Raw) Bytes() []byte {
	if v == nil || v.buf == nil {
		return nil
	}
	n := v.length * v.elemSize
	return v.buf[:n:n]
}

func (v *Raw) check(op string) error {
	if v == nil {
		return opErr(op, errNilVector)
	}
	if v.buf == nil {
		return opErr(op, errNoBuffer)
	}
	return nil
}

func (v *Raw) checkIndex(op string, index int) error {
	if index < 0 || index >= v.length {
		return indexErr(op, index, fmt.Errorf("%w: length %d", ErrOutOfBounds, v.length))
	}
	return nil
}

// checkValue validates a single element.
func (v *Raw) checkValue(op string, value []byte) error {
	if value == nil {
		return opErr(op, errNilData)
	}
	if len(value) != v.elemSize {
		return opErr(op, fmt.Errorf("%w: element size %d, want %d", ErrInvalidArgument, len(value), v.elemSize))
	}
	return nil
}

// checkArray validates a run of elements and returns how many it holds.
func (v *Raw) checkArray(op string, arr []byte) (int, error) {
	if arr == nil {
		return 0, opErr(op, errNilData)
	}
	if len(arr)%v.elemSize != 0 {
		return 0, opErr(op, fmt.Errorf("%w: %d bytes is not a multiple of element size %d", ErrInvalidArgument, len(arr), v.elemSize))
	}
	return len(arr) / v.elemSize, nil
}

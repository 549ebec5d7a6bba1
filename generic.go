package vector

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Vector is a typed view over Raw with ElemSize equal to the size of T.
// Elements are stored as plain bytes, so T must not contain Go
// pointers (strings, slices, maps, interfaces, pointers, ...).
type Vector[T any] struct {
	raw *Raw
}

// New creates an empty vector of T.
func New[T any](opts ...Option) (*Vector[T], error) {
	size, err := elemSizeOf[T]("new")
	if err != nil {
		return nil, err
	}
	raw, err := NewRaw(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{raw: raw}, nil
}

// elemSizeOf returns the size of T after checking that T can be stored
// as plain bytes.
func elemSizeOf[T any](op string) (int, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	typ := reflect.TypeFor[T]()
	if size == 0 {
		return 0, opErr(op, fmt.Errorf("%w: %s has zero size", ErrInvalidArgument, typ))
	}
	if hasPointers(typ) {
		return 0, opErr(op, fmt.Errorf("%w: %s contains pointers", ErrInvalidArgument, typ))
	}
	return size, nil
}

// hasPointers reports whether values of t hold anything the garbage
// collector would need to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.String, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	}
	return false
}

func valueBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

func sliceBytes[T any](s []T) []byte {
	if s == nil {
		return nil
	}
	if len(s) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Raw returns the untyped vector backing v.
func (v *Vector[T]) Raw() *Raw {
	if v == nil {
		return nil
	}
	return v.raw
}

// Free returns the buffer to the allocator.
func (v *Vector[T]) Free() error { return v.Raw().Free() }

// Len returns the number of elements, or Invalid if v is nil.
func (v *Vector[T]) Len() int { return v.Raw().Len() }

// Cap returns the capacity in elements, or Invalid if v is nil.
func (v *Vector[T]) Cap() int { return v.Raw().Cap() }

// ElemSize returns the size of T, or Invalid if v is nil.
func (v *Vector[T]) ElemSize() int { return v.Raw().ElemSize() }

// At returns a copy of the element at index.
func (v *Vector[T]) At(index int) (T, error) {
	b, err := v.Raw().View(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *(*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// Slice returns the live elements. The slice aliases the vector's
// buffer: it must not be modified and is invalidated by the next
// mutation.
func (v *Vector[T]) Slice() []T {
	b := v.Raw().Bytes()
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), v.raw.length)
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) error {
	return v.Raw().PushBack(valueBytes(&value))
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() error { return v.Raw().PopBack() }

// PushFront prepends value.
func (v *Vector[T]) PushFront(value T) error {
	return v.Raw().PushFront(valueBytes(&value))
}

// PopFront removes the first element, shifting the rest down.
func (v *Vector[T]) PopFront() error { return v.Raw().PopFront() }

// Append adds values after the last element. A nil slice is rejected
// with ErrInvalidArgument; an empty one is a no-op.
func (v *Vector[T]) Append(values []T) error {
	return v.Raw().Append(sliceBytes(values))
}

// Prepend adds values before the first element, keeping their order.
func (v *Vector[T]) Prepend(values []T) error {
	return v.Raw().Prepend(sliceBytes(values))
}

// Remove deletes the element at index.
func (v *Vector[T]) Remove(index int) error { return v.Raw().Remove(index) }

// Insert places value at index, shifting later elements up.
func (v *Vector[T]) Insert(index int, value T) error {
	return v.Raw().Insert(index, valueBytes(&value))
}

// Replace overwrites the element at index.
func (v *Vector[T]) Replace(index int, value T) error {
	return v.Raw().Replace(index, valueBytes(&value))
}

// ReplaceRange replaces rng elements starting at index with values.
func (v *Vector[T]) ReplaceRange(index int, values []T, rng int) error {
	return v.Raw().ReplaceRange(index, sliceBytes(values), rng)
}

// Metrics returns a snapshot of the vector's statistics.
func (v *Vector[T]) Metrics() Metrics { return v.Raw().Metrics() }

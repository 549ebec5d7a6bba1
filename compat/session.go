// Package compat exposes the vector operations in their classic
// C-library shape: calls return nothing (or a sentinel) and failures are
// recorded in a sticky last-error slot.
//
// The slot belongs to a Session. Give each goroutine or logical call
// context its own Session so that independent callers do not see each
// other's errors. A Session is not goroutine-safe.
//
// The slot is set on failure and never cleared on success: to learn
// whether a particular call failed, compare Err before and after it, or
// call Clear first.
package compat

import (
	"fmt"

	"github.com/pavanmanishd/vector"
)

// Session carries one sticky error slot.
type Session struct {
	err   error
	alloc vector.Allocator
}

// NewSession returns a session whose vectors use HeapAllocator.
func NewSession() *Session {
	return &Session{}
}

// NewSessionWithAllocator returns a session whose vectors take their
// buffers from a.
func NewSessionWithAllocator(a vector.Allocator) *Session {
	return &Session{alloc: a}
}

// Err returns the most recent failure, or nil if no call has failed.
func (s *Session) Err() error {
	return s.err
}

// Clear empties the slot.
func (s *Session) Clear() {
	s.err = nil
}

// record stores err if it is non-nil and reports whether the call
// succeeded.
func (s *Session) record(err error) bool {
	if err != nil {
		s.err = err
		return false
	}
	return true
}

// DefaultCapacity returns vector.DefaultCapacity.
func (s *Session) DefaultCapacity() int {
	return vector.DefaultCapacity
}

// New creates a vector of elemSize-byte elements, or returns nil and
// records the failure.
func (s *Session) New(elemSize int) *vector.Raw {
	var opts []vector.Option
	if s.alloc != nil {
		opts = append(opts, vector.WithAllocator(s.alloc))
	}
	v, err := vector.NewRaw(elemSize, opts...)
	if !s.record(err) {
		return nil
	}
	return v
}

// Delete frees v. The caller must not use v afterwards.
func (s *Session) Delete(v *vector.Raw) {
	s.record(v.Free())
}

// Len returns the length of v, or vector.Invalid if v is nil.
func (s *Session) Len(v *vector.Raw) int {
	if v == nil {
		s.record(invalid("len", "nil vector"))
	}
	return v.Len()
}

// Size returns the element size of v, or vector.Invalid if v is nil.
func (s *Session) Size(v *vector.Raw) int {
	if v == nil {
		s.record(invalid("size", "nil vector"))
	}
	return v.ElemSize()
}

// Capacity returns the capacity of v, or vector.Invalid if v is nil.
func (s *Session) Capacity(v *vector.Raw) int {
	if v == nil {
		s.record(invalid("capacity", "nil vector"))
	}
	return v.Cap()
}

// View returns the bytes of element index, or nil on failure.
func (s *Session) View(v *vector.Raw, index int) []byte {
	b, err := v.View(index)
	if !s.record(err) {
		return nil
	}
	return b
}

// PushBack appends one element of size bytes.
func (s *Session) PushBack(v *vector.Raw, value []byte, size int) {
	if value, ok := s.sized("push_back", v, value, 1, size); ok {
		s.record(v.PushBack(value))
	}
}

// PopBack removes the last element.
func (s *Session) PopBack(v *vector.Raw) {
	s.record(v.PopBack())
}

// PushFront prepends one element of size bytes.
func (s *Session) PushFront(v *vector.Raw, value []byte, size int) {
	if value, ok := s.sized("push_front", v, value, 1, size); ok {
		s.record(v.PushFront(value))
	}
}

// PopFront removes the first element.
func (s *Session) PopFront(v *vector.Raw) {
	s.record(v.PopFront())
}

// Append appends the first n elements of arr.
func (s *Session) Append(v *vector.Raw, arr []byte, n, size int) {
	if arr, ok := s.sized("append", v, arr, n, size); ok {
		s.record(v.Append(arr))
	}
}

// Prepend prepends the first n elements of arr.
func (s *Session) Prepend(v *vector.Raw, arr []byte, n, size int) {
	if arr, ok := s.sized("prepend", v, arr, n, size); ok {
		s.record(v.Prepend(arr))
	}
}

// Remove deletes the element at index.
func (s *Session) Remove(v *vector.Raw, index int) {
	s.record(v.Remove(index))
}

// Insert places value before the element at index.
func (s *Session) Insert(v *vector.Raw, index int, value []byte, size int) {
	if value, ok := s.sized("insert", v, value, 1, size); ok {
		s.record(v.Insert(index, value))
	}
}

// Replace overwrites the element at index with value.
func (s *Session) Replace(v *vector.Raw, index int, value []byte, size int) {
	if value, ok := s.sized("replace", v, value, 1, size); ok {
		s.record(v.Replace(index, value))
	}
}

// ReplaceRange replaces rng elements at index with the first n elements
// of arr.
func (s *Session) ReplaceRange(v *vector.Raw, index int, arr []byte, n, rng, size int) {
	if arr, ok := s.sized("replace_range", v, arr, n, size); ok {
		s.record(v.ReplaceRange(index, arr, rng))
	}
}

// sized checks the caller's element size against v and trims data to n
// elements. Nil vectors and nil data pass through so that the vector
// reports them itself.
func (s *Session) sized(op string, v *vector.Raw, data []byte, n, size int) ([]byte, bool) {
	if v == nil || data == nil {
		return data, true
	}
	if size != v.ElemSize() {
		s.record(invalid(op, fmt.Sprintf("element size %d, want %d", size, v.ElemSize())))
		return nil, false
	}
	if n < 0 || n > len(data)/size {
		s.record(invalid(op, fmt.Sprintf("%d elements of %d bytes do not fit in %d bytes", n, size, len(data))))
		return nil, false
	}
	return data[:n*size], true
}

func invalid(op, detail string) error {
	return &vector.OpError{Op: op, Index: -1, Err: fmt.Errorf("%w: %s", vector.ErrInvalidArgument, detail)}
}

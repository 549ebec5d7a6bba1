package vector

// Allocator supplies and resizes vector buffers. Implementations must
// return exactly n bytes on success and leave buf untouched on failure.
// arena.Arena and arena.SafeArena satisfy it.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Reallocate(buf []byte, n int) ([]byte, error)
	Free(buf []byte)
}

// HeapAllocator delegates to the Go runtime and keeps Free as a no-op.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (HeapAllocator) Reallocate(buf []byte, n int) ([]byte, error) {
	if n == len(buf) {
		return buf, nil
	}
	b := make([]byte, n)
	copy(b, buf)
	return b, nil
}

func (HeapAllocator) Free([]byte) {}

// Option configures a vector at creation.
type Option func(*options)

type options struct {
	alloc Allocator
}

// WithAllocator makes the vector obtain its buffer from a. A nil a
// selects HeapAllocator.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

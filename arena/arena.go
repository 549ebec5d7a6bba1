// Package arena implements a chunked bump allocator (memory arena).
// It backs vector buffers: Allocate hands out aligned byte ranges,
// Reallocate grows or shrinks the most recent range in place when the
// chunk has room, and Free rolls the most recent range back.
package arena

import (
	"errors"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

var (
	// ErrReleased is returned when allocating from a released arena.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrLimitExceeded is returned when a new chunk would push the arena
	// past its byte limit.
	ErrLimitExceeded = errors.New("arena: limit exceeded")
)

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
	last   uintptr // start of the most recent allocation
}

// Arena is a chunked bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	limit        int
	currentChunk *chunk

	allocations   int
	reallocations int
	inPlace       int
	frees         int
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// SetLimit caps the total chunk capacity of the arena at n bytes.
// n <= 0 removes the limit. Chunks already allocated are kept even if
// they exceed the new limit.
func (a *Arena) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	a.limit = n
}

// Limit returns the byte limit, or 0 if the arena is unbounded.
func (a *Arena) Limit() int {
	return a.limit
}

// alloc carves n bytes out of the current chunk, opening a new chunk
// when the current one is full.
func (a *Arena) alloc(n int) ([]byte, error) {
	// Fast path: use cached current chunk
	if c := a.currentChunk; c != nil {
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			return c.take(off, n), nil
		}
	}

	if a.chunks == nil {
		return nil, ErrReleased
	}
	if c := a.nextChunk(n); c != nil {
		a.currentChunk = c
		return c.take(0, n), nil
	}
	size := a.chunkSize
	if n > size {
		size = n
	}
	if a.limit > 0 {
		used := a.Capacity()
		if used+size > a.limit {
			// Fall back to an exact-fit chunk before giving up.
			if used+n > a.limit {
				return nil, ErrLimitExceeded
			}
			size = n
		}
	}
	a.grow(size)
	return a.currentChunk.take(0, n), nil
}

// nextChunk returns an unused chunk after the current one that can hold
// n bytes. Chunks become reusable after Reset.
func (a *Arena) nextChunk(n int) *chunk {
	found := false
	for i := range a.chunks {
		c := &a.chunks[i]
		if !found {
			found = c == a.currentChunk
			continue
		}
		if c.offset == 0 && len(c.buf) >= n {
			return c
		}
	}
	return nil
}

// take hands out n bytes starting at the aligned offset off.
func (c *chunk) take(off uintptr, n int) []byte {
	start := int(off)
	c.last = off
	c.offset = off + uintptr(n)
	return c.buf[start : start+n : start+n]
}

// tail reports whether buf is the most recent allocation of the current
// chunk and returns its start offset.
func (a *Arena) tail(buf []byte) (*chunk, uintptr, bool) {
	c := a.currentChunk
	if c == nil || len(buf) == 0 {
		return nil, 0, false
	}
	start := c.last
	if start >= uintptr(len(c.buf)) || c.offset-start != uintptr(len(buf)) {
		return nil, 0, false
	}
	if unsafe.SliceData(buf) != &c.buf[start] {
		return nil, 0, false
	}
	return c, start, true
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Buffers handed out before Reset must no longer be in use.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
		a.chunks[i].last = 0
	}
	// Reset cached chunk to first chunk
	if len(a.chunks) > 0 {
		a.currentChunk = &a.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Subsequent allocations fail with ErrReleased.
func (a *Arena) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of size bytes and makes it current.
func (a *Arena) grow(size int) {
	buf := make([]byte, size)
	a.chunks = append(a.chunks, chunk{buf: buf})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}

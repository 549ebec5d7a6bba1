package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Vectors owned by different goroutines can share one SafeArena; each
// vector itself must still be used by a single goroutine at a time.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// Allocate thread-safely allocates n bytes.
func (s *SafeArena) Allocate(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Reallocate thread-safely resizes buf to n bytes.
func (s *SafeArena) Reallocate(buf []byte, n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reallocate(buf, n)
}

// Free thread-safely gives buf back to the arena.
func (s *SafeArena) Free(buf []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(buf)
}

// SetLimit thread-safely caps the arena's total chunk capacity.
func (s *SafeArena) SetLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.SetLimit(n)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

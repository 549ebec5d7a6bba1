package arena

// Allocate returns n bytes from the arena, aligned to pointer size.
// The bytes are not zeroed after a Reset.
// Returns nil if n <= 0.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	b, err := a.alloc(n)
	if err != nil {
		return nil, err
	}
	a.allocations++
	return b, nil
}

// Reallocate resizes buf to n bytes and returns the resized slice. When
// buf is the most recent allocation and the chunk has room, it is
// resized in place and keeps its address. Otherwise a new range is
// allocated and the common prefix copied; the old range is reclaimed
// on Reset. On error buf is left untouched.
func (a *Arena) Reallocate(buf []byte, n int) ([]byte, error) {
	if len(buf) == 0 {
		return a.Allocate(n)
	}
	if n <= 0 {
		a.Free(buf)
		return nil, nil
	}
	if a.chunks == nil {
		return nil, ErrReleased
	}
	a.reallocations++

	if c, start, ok := a.tail(buf); ok && start+uintptr(n) <= uintptr(len(c.buf)) {
		a.inPlace++
		return c.take(start, n), nil
	}

	b, err := a.alloc(n)
	if err != nil {
		return nil, err
	}
	copy(b, buf)
	return b, nil
}

// Free gives buf back to the arena. Only the most recent allocation is
// reclaimed immediately; anything else waits for Reset.
func (a *Arena) Free(buf []byte) {
	c, start, ok := a.tail(buf)
	if !ok {
		return
	}
	a.frees++
	c.offset = start
}

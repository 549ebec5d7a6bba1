package arena

import (
	"errors"
	"fmt"
)

// Example demonstrates growing a buffer in place.
func Example() {
	a := NewArena(1024)
	defer a.Release()

	buf, _ := a.Allocate(64)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// The most recent allocation grows without moving.
	buf, _ = a.Reallocate(buf, 256)
	fmt.Printf("Reallocated to %d bytes, in use: %d\n", len(buf), a.SizeInUse())

	m := a.Metrics()
	fmt.Printf("Reallocations: %d, in place: %d\n", m.Reallocations, m.InPlace)

	a.Free(buf)
	fmt.Printf("After free, memory in use: %d bytes\n", a.SizeInUse())

	// Output:
	// Allocated buffer of size: 64
	// Reallocated to 256 bytes, in use: 256
	// Reallocations: 1, in place: 1
	// After free, memory in use: 0 bytes
}

// ExampleArena_SetLimit demonstrates bounding an arena.
func ExampleArena_SetLimit() {
	a := NewArena(1024)
	defer a.Release()
	a.SetLimit(1024)

	_, err := a.Allocate(1000)
	fmt.Println("first:", err)

	_, err = a.Allocate(100)
	fmt.Println("second:", errors.Is(err, ErrLimitExceeded))

	// Output:
	// first: <nil>
	// second: true
}

// ExampleArena_Reset demonstrates arena reuse with Reset
func ExampleArena_Reset() {
	a := NewArena(1024)
	defer a.Release()

	for round := 1; round <= 3; round++ {
		for i := 0; i < 5; i++ {
			a.Allocate(8)
		}

		fmt.Printf("Round %d - Memory in use: %d bytes\n", round, a.SizeInUse())

		// Reset arena for next round (O(1) operation)
		a.Reset()
	}

	// Output:
	// Round 1 - Memory in use: 40 bytes
	// Round 2 - Memory in use: 40 bytes
	// Round 3 - Memory in use: 40 bytes
}

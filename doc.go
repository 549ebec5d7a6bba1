// Package vector implements a growable array of fixed-size elements
// stored contiguously in a single byte buffer.
//
// # Overview
//
// Two forms share one implementation:
//
//   - Raw stores elements of a size chosen at run time and moves them
//     as byte slices. Use it when the element layout is only known as a
//     size, e.g. records exchanged with foreign code.
//   - Vector[T] stores values of a pointer-free type T and forwards to a
//     Raw whose element size is the size of T.
//
// # Basic Usage
//
//	v, err := vector.New[int32]()
//	if err != nil {
//		return err
//	}
//	defer v.Free()
//
//	v.Append([]int32{4, 5, 6})
//	v.Prepend([]int32{1, 2, 3})
//	v.Insert(3, 42)        // [1 2 3 42 4 5 6]
//	v.Remove(3)            // [1 2 3 4 5 6]
//	x, err := v.At(0)      // 1
//
// # Capacity
//
// A new vector holds DefaultCapacity (8) elements. Before an insertion
// would exceed the capacity, the capacity doubles until the new length
// fits. After PopBack, PopFront or Remove, the capacity halves once if
// the new length is below half the capacity and the half is at least
// DefaultCapacity. Insert and replace paths never shrink.
//
// # Errors
//
// Every operation returns an error wrapping one of ErrInvalidArgument,
// ErrEmpty, ErrOutOfBounds, ErrRangeTooLarge or ErrAllocation. A failed
// operation leaves length, capacity and contents unchanged, including
// when the allocator fails halfway through. Package compat offers a
// sticky last-error slot on top of this for callers that want one.
//
// # Allocation
//
// Buffers come from an Allocator, HeapAllocator by default. The arena
// package provides a bump allocator whose Reallocate grows the most
// recent buffer in place:
//
//	a := arena.NewArena(0)
//	defer a.Release()
//	v, err := vector.New[float64](vector.WithAllocator(a))
//
// # Thread Safety
//
// A vector is not goroutine-safe; serialize access to each vector.
// Vectors on different goroutines may share an arena.SafeArena.
//
// # Snapshots
//
// MarshalBinary encodes a vector as CBOR with a BLAKE3 checksum;
// DecodeRaw and Decode rebuild it.
package vector

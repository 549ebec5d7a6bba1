package vector

import (
	"fmt"
	"math"
)

// grownCapacity doubles capacity until it holds need elements of
// elemSize bytes.
func grownCapacity(capacity, need, elemSize int) (int, error) {
	limit := math.MaxInt / elemSize
	if need > limit {
		return 0, errOverflow
	}
	for capacity < need {
		if capacity > limit/2 {
			return 0, errOverflow
		}
		capacity *= 2
	}
	return capacity, nil
}

// shrinkable reports whether a vector left with lengthAfter elements
// may halve its capacity.
func shrinkable(capacity, lengthAfter int) bool {
	half := capacity / 2
	return lengthAfter < half && half >= DefaultCapacity
}

// reserve grows the buffer so that it holds need elements. The buffer
// is reallocated once, at the final doubled capacity.
func (v *Raw) reserve(op string, need int) error {
	if need <= v.capacity {
		return nil
	}
	capacity, err := grownCapacity(v.capacity, need, v.elemSize)
	if err != nil {
		return opErr(op, err)
	}
	if err := v.resize(op, capacity); err != nil {
		return err
	}
	v.grows++
	return nil
}

// shrink halves the buffer once if lengthAfter allows it. It runs before
// any bytes move: lengthAfter < capacity/2 means every live element
// still fits.
func (v *Raw) shrink(op string, lengthAfter int) error {
	if !shrinkable(v.capacity, lengthAfter) {
		return nil
	}
	if err := v.resize(op, v.capacity/2); err != nil {
		return err
	}
	v.shrinks++
	return nil
}

func (v *Raw) resize(op string, capacity int) error {
	n := capacity * v.elemSize
	buf, err := v.alloc.Reallocate(v.buf, n)
	if err != nil {
		return opErr(op, fmt.Errorf("%w: %w", ErrAllocation, err))
	}
	if len(buf) != n {
		return opErr(op, fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrAllocation, len(buf), n))
	}
	v.buf = buf
	v.capacity = capacity
	return nil
}

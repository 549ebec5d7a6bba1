package vector

import "fmt"

// PushBack appends value, which must be exactly ElemSize bytes.
func (v *Raw) PushBack(value []byte) error {
	const op = "push_back"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.checkValue(op, value); err != nil {
		return err
	}
	if err := v.reserve(op, v.length+1); err != nil {
		return err
	}
	copy(v.buf[v.length*v.elemSize:], value)
	v.length++
	return nil
}

// PopBack drops the last element.
func (v *Raw) PopBack() error {
	const op = "pop_back"
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return opErr(op, ErrEmpty)
	}
	if err := v.shrink(op, v.length-1); err != nil {
		return err
	}
	v.length--
	return nil
}

// PushFront inserts value before the first element.
func (v *Raw) PushFront(value []byte) error {
	const op = "push_front"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.checkValue(op, value); err != nil {
		return err
	}
	if err := v.reserve(op, v.length+1); err != nil {
		return err
	}
	s := v.elemSize
	copy(v.buf[s:(v.length+1)*s], v.buf[:v.length*s])
	copy(v.buf[:s], value)
	v.length++
	return nil
}

// PopFront drops the first element and shifts the rest down one slot.
func (v *Raw) PopFront() error {
	const op = "pop_front"
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return opErr(op, ErrEmpty)
	}
	if err := v.shrink(op, v.length-1); err != nil {
		return err
	}
	s := v.elemSize
	copy(v.buf[:(v.length-1)*s], v.buf[s:v.length*s])
	v.length--
	return nil
}

// Append copies the elements in arr after the last element. len(arr)
// must be a multiple of ElemSize.
func (v *Raw) Append(arr []byte) error {
	const op = "append"
	if err := v.check(op); err != nil {
		return err
	}
	n, err := v.checkArray(op, arr)
	if err != nil {
		return err
	}
	if err := v.reserve(op, v.length+n); err != nil {
		return err
	}
	copy(v.buf[v.length*v.elemSize:], arr)
	v.length += n
	return nil
}

// Prepend copies the elements in arr before the first element, keeping
// their order. arr must not alias the vector's own buffer.
func (v *Raw) Prepend(arr []byte) error {
	const op = "prepend"
	if err := v.check(op); err != nil {
		return err
	}
	n, err := v.checkArray(op, arr)
	if err != nil {
		return err
	}
	if err := v.reserve(op, v.length+n); err != nil {
		return err
	}
	s := v.elemSize
	copy(v.buf[n*s:(v.length+n)*s], v.buf[:v.length*s])
	copy(v.buf[:n*s], arr)
	v.length += n
	return nil
}

// Remove deletes the element at index and shifts the following
// elements down one slot.
func (v *Raw) Remove(index int) error {
	const op = "remove"
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return indexErr(op, index, ErrEmpty)
	}
	if err := v.checkIndex(op, index); err != nil {
		return err
	}
	if err := v.shrink(op, v.length-1); err != nil {
		return err
	}
	s := v.elemSize
	copy(v.buf[index*s:(v.length-1)*s], v.buf[(index+1)*s:v.length*s])
	v.length--
	return nil
}

// Insert places value at index, shifting the element there and every
// later one up a slot. index must name an existing element; use
// PushBack to add past the end.
func (v *Raw) Insert(index int, value []byte) error {
	const op = "insert"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.checkValue(op, value); err != nil {
		return err
	}
	if err := v.checkIndex(op, index); err != nil {
		return err
	}
	if err := v.reserve(op, v.length+1); err != nil {
		return err
	}
	s := v.elemSize
	copy(v.buf[(index+1)*s:(v.length+1)*s], v.buf[index*s:v.length*s])
	copy(v.buf[index*s:(index+1)*s], value)
	v.length++
	return nil
}

// Replace overwrites the element at index.
func (v *Raw) Replace(index int, value []byte) error {
	const op = "replace"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.checkValue(op, value); err != nil {
		return err
	}
	if err := v.checkIndex(op, index); err != nil {
		return err
	}
	copy(v.buf[index*v.elemSize:], value)
	return nil
}

// ReplaceRange replaces the rng elements starting at index with the
// elements in arr, which may be more or fewer than rng. The elements
// after the range move to follow the new ones. arr must not alias the
// vector's own buffer.
func (v *Raw) ReplaceRange(index int, arr []byte, rng int) error {
	const op = "replace_range"
	if err := v.check(op); err != nil {
		return err
	}
	n, err := v.checkArray(op, arr)
	if err != nil {
		return err
	}
	if err := v.checkIndex(op, index); err != nil {
		return err
	}
	if rng < 0 {
		return indexErr(op, index, fmt.Errorf("%w: negative range %d", ErrInvalidArgument, rng))
	}
	if rng > v.length-index {
		return indexErr(op, index, fmt.Errorf("%w: range %d, length %d", ErrRangeTooLarge, rng, v.length))
	}
	newLength := v.length - rng + n
	if err := v.reserve(op, newLength); err != nil {
		return err
	}
	s := v.elemSize
	tail := v.length - index - rng
	copy(v.buf[(index+n)*s:(index+n+tail)*s], v.buf[(index+rng)*s:v.length*s])
	copy(v.buf[index*s:(index+n)*s], arr)
	v.length = newLength
	return nil
}

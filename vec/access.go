package vec

import "github.com/wilhasse/govec/ut"

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// At returns the element at index i. The result is a shallow copy: for
// handle types the vector still owns what it points to. An index outside
// [0, Len()) is a programming error and panics.
func (v *Vector[T]) At(i int) T {
	v.mustBeLive("at")
	ut.Assert(i >= 0 && i < v.size, "vec: index %d out of range [0,%d)", i, v.size)
	return v.buf[i]
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	v.mustBeLive("front")
	ut.Assert(v.size > 0, "vec: front of empty vector")
	return v.buf[0]
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	v.mustBeLive("back")
	ut.Assert(v.size > 0, "vec: back of empty vector")
	return v.buf[v.size-1]
}

// Slice returns a shallow copy of the elements in a new slice.
func (v *Vector[T]) Slice() []T {
	v.mustBeLive("slice")
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])
	return out
}

// Package elem provides ready-made vector instantiations for common element
// types.
package elem

import (
	"bytes"

	"github.com/wilhasse/govec/vec"
)

// NewInts creates a vector of int with plain value semantics.
func NewInts(opts ...vec.Option) (*vec.Vector[int], error) {
	return vec.New(vec.Lifecycle[int]{}, opts...)
}

// NewChars creates a vector of rune.
func NewChars(opts ...vec.Option) (*vec.Vector[rune], error) {
	return vec.New(vec.Lifecycle[rune]{}, opts...)
}

// NewFloats creates a vector of float32.
func NewFloats(opts ...vec.Option) (*vec.Vector[float32], error) {
	return vec.New(vec.Lifecycle[float32]{}, opts...)
}

// NewDoubles creates a vector of float64.
func NewDoubles(opts ...vec.Option) (*vec.Vector[float64], error) {
	return vec.New(vec.Lifecycle[float64]{}, opts...)
}

// StringLifecycle stores private copies of byte strings and scrubs them when
// they leave the vector. Callers keep ownership of what they pass in.
func StringLifecycle() vec.Lifecycle[[]byte] {
	return vec.Lifecycle[[]byte]{
		Copy:    CopyBytes,
		Destroy: ScrubBytes,
	}
}

// NewStrings creates a vector of owned byte strings.
func NewStrings(opts ...vec.Option) (*vec.Vector[[]byte], error) {
	return vec.New(StringLifecycle(), opts...)
}

// CopyBytes returns a private copy of b.
func CopyBytes(b []byte) ([]byte, error) {
	return bytes.Clone(b), nil
}

// ScrubBytes zeroes b.
func ScrubBytes(b []byte) {
	clear(b)
}

// NestedLifecycle stores clones of inner vectors and releases them on
// removal, so the outer vector owns every inner vector it holds.
func NestedLifecycle[T any]() vec.Lifecycle[*vec.Vector[T]] {
	return vec.Lifecycle[*vec.Vector[T]]{
		Copy: func(inner *vec.Vector[T]) (*vec.Vector[T], error) {
			if inner == nil {
				return nil, nil
			}
			return inner.Clone()
		},
		Destroy: func(inner *vec.Vector[T]) {
			inner.Release()
		},
	}
}

// NewNested creates a vector of vectors.
func NewNested[T any](opts ...vec.Option) (*vec.Vector[*vec.Vector[T]], error) {
	return vec.New(NestedLifecycle[T](), opts...)
}

package vec

import "iter"

// ForEach calls fn for every element in index order.
//
// fn must not push, insert, pop, replace or clear on v; the result of doing
// so is undefined.
func (v *Vector[T]) ForEach(fn func(T)) {
	v.mustBeLive("foreach")
	for i := 0; i < v.size; i++ {
		fn(v.buf[i])
	}
}

// All returns an iterator over index/element pairs, with the same
// restriction as ForEach. Each range starts again from index 0.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	v.mustBeLive("all")
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

package vec

// Push appends x. It fails only when the buffer cannot grow or Copy fails;
// the live elements are unchanged in both cases.
func (v *Vector[T]) Push(x T) error {
	v.mustBeLive("push")
	if err := v.growForOne(); err != nil {
		return opError("push", err)
	}
	val, err := v.construct(x)
	if err != nil {
		return opError("push", err)
	}
	v.buf[v.size] = val
	v.size++
	return nil
}

// Insert places x at index i, shifting the elements at [i, Len()) one slot
// to the right. Shifted elements are moved, not copied or destroyed.
func (v *Vector[T]) Insert(i int, x T) error {
	v.mustBeLive("insert")
	if i < 0 || i > v.size {
		return indexError("insert", i, ErrIndexOutOfRange)
	}
	if err := v.growForOne(); err != nil {
		return indexError("insert", i, err)
	}
	val, err := v.construct(x)
	if err != nil {
		return indexError("insert", i, err)
	}
	copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	v.buf[i] = val
	v.size++
	return nil
}

// Pop removes and destroys the last element. It reports false on an empty
// vector.
func (v *Vector[T]) Pop() bool {
	v.mustBeLive("pop")
	if v.size == 0 {
		return false
	}
	v.size--
	old := v.buf[v.size]
	var zero T
	v.buf[v.size] = zero
	v.destroy(old)
	return true
}

// Replace stores x at index i, destroying the previous value.
//
// When x equals the stored value the call does nothing: neither Copy nor
// Destroy runs. Equality is Lifecycle.Equal when set and ShallowEqual
// otherwise, so for pointer or slice elements a different handle to equal
// content is replaced, while the same handle is not.
func (v *Vector[T]) Replace(i int, x T) error {
	v.mustBeLive("replace")
	if i < 0 || i >= v.size {
		return indexError("replace", i, ErrIndexOutOfRange)
	}
	cur := v.buf[i]
	if v.equal(cur, x) {
		return nil
	}
	val, err := v.construct(x)
	if err != nil {
		return indexError("replace", i, err)
	}
	v.buf[i] = val
	v.destroy(cur)
	return nil
}

// Clear destroys every element in index order and keeps the capacity. A
// panicking Destroy hook still leaves the vector empty with every element
// destroyed.
func (v *Vector[T]) Clear() {
	v.mustBeLive("clear")
	n := v.size
	v.size = 0
	defer clear(v.buf[:n])
	v.destroyAll(v.buf[:n])
}

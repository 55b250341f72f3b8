package vec

import "go.uber.org/zap"

// Release destroys every element, returns the buffer to the allocator and
// marks the vector released. It is safe to call on a nil or already
// released vector. A panicking Destroy hook does not stop the remaining
// elements from being destroyed or the buffer from being returned; the
// panic is re-raised afterwards.
//
// After Release only Release, Released, Len, Cap and Empty may be called.
func (v *Vector[T]) Release() {
	if v == nil || v.released {
		return
	}
	v.released = true
	n, buf := v.size, v.buf
	v.buf = nil
	v.size = 0
	defer func() {
		v.free(buf)
		v.log.Debug("vector released",
			zap.Int("destroyed", n),
			zap.Int("capacity", len(buf)))
	}()
	v.destroyAll(buf[:n])
}

// Released reports whether Release has run.
func (v *Vector[T]) Released() bool {
	return v != nil && v.released
}

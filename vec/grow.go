package vec

import "go.uber.org/zap"

// growForOne doubles the buffer when fewer than two free slots remain.
// On failure the vector is unchanged.
func (v *Vector[T]) growForOne() error {
	if v.size+1 < len(v.buf) {
		return nil
	}
	return v.resize(len(v.buf) * 2)
}

// resize moves the live slots into a buffer of n slots.
func (v *Vector[T]) resize(n int) error {
	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	copy(buf, v.buf[:v.size])
	old := v.buf
	v.buf = buf
	v.free(old)
	v.log.Debug("buffer resized",
		zap.Int("size", v.size),
		zap.Int("from", len(old)),
		zap.Int("to", n))
	return nil
}

// Optimize shrinks the capacity to the current length.
//
// An empty vector is left as is: its capacity stays at whatever it had grown
// to. Clear followed by Optimize therefore does not return memory; Release
// does.
func (v *Vector[T]) Optimize() error {
	v.mustBeLive("optimize")
	if v.size == 0 || v.size == len(v.buf) {
		return nil
	}
	if err := v.resize(v.size); err != nil {
		return opError("optimize", err)
	}
	return nil
}

package vec

import "go.uber.org/zap"

// Clone returns an independent vector holding copies of v's elements, made
// with the same Lifecycle, allocator and logger. Each element goes through
// Copy when it is set, and is copied shallowly otherwise.
//
// If allocation or a Copy call fails, everything built so far is destroyed
// and released before the error is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.mustBeLive("clone")
	o := v.opts
	o.capacity = max(v.size, DefaultCapacity)
	c, err := newVector(v.lc, o)
	if err != nil {
		return nil, opError("clone", err)
	}
	for i := 0; i < v.size; i++ {
		val, err := c.construct(v.buf[i])
		if err != nil {
			c.Release()
			return nil, indexError("clone", i, err)
		}
		c.buf[i] = val
		c.size++
	}
	v.log.Debug("vector cloned",
		zap.Stringer("clone", c.id),
		zap.Int("size", c.size),
		zap.Int("capacity", len(c.buf)))
	return c, nil
}

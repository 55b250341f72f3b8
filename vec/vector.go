// Package vec implements Vector, a growable contiguous container with
// pluggable element copy-construction and destruction.
//
// A Vector owns its buffer exclusively. Values written into it go through the
// configured Lifecycle: Copy produces the stored value from the caller's
// argument, Destroy runs exactly once for every stored value when it leaves
// the vector (Pop, Clear, Replace, Release). Without a Copy function values
// are stored as shallow copies, so a vector of pointers or slices shares them
// with the caller.
//
// A Vector is not safe for concurrent use.
package vec

import (
	"math"
	"unsafe"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wilhasse/govec/mem"
	"github.com/wilhasse/govec/ut"
)

// DefaultCapacity is the number of slots allocated by New when no capacity
// is requested, and the minimum capacity of a clone.
const DefaultCapacity = 2

// Lifecycle holds the optional per-element collaborators of a Vector.
type Lifecycle[T any] struct {
	// Copy returns an independent copy of its argument. The argument must be
	// left untouched. Nil means values are stored as they are given.
	Copy func(T) (T, error)
	// Destroy releases resources owned by a stored value. Nil means removal
	// only updates bookkeeping.
	Destroy func(T)
	// Equal decides whether Replace is a no-op. Nil means shallow equality,
	// see Replace.
	Equal func(a, b T) bool
}

// Option configures a Vector at creation time.
type Option func(*options)

type options struct {
	capacity int
	alloc    mem.Allocator
	log      *zap.Logger
}

// WithCapacity sets the initial number of slots. Values below 1 are raised to 1.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithAllocator accounts buffer memory against a. Nil keeps the default.
func WithAllocator(a mem.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithLogger sets the logger used for growth, shrink and release events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Vector is a growable array of T.
type Vector[T any] struct {
	size     int
	buf      []T
	lc       Lifecycle[T]
	opts     options
	elemSize int
	id       uuid.UUID
	log      *zap.Logger
	released bool
}

// New allocates an empty vector bound to lc.
func New[T any](lc Lifecycle[T], opts ...Option) (*Vector[T], error) {
	o := options{
		capacity: DefaultCapacity,
		alloc:    mem.DefaultAllocator,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	v, err := newVector(lc, o)
	if err != nil {
		return nil, opError("new", err)
	}
	return v, nil
}

func newVector[T any](lc Lifecycle[T], o options) (*Vector[T], error) {
	if o.capacity < 1 {
		o.capacity = 1
	}
	var zero T
	v := &Vector[T]{
		lc:       lc,
		opts:     o,
		elemSize: int(unsafe.Sizeof(zero)),
		id:       uuid.New(),
	}
	v.log = o.log.With(zap.Stringer("vector", v.id))
	buf, err := v.allocate(o.capacity)
	if err != nil {
		return nil, err
	}
	v.buf = buf
	return v, nil
}

// ID returns the identifier used in log entries.
func (v *Vector[T]) ID() uuid.UUID {
	if v == nil {
		return uuid.Nil
	}
	return v.id
}

// allocate reserves and creates a buffer of n slots.
func (v *Vector[T]) allocate(n int) ([]T, error) {
	if v.elemSize > 0 && n > math.MaxInt/v.elemSize {
		return nil, mem.ErrOutOfMemory
	}
	size := n * v.elemSize
	if err := v.opts.alloc.Reserve(size); err != nil {
		v.log.Warn("buffer reservation refused",
			zap.Int("slots", n),
			zap.Int("bytes", size),
			zap.Error(err))
		return nil, err
	}
	return make([]T, n), nil
}

// free drops buf's contents and returns its bytes to the allocator.
func (v *Vector[T]) free(buf []T) {
	if buf == nil {
		return
	}
	clear(buf)
	v.opts.alloc.Release(len(buf) * v.elemSize)
}

func (v *Vector[T]) mustBeLive(op string) {
	ut.Assert(v != nil, "vec: %s on nil vector", op)
	ut.Assert(!v.released, "vec: %s on released vector %s", op, v.id)
}

// Package scope ties the release of owned resources to a lexical block.
//
// Anything with a Release method can be handed to a Scope. When the scope
// closes, every tracked resource is released in reverse order of
// registration, on normal return, early return, error return and panic
// alike:
//
//	err := scope.Run(func(s *scope.Scope) error {
//	    ints := scope.Keep(s, must(vec.New(vec.Lifecycle[int]{})))
//	    words := scope.Keep(s, must(elem.NewStrings()))
//	    ...
//	    return nil
//	})
//
// Resources may also be released explicitly before the scope ends; Release
// implementations must therefore tolerate being called twice.
package scope

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Releaser is a resource that can be torn down without knowing its type.
type Releaser interface {
	Release()
}

// ReleaseFunc adapts a function to Releaser.
type ReleaseFunc func()

// Release calls f.
func (f ReleaseFunc) Release() { f() }

// Option configures a Scope.
type Option func(*Scope)

// WithLogger sets the logger used to report cleanup failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scope) {
		if l != nil {
			s.log = l
		}
	}
}

type cleanup struct {
	release Releaser
	fn      func() error
}

// Scope collects cleanups and runs them once, last registered first.
type Scope struct {
	cleanups []cleanup
	closed   bool
	log      *zap.Logger
}

// New creates an open scope.
func New(opts ...Option) *Scope {
	s := &Scope{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Keep registers r for release when s closes and returns it unchanged.
// A nil r is ignored. Keeping on a closed scope releases r immediately.
func Keep[R Releaser](s *Scope, r R) R {
	if isNil(any(r)) {
		return r
	}
	if s.closed {
		r.Release()
		return r
	}
	s.cleanups = append(s.cleanups, cleanup{release: r})
	return r
}

// Defer registers a cleanup that may fail. Its error is reported by Close.
func (s *Scope) Defer(fn func() error) {
	if fn == nil {
		return
	}
	if s.closed {
		s.log.Warn("cleanup registered on closed scope; running now")
		if err := fn(); err != nil {
			s.log.Error("cleanup failed", zap.Error(err))
		}
		return
	}
	s.cleanups = append(s.cleanups, cleanup{fn: fn})
}

// Len reports the number of pending cleanups.
func (s *Scope) Len() int {
	return len(s.cleanups)
}

// Close runs every pending cleanup in reverse order and returns their
// combined errors. Later calls do nothing and return nil.
//
// A panicking cleanup does not stop the others; the first panic is raised
// again once all cleanups have run.
func (s *Scope) Close() (err error) {
	if s.closed {
		return nil
	}
	s.closed = true
	var panicked any
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		p, cerr := run(s.cleanups[i])
		if p != nil && panicked == nil {
			panicked = p
		}
		if cerr != nil {
			s.log.Error("cleanup failed", zap.Int("index", i), zap.Error(cerr))
			err = multierr.Append(err, cerr)
		}
	}
	s.cleanups = nil
	if panicked != nil {
		panic(panicked)
	}
	return err
}

func run(c cleanup) (panicked any, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked = r
		}
	}()
	if c.release != nil {
		c.release.Release()
		return nil, nil
	}
	return nil, c.fn()
}

func isNil(r any) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Run calls fn with a fresh scope and closes the scope when fn returns or
// panics. Errors from fn and from cleanups are combined. A panic in fn is
// raised again after the scope has closed.
func Run(fn func(s *Scope) error, opts ...Option) (err error) {
	s := New(opts...)
	defer func() {
		if r := recover(); r != nil {
			if cerr := closeQuietly(s); cerr != nil {
				s.log.Error("cleanup failed while panicking", zap.Error(cerr))
			}
			panic(r)
		}
		err = multierr.Append(err, s.Close())
	}()
	return fn(s)
}

// closeQuietly closes s, turning a cleanup panic into an error so an
// in-flight panic is not replaced.
func closeQuietly(s *Scope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scope: cleanup panicked: %v", r)
		}
	}()
	return s.Close()
}

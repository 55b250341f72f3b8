package vec

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/wilhasse/govec/ut"
)

var intSize = int(unsafe.Sizeof(int(0)))

// tally counts lifecycle calls.
type tally struct {
	copies    int
	destroyed []int
}

func (c *tally) lifecycle() Lifecycle[int] {
	return Lifecycle[int]{
		Copy: func(x int) (int, error) {
			c.copies++
			return x, nil
		},
		Destroy: func(x int) {
			c.destroyed = append(c.destroyed, x)
		},
	}
}

// boxes is a lifecycle over owned *string handles.
type boxes struct {
	copies   int
	destroys int
	failAt   int
}

var errCopyFailed = errors.New("copy failed")

func (b *boxes) lifecycle() Lifecycle[*string] {
	return Lifecycle[*string]{
		Copy: func(p *string) (*string, error) {
			b.copies++
			if b.failAt > 0 && b.copies == b.failAt {
				return nil, errCopyFailed
			}
			s := *p
			return &s, nil
		},
		Destroy: func(*string) {
			b.destroys++
		},
	}
}

func box(s string) *string {
	return &s
}

func newInts(t *testing.T, values ...int) *Vector[int] {
	t.Helper()
	v, err := New(Lifecycle[int]{})
	require.NoError(t, err)
	t.Cleanup(v.Release)
	for _, x := range values {
		require.NoError(t, v.Push(x))
	}
	return v
}

// requireAssertion fails the test unless fn panics with a failed assertion.
func requireAssertion(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		_, ok := r.(*ut.AssertionError)
		require.True(t, ok, "expected *ut.AssertionError panic, got %v", r)
	}()
	fn()
}

// panicOn is a lifecycle whose Destroy records every call and panics on bad.
func panicOn(bad int, destroyed *[]int) Lifecycle[int] {
	return Lifecycle[int]{
		Destroy: func(x int) {
			*destroyed = append(*destroyed, x)
			if x == bad {
				panic("destroy failed")
			}
		},
	}
}

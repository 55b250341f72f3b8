package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/govec/mem"
)

func TestClone_ValuesAreIndependent(t *testing.T) {
	src := newInts(t, 1, 2, 3, 4, 5)
	c, err := src.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.Equal(t, src.Len(), c.Len())
	assert.Equal(t, 5, c.Cap())
	assert.Equal(t, src.Slice(), c.Slice())
	assert.NotEqual(t, src.ID(), c.ID())

	require.NoError(t, c.Replace(0, 100))
	require.NoError(t, c.Push(6))
	assert.Equal(t, 1, src.At(0))
	assert.Equal(t, 5, src.Len())

	assert.True(t, src.Pop())
	assert.Equal(t, 6, c.Len())
}

func TestClone_MinimumCapacity(t *testing.T) {
	src := newInts(t)
	c, err := src.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.True(t, c.Empty())
	assert.Equal(t, DefaultCapacity, c.Cap())
}

func TestClone_DeepCopiesHandles(t *testing.T) {
	b := &boxes{}
	src, err := New(b.lifecycle())
	require.NoError(t, err)
	defer src.Release()
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, src.Push(box(s)))
	}

	c, err := src.Clone()
	require.NoError(t, err)
	defer c.Release()

	for i := 0; i < src.Len(); i++ {
		assert.Equal(t, *src.At(i), *c.At(i))
		assert.NotSame(t, src.At(i), c.At(i))
	}
	*c.At(0) = "changed"
	assert.Equal(t, "a", *src.At(0))
}

func TestClone_ShallowWithoutConstructor(t *testing.T) {
	src, err := New(Lifecycle[*string]{})
	require.NoError(t, err)
	defer src.Release()
	require.NoError(t, src.Push(box("shared")))

	c, err := src.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.Same(t, src.At(0), c.At(0))
}

func TestClone_FailureTearsDownPartialClone(t *testing.T) {
	b := &boxes{}
	tracker := mem.NewTracker(nil)
	src, err := New(b.lifecycle(), WithAllocator(tracker))
	require.NoError(t, err)
	defer src.Release()
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, src.Push(box(s)))
	}
	inUse := tracker.Stats().InUse

	// Fail on the third element copied into the clone.
	b.failAt = b.copies + 3
	c, err := src.Clone()
	require.ErrorIs(t, err, errCopyFailed)
	assert.Nil(t, c)

	assert.Equal(t, 2, b.destroys, "copies made before the failure are destroyed")
	assert.Equal(t, inUse, tracker.Stats().InUse, "partial buffer is released")
	assert.Equal(t, 4, src.Len())
}

func TestClone_AllocationFailure(t *testing.T) {
	budget := mem.NewBudget(int64(6 * intSize))
	src, err := New(Lifecycle[int]{}, WithAllocator(budget))
	require.NoError(t, err)
	defer src.Release()
	for i := 0; i < 3; i++ {
		require.NoError(t, src.Push(i))
	}

	c, err := src.Clone()
	require.ErrorIs(t, err, mem.ErrOutOfMemory)
	assert.Nil(t, c)
	assert.Equal(t, int64(4*intSize), budget.InUse())
}

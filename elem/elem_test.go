package elem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/govec/mem"
	"github.com/wilhasse/govec/ut"
	"github.com/wilhasse/govec/vec"
)

func TestPrimitiveVectors(t *testing.T) {
	ints, err := NewInts()
	require.NoError(t, err)
	defer ints.Release()
	chars, err := NewChars()
	require.NoError(t, err)
	defer chars.Release()
	floats, err := NewFloats()
	require.NoError(t, err)
	defer floats.Release()
	doubles, err := NewDoubles()
	require.NoError(t, err)
	defer doubles.Release()

	for i := 0; i < 20; i++ {
		require.NoError(t, ints.Push(i))
		require.NoError(t, chars.Push(rune('a'+i)))
		require.NoError(t, floats.Push(float32(i)/2))
		require.NoError(t, doubles.Push(float64(i)/4))
	}
	assert.Equal(t, 19, ints.Back())
	assert.Equal(t, 't', chars.Back())
	assert.Equal(t, float32(9.5), floats.Back())
	assert.Equal(t, 4.75, doubles.Back())
}

func TestStrings_DeepCopy(t *testing.T) {
	v, err := NewStrings()
	require.NoError(t, err)
	defer v.Release()

	str := []byte("//*CHAR* VECTOR*//")
	require.NoError(t, v.Push(str))
	assert.False(t, v.Empty())
	assert.Equal(t, str, v.At(0))
	assert.Equal(t, str, v.Front())
	assert.Equal(t, str, v.Back())

	str[0] = 'p'
	assert.NotEqual(t, str, v.At(0))
	assert.NotEqual(t, str, v.Front())
	assert.NotEqual(t, str, v.Back())

	assert.True(t, v.Pop())
	assert.True(t, v.Empty())
}

func TestStrings_RandomWords(t *testing.T) {
	rnd := ut.NewRand(42)
	v, err := NewStrings()
	require.NoError(t, err)
	defer v.Release()

	words := make([][]byte, rnd.Interval(300, 600))
	for i := range words {
		word := make([]byte, rnd.Interval(2, 15))
		for k := range word {
			word[k] = byte(rnd.Interval('A', 'Z'))
		}
		words[i] = word
		require.NoError(t, v.Push(word))
	}
	for i, w := range words {
		require.True(t, bytes.Equal(w, v.At(i)), "word %d", i)
	}
	for _, w := range words {
		w[0]++
	}
	for i, w := range words {
		require.False(t, bytes.Equal(w, v.At(i)), "word %d", i)
	}
}

func TestStrings_RemovalScrubs(t *testing.T) {
	v, err := NewStrings()
	require.NoError(t, err)
	defer v.Release()

	require.NoError(t, v.Push([]byte("secret")))
	stored := v.At(0)
	require.True(t, v.Pop())
	assert.Equal(t, make([]byte, 6), stored)
}

func TestNested_OwnsClones(t *testing.T) {
	tracker := mem.NewTracker(nil)
	inner, err := NewInts(vec.WithAllocator(tracker))
	require.NoError(t, err)
	require.NoError(t, inner.Push(1))
	require.NoError(t, inner.Push(2))

	outer, err := NewNested[int](vec.WithAllocator(tracker))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, outer.Push(inner))
	}
	inner.Release()

	for i := 0; i < outer.Len(); i++ {
		got := outer.At(i)
		assert.NotSame(t, inner, got)
		assert.Equal(t, []int{1, 2}, got.Slice())
	}

	last := outer.Back()
	require.True(t, outer.Pop())
	assert.True(t, last.Released())

	first := outer.Front()
	assert.False(t, first.Released())
	outer.Clear()
	assert.True(t, first.Released())

	outer.Release()
	assert.Zero(t, tracker.Stats().InUse)
}

func TestNested_NilInnerVector(t *testing.T) {
	outer, err := NewNested[int]()
	require.NoError(t, err)
	defer outer.Release()

	require.NoError(t, outer.Push(nil))
	assert.Nil(t, outer.At(0))
}

package circbuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundedBufferRejectsWhenFull(t *testing.T) {
	buf := NewBounded[int](3)

	require.NoError(t, buf.Push(1))
	require.NoError(t, buf.Push(2))
	require.NoError(t, buf.Push(3))
	require.True(t, buf.IsFull())

	err := buf.Push(4)
	require.ErrorIs(t, err, ErrFull)

	// A rejected push must leave the buffer exactly as it was.
	require.Equal(t, 3, buf.Len())
	v, ok := buf.Get(0)
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = buf.Get(2)
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, []int{1, 2, 3}, buf.Values())
}

func TestBoundedBufferFIFOOrder(t *testing.T) {
	buf := NewBounded[string](4)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, buf.Push(s))
	}
	for _, want := range []string{"a", "b", "c"} {
		v, ok := buf.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := buf.Pop()
	require.False(t, ok)
}

func TestBoundedBufferRecoversAfterPop(t *testing.T) {
	buf := NewBounded[int](2)
	require.NoError(t, buf.Push(1))
	require.NoError(t, buf.Push(2))
	require.ErrorIs(t, buf.Push(3), ErrFull)

	v, ok := buf.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	// Space freed by Pop is immediately usable again.
	require.NoError(t, buf.Push(3))
	require.Equal(t, []int{2, 3}, buf.Values())
}

func TestBoundedBufferWrapAround(t *testing.T) {
	buf := NewBounded[int](3)
	next, expect := 0, 0
	for round := 0; round < 4; round++ {
		for i := 0; i < 2; i++ {
			require.NoError(t, buf.Push(next))
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := buf.Pop()
			require.True(t, ok)
			require.Equal(t, expect, v)
			expect++
		}
	}
}

func TestBoundedBufferZeroCapacity(t *testing.T) {
	buf := NewBounded[int](0)

	require.ErrorIs(t, buf.Push(1), ErrFull)
	require.Equal(t, 0, buf.Len())
	require.True(t, buf.IsEmpty())
	require.True(t, buf.IsFull())

	_, ok := buf.Pop()
	require.False(t, ok)
}

func TestBoundedBufferClear(t *testing.T) {
	buf := NewBounded[int](2)
	require.NoError(t, buf.Push(1))
	require.NoError(t, buf.Push(2))

	buf.Clear()
	require.Equal(t, 0, buf.Len())

	// Clearing makes room again.
	require.NoError(t, buf.Push(3))
	require.NoError(t, buf.Push(4))
	require.ErrorIs(t, buf.Push(5), ErrFull)
}

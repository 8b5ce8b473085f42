package smallvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor_Iterate(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 50} {
		v := MustNew[int, [4]int]()
		fill(v, n, 0)

		var got []int
		for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
			got = append(got, c.Value())
		}

		require.Len(t, got, n)
		for i, value := range got {
			require.Equal(t, i, value)
		}

		require.Equal(t, n, v.End().Diff(v.Begin()))
	}
}

func TestCursor_Reverse(t *testing.T) {
	v := MustNew[int, [4]int]()
	fill(v, 7, 0)

	var got []int
	for c := v.End(); !c.Equal(v.Begin()); {
		c = c.Prev()
		got = append(got, c.Value())
	}

	require.Equal(t, []int{6, 5, 4, 3, 2, 1, 0}, got)
}

func TestCursor_IncDec(t *testing.T) {
	v := MustNew[int, [4]int]()
	fill(v, 3, 10)

	c := v.Begin()

	old := c.Inc()
	require.Equal(t, 10, old.Value())
	require.Equal(t, 11, c.Value())

	old = c.Dec()
	require.Equal(t, 11, old.Value())
	require.Equal(t, 10, c.Value())
	require.True(t, c.Equal(v.Begin()))
}

func TestCursor_Arithmetic(t *testing.T) {
	v := MustNew[int, [4]int]()
	fill(v, 10, 0)

	begin := v.Begin()
	c := begin.Add(7)
	require.Equal(t, 7, c.Value())
	require.Equal(t, 7, c.Index())
	require.Equal(t, 7, c.Diff(begin))
	require.Equal(t, -7, begin.Diff(c))
	require.True(t, begin.Less(c))
	require.False(t, c.Less(begin))

	c = c.Sub(5)
	require.Equal(t, 2, c.Value())
	require.True(t, c.Equal(v.CursorAt(2)))
	require.False(t, c.Equal(v.CursorAt(3)))
}

func TestCursor_Set(t *testing.T) {
	for _, n := range []int{3, 12} {
		v := MustNew[int, [4]int]()
		v.Resize(n)

		for c := v.Begin(); c.Less(v.End()); c.Inc() {
			c.Set(c.Index() * 2)
		}

		for i := range n {
			require.Equal(t, i*2, v.Get(i))
		}

		*v.CursorAt(1).Ptr() = -1
		require.Equal(t, -1, v.Get(1))
	}
}

func TestCursor_FollowsActiveBacking(t *testing.T) {
	v := MustNew[int, [4]int]()
	fill(v, 2, 0)

	small := v.Begin()
	require.Same(t, v.At(0), small.Ptr())

	fill(v, 8, 0)

	large := v.Begin()
	require.Same(t, v.At(0), large.Ptr())
	require.False(t, small.Equal(large))
}

func TestCursor_Bits(t *testing.T) {
	v, err := NewBits[[4]Bit]()
	require.NoError(t, err)

	for i := range 9 {
		PushBit(v, i%2 == 0)
	}

	n := 0
	for c := v.Begin(); c.Less(v.End()); c.Inc() {
		require.Equal(t, c.Index()%2 == 0, c.Value().Get())
		c.Ptr().Toggle()
		n++
	}

	require.Equal(t, 9, n)
	require.False(t, GetBit(v, 0))
	require.True(t, GetBit(v, 1))
}

package iter

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steamkit/enums/internal/idl"
)

type elem struct {
	value int
}

func TestSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	numValues := 10
	elems := make([]*elem, 0, numValues)
	for y := 0; y < numValues; y = y + 1 {
		elems = append(elems, &elem{value: y})
	}
	it := NewSlice(elems)
	for y := 0; y < numValues; y = y + 1 {
		val := it.Next(ctx)
		require.True(t, val.IsPresent())
		require.Equal(t, y, val.Value().value)
	}
	require.False(t, it.Next(ctx).IsPresent())
	require.False(t, it.Next(ctx).IsPresent())
	require.Nil(t, it.Close(ctx))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	numValues := 10
	even := idl.Filter[*elem](FilterFunc[*elem](func(ctx context.Context, val *elem) bool {
		return val.value%2 == 0
	}))
	for x := 1; x < 4; x = x + 1 {
		t.Run(fmt.Sprintf("multiple(%d)", x), func(t *testing.T) {
			multiple := FilterFunc[*elem](func(ctx context.Context, val *elem) bool {
				return val.value%x == 0
			})
			elems := make([]*elem, 0, numValues)
			for y := 0; y < numValues; y = y + 1 {
				elems = append(elems, &elem{value: y})
			}
			it := NewIteratorFilter(NewIteratorFilter(NewSlice(elems), even), idl.Filter[*elem](multiple))
			out, err := Collect(ctx, it)
			require.NoError(t, err)
			for _, v := range out {
				require.Equal(t, 0, v.value%2)
				require.Equal(t, 0, v.value%x)
			}
			expected := 0
			for y := 0; y < numValues; y = y + 1 {
				if y%2 == 0 && y%x == 0 {
					expected = expected + 1
				}
			}
			require.Len(t, out, expected)
		})
	}
}

func TestAny(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	values := []int{1, 2, 3, 4, 5, 6}
	is := func(n int) idl.Filter[int] {
		return FilterFunc[int](func(ctx context.Context, val int) bool { return val == n })
	}

	out, err := Collect(ctx, NewIteratorFilter(NewSlice(values), Any(is(2), is(5))))
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, out)

	out, err = Collect(ctx, NewIteratorFilter(NewSlice(values), Any[int]()))
	require.NoError(t, err)
	require.Equal(t, values, out)
}

func TestCollectCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := Collect(ctx, NewSlice([]int{1, 2}))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out)
}

var benchEscapeValue int

func BenchmarkFilter(b *testing.B) {
	ctx := context.Background()
	sliceSize := 1000
	slice := make([]int, sliceSize)
	for x := 0; x < sliceSize; x = x + 1 {
		slice[x] = x
	}
	odd := FilterFunc[int](func(ctx context.Context, val int) bool { return val%2 == 1 })

	var loopEscapeValue int
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		it := NewIteratorFilter(NewSlice(slice), idl.Filter[int](odd))
		for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
			loopEscapeValue = v.Value()
		}
	}
	benchEscapeValue = loopEscapeValue
}

package algorithms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantAccess(t *testing.T) {
	data := []int{10, 20, 30, 40}

	tests := []struct {
		name  string
		index int
		value int
		ok    bool
	}{
		{"first element", 0, 10, true},
		{"middle element", 2, 30, true},
		{"last element", 3, 40, true},
		{"negative index", -1, 0, false},
		{"index at length", 4, 0, false},
		{"index far out", 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ConstantAccess(data, tt.index)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.value, v)
		})
	}
}

func TestConstantAccess_Empty(t *testing.T) {
	_, ok := ConstantAccess(nil, 0)
	require.False(t, ok)
}

func TestLinearSearch(t *testing.T) {
	data := []int{7, 3, 9, 3, 1}

	require.Equal(t, 0, LinearSearch(data, 7))
	require.Equal(t, 4, LinearSearch(data, 1))
	require.Equal(t, 1, LinearSearch(data, 3), "first occurrence wins")
	require.Equal(t, -1, LinearSearch(data, 42))
	require.Equal(t, -1, LinearSearch(nil, 7))
}

func TestBinarySearch(t *testing.T) {
	data := []int{1, 3, 5, 7, 9, 11}

	for i, v := range data {
		require.Equal(t, i, BinarySearch(data, v))
	}

	require.Equal(t, -1, BinarySearch(data, 0))
	require.Equal(t, -1, BinarySearch(data, 4))
	require.Equal(t, -1, BinarySearch(data, 12))
	require.Equal(t, -1, BinarySearch(nil, 5))
}

func TestBinarySearch_SingleElement(t *testing.T) {
	require.Equal(t, 0, BinarySearch([]int{5}, 5))
	require.Equal(t, -1, BinarySearch([]int{5}, 3))
}

func TestBinarySearch_Duplicates(t *testing.T) {
	data := []int{2, 2, 2, 2}

	idx := BinarySearch(data, 2)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(data))
	require.Equal(t, 2, data[idx])
}

// TestBinarySearch_AgreesWithLinear cross-checks the two searches over a
// generated sorted slice, probing both present and absent targets.
func TestBinarySearch_AgreesWithLinear(t *testing.T) {
	gen := NewGenerator(7)
	data := gen.SortedSlice(500)

	for target := 0; target <= 1001; target += 13 {
		got := BinarySearch(data, target)
		want := LinearSearch(data, target)

		if want == -1 {
			require.Equal(t, -1, got, "target %d", target)
		} else {
			require.NotEqual(t, -1, got, "target %d", target)
			require.Equal(t, target, data[got], "target %d", target)
		}
	}
}

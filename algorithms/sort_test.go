package algorithms

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var sortCases = []struct {
	name  string
	input []int
	want  []int
}{
	{"unsorted", []int{64, 34, 25, 12, 22, 11, 90}, []int{11, 12, 22, 25, 34, 64, 90}},
	{"already sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
	{"reverse sorted", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
	{"duplicates", []int{3, 1, 3, 1, 3}, []int{1, 1, 3, 3, 3}},
	{"negatives", []int{0, -5, 8, -5, 2}, []int{-5, -5, 0, 2, 8}},
	{"single", []int{42}, []int{42}},
	{"empty", []int{}, []int{}},
}

// testSort runs the shared cases against one sort, checking both the
// result and that the input slice is left untouched.
func testSort(t *testing.T, sortFn func([]int) []int) {
	t.Helper()

	for _, tt := range sortCases {
		t.Run(tt.name, func(t *testing.T) {
			original := make([]int, len(tt.input))
			copy(original, tt.input)

			got := sortFn(tt.input)

			require.Equal(t, tt.want, got)
			require.Equal(t, original, tt.input, "input must not be modified")
		})
	}
}

func TestBubbleSort(t *testing.T)    { testSort(t, BubbleSort) }
func TestInsertionSort(t *testing.T) { testSort(t, InsertionSort) }
func TestMergeSort(t *testing.T)     { testSort(t, MergeSort) }

func TestSortsOnRandomInput(t *testing.T) {
	gen := NewGenerator(11)
	input := gen.RandomSlice(300)

	want := make([]int, len(input))
	copy(want, input)
	slices.Sort(want)

	require.Equal(t, want, BubbleSort(input))
	require.Equal(t, want, InsertionSort(input))
	require.Equal(t, want, MergeSort(input))
}

func TestMergeSort_NearlySortedInput(t *testing.T) {
	gen := NewGenerator(3)
	input := gen.NearlySortedSlice(200)

	got := MergeSort(input)
	require.Len(t, got, 200)
	require.True(t, slices.IsSorted(got))
}

func TestMerge(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, merge([]int{1, 3, 5}, []int{2, 4, 6}))
	require.Equal(t, []int{1, 2, 3}, merge([]int{1, 2, 3}, nil))
	require.Equal(t, []int{1, 2, 3}, merge(nil, []int{1, 2, 3}))
}

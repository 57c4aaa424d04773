package algorithms

import (
	"math/rand"
	"slices"
)

// Generator produces workload inputs from a seeded random source. A
// fixed seed yields the same sequence of inputs on every run, so timing
// sweeps built on a Generator are reproducible.
//
// A Generator is not safe for concurrent use; give each goroutine its
// own instance.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
//
// Example:
//
//	gen := algorithms.NewGenerator(42)
//	input := gen.RandomSlice(1000)
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// RandomSlice returns size random values in [1, 1000].
func (g *Generator) RandomSlice(size int) []int {
	return g.RandomSliceRange(size, 1, 1000)
}

// RandomSliceRange returns size random values drawn uniformly from
// [minVal, maxVal], both bounds inclusive. Reversed bounds are swapped.
// A size of zero or below returns nil.
func (g *Generator) RandomSliceRange(size, minVal, maxVal int) []int {
	if size <= 0 {
		return nil
	}
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}

	data := make([]int, size)
	for i := range data {
		data[i] = g.rng.Intn(maxVal-minVal+1) + minVal
	}

	return data
}

// SortedSlice returns size random values in [1, 1000] sorted in
// ascending order.
func (g *Generator) SortedSlice(size int) []int {
	data := g.RandomSlice(size)
	slices.Sort(data)

	return data
}

// ReverseSortedSlice returns size random values in [1, 1000] sorted in
// descending order, the worst case for the quadratic sorts.
func (g *Generator) ReverseSortedSlice(size int) []int {
	data := g.SortedSlice(size)
	slices.Reverse(data)

	return data
}

// NearlySortedSlice returns the values 1..size with max(1, size/20)
// random pair swaps applied, a mostly-ordered input that separates
// adaptive sorts from oblivious ones.
func (g *Generator) NearlySortedSlice(size int) []int {
	if size <= 0 {
		return nil
	}

	data := make([]int, size)
	for i := range data {
		data[i] = i + 1
	}

	swaps := size / 20
	if swaps < 1 {
		swaps = 1
	}

	for s := 0; s < swaps; s++ {
		i, j := g.rng.Intn(size), g.rng.Intn(size)
		data[i], data[j] = data[j], data[i]
	}

	return data
}

// SquareMatrix returns a size x size matrix of random values in
// [1, 10]. A size of zero or below returns nil.
func (g *Generator) SquareMatrix(size int) [][]int {
	if size <= 0 {
		return nil
	}

	m := make([][]int, size)
	for i := range m {
		m[i] = make([]int, size)
		for j := range m[i] {
			m[i][j] = g.rng.Intn(10) + 1
		}
	}

	return m
}

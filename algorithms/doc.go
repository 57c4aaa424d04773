// Package algorithms provides textbook workloads with known complexity
// classes, plus a seeded input generator. They are the raw material for
// timing sweeps: measure one of these against growing inputs and the
// analysis package should recover the advertised class.
//
// # Workloads
//
// Each function keeps the classic textbook form of its algorithm
// instead of delegating to the standard library. The loop itself is the
// deliverable; replacing it with an optimized library call would change
// the measured class. The sorts return sorted copies and never modify
// their input, so a single generated slice can feed repeated timed
// runs.
//
// Covered classes: ConstantAccess O(1), BinarySearch O(log n),
// LinearSearch and FibIterative O(n), MergeSort O(n log n), BubbleSort
// and InsertionSort O(n²), TripleLoopCount and MatMul O(n³), and
// FibRecursive O(2ⁿ).
//
// # Input Generation
//
// Generator draws slices and matrices from a seeded random source in
// random, sorted, reverse-sorted, and nearly sorted shapes. A fixed
// seed reproduces the same inputs on every run; distinct seeds give
// independent inputs.
package algorithms

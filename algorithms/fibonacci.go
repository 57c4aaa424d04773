package algorithms

// FibRecursive computes the nth Fibonacci number by naive double
// recursion, an O(2ⁿ) workload. Values of n at or below 1 are returned
// unchanged.
func FibRecursive(n int) int {
	if n <= 1 {
		return n
	}

	return FibRecursive(n-1) + FibRecursive(n-2)
}

// FibIterative computes the nth Fibonacci number in O(n) time. It
// returns the same values as FibRecursive, including n itself for
// n <= 1.
func FibIterative(n int) int {
	if n <= 1 {
		return n
	}

	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

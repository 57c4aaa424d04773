package algorithms

// ConstantAccess returns the element at index, reporting whether the
// index is in bounds. It runs in O(1) time regardless of input size.
func ConstantAccess(data []int, index int) (int, bool) {
	if index < 0 || index >= len(data) {
		return 0, false
	}

	return data[index], true
}

// LinearSearch scans data front to back and returns the index of the
// first occurrence of target, or -1 when absent. It runs in O(n) time.
func LinearSearch(data []int, target int) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}

	return -1
}

// BinarySearch returns an index of target in data, or -1 when absent.
// The input must be sorted in ascending order; the result for unsorted
// input is undefined. It runs in O(log n) time.
//
// When target occurs more than once, any one of its indices may be
// returned.
func BinarySearch(data []int, target int) int {
	left, right := 0, len(data)-1

	for left <= right {
		mid := left + (right-left)/2
		switch {
		case data[mid] == target:
			return mid
		case data[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return -1
}

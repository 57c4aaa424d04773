package algorithms

// BubbleSort returns a sorted copy of data. All passes run in full,
// with no early exit on already-sorted input, so the cost is O(n²) on
// every input.
func BubbleSort(data []int) []int {
	result := make([]int, len(data))
	copy(result, data)

	n := len(result)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if result[j] > result[j+1] {
				result[j], result[j+1] = result[j+1], result[j]
			}
		}
	}

	return result
}

// InsertionSort returns a sorted copy of data. It runs in O(n²) time in
// the worst case but degrades gracefully: nearly sorted input
// approaches O(n).
func InsertionSort(data []int) []int {
	result := make([]int, len(data))
	copy(result, data)

	for i := 1; i < len(result); i++ {
		key := result[i]
		j := i - 1
		for j >= 0 && result[j] > key {
			result[j+1] = result[j]
			j--
		}
		result[j+1] = key
	}

	return result
}

// MergeSort returns a sorted copy of data using top-down merge sort. It
// runs in O(n log n) time with O(n) auxiliary space.
func MergeSort(data []int) []int {
	if len(data) <= 1 {
		result := make([]int, len(data))
		copy(result, data)

		return result
	}

	mid := len(data) / 2
	left := MergeSort(data[:mid])
	right := MergeSort(data[mid:])

	return merge(left, right)
}

// merge combines two sorted slices into one, preserving the relative
// order of equal elements.
func merge(left, right []int) []int {
	result := make([]int, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	result = append(result, left[i:]...)
	result = append(result, right[j:]...)

	return result
}

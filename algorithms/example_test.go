package algorithms_test

import (
	"fmt"
	"log"
	"slices"

	"github.com/arloliu/ordo/algorithms"
)

// ExampleBinarySearch demonstrates searching a sorted slice.
func ExampleBinarySearch() {
	data := []int{1, 3, 5, 7, 9, 11}

	fmt.Println(algorithms.BinarySearch(data, 7))
	fmt.Println(algorithms.BinarySearch(data, 4))

	// Output:
	// 3
	// -1
}

// ExampleMergeSort demonstrates that the sorts return a copy and leave
// their input untouched.
func ExampleMergeSort() {
	data := []int{5, 2, 8, 1}

	fmt.Println(algorithms.MergeSort(data))
	fmt.Println(data)

	// Output:
	// [1 2 5 8]
	// [5 2 8 1]
}

// ExampleMatMul demonstrates the naive matrix product.
func ExampleMatMul() {
	a := [][]int{{1, 2}, {3, 4}}
	b := [][]int{{5, 6}, {7, 8}}

	product, err := algorithms.MatMul(a, b)
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range product {
		fmt.Println(row)
	}

	// Output:
	// [19 22]
	// [43 50]
}

// ExampleGenerator demonstrates deterministic input generation.
func ExampleGenerator() {
	gen := algorithms.NewGenerator(42)

	data := gen.NearlySortedSlice(20)
	fmt.Printf("%d values, min %d, max %d\n", len(data), slices.Min(data), slices.Max(data))

	// Output:
	// 20 values, min 1, max 20
}

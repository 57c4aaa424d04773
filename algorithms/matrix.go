package algorithms

import (
	"fmt"

	"github.com/arloliu/ordo/errs"
)

// TripleLoopCount iterates a triple nested loop over the length of data
// and returns the total iteration count n³. The loop body does no other
// work, giving a clean O(n³) workload.
func TripleLoopCount(data []int) int {
	count := 0
	n := len(data)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				count++
			}
		}
	}

	return count
}

// MatMul multiplies a by b with the naive triple loop, O(n³) time for
// square operands.
//
// Both operands must be rectangular and non-empty, and the column count
// of a must equal the row count of b. Any violation returns an error
// wrapping errs.ErrDimensionMismatch.
//
// Parameters:
//   - a: Left operand, rows x inner
//   - b: Right operand, inner x cols
//
// Returns:
//   - [][]int: The rows x cols product matrix
//   - error: errs.ErrDimensionMismatch when the operands do not conform
func MatMul(a, b [][]int) ([][]int, error) {
	rowsA, colsA, err := dimensions(a)
	if err != nil {
		return nil, err
	}

	rowsB, colsB, err := dimensions(b)
	if err != nil {
		return nil, err
	}

	if colsA != rowsB {
		return nil, fmt.Errorf("%w: %dx%d by %dx%d", errs.ErrDimensionMismatch, rowsA, colsA, rowsB, colsB)
	}

	result := make([][]int, rowsA)
	for i := range result {
		result[i] = make([]int, colsB)
		for j := 0; j < colsB; j++ {
			sum := 0
			for k := 0; k < colsA; k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}

	return result, nil
}

// dimensions reports the row and column counts of m, rejecting empty or
// ragged matrices.
func dimensions(m [][]int) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: empty matrix", errs.ErrDimensionMismatch)
	}

	cols = len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: ragged rows", errs.ErrDimensionMismatch)
		}
	}

	return len(m), cols, nil
}

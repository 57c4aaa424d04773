package algorithms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ordo/errs"
)

func TestTripleLoopCount(t *testing.T) {
	require.Equal(t, 0, TripleLoopCount(nil))
	require.Equal(t, 1, TripleLoopCount(make([]int, 1)))
	require.Equal(t, 125, TripleLoopCount(make([]int, 5)))
	require.Equal(t, 1000, TripleLoopCount(make([]int, 10)))
}

func TestMatMul_Square(t *testing.T) {
	a := [][]int{{1, 2}, {3, 4}}
	b := [][]int{{5, 6}, {7, 8}}

	product, err := MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{19, 22}, {43, 50}}, product)
}

func TestMatMul_OneByOne(t *testing.T) {
	product, err := MatMul([][]int{{3}}, [][]int{{4}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{12}}, product)
}

func TestMatMul_Identity(t *testing.T) {
	a := [][]int{{2, 9}, {4, 7}}
	identity := [][]int{{1, 0}, {0, 1}}

	product, err := MatMul(a, identity)
	require.NoError(t, err)
	require.Equal(t, a, product)
}

func TestMatMul_Rectangular(t *testing.T) {
	a := [][]int{{1, 2, 3}, {4, 5, 6}}
	b := [][]int{{7, 8}, {9, 10}, {11, 12}}

	product, err := MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, product)
}

func TestMatMul_DimensionMismatch(t *testing.T) {
	a := [][]int{{1, 2, 3}, {4, 5, 6}}
	b := [][]int{{1, 2}, {3, 4}}

	_, err := MatMul(a, b)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 by 2x2")
}

func TestMatMul_InvalidOperands(t *testing.T) {
	valid := [][]int{{1, 2}, {3, 4}}

	tests := []struct {
		name string
		a    [][]int
		b    [][]int
	}{
		{"nil left", nil, valid},
		{"nil right", valid, nil},
		{"empty left", [][]int{}, valid},
		{"empty row", [][]int{{}}, valid},
		{"ragged left", [][]int{{1, 2}, {3}}, valid},
		{"ragged right", valid, [][]int{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatMul(tt.a, tt.b)
			require.ErrorIs(t, err, errs.ErrDimensionMismatch)
		})
	}
}

package problem

import "fmt"

// Matrix is a square, row-major matrix of integer distances or durations.
//
// The shape (flat backing slice, row*cols+col indexing) is grounded on the
// teacher's matrix.Dense (_examples/katalvlaran-lvlath/matrix/dense.go),
// specialized here for ints and for the square, no-symmetry-assumed shape
// the engine's hot path needs: At is a plain O(1) slice read with no error
// return, since every caller in this module already knows the matrix is
// square and properly sized — the validation happens once, at construction.
type Matrix struct {
	n    int
	data []int
}

// NewMatrix builds an n x n Matrix from rows, validating that rows has
// exactly n rows each of length n.
func NewMatrix(rows [][]int) (Matrix, error) {
	n := len(rows)
	data := make([]int, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		copy(data[i*n:(i+1)*n], row)
	}
	return Matrix{n: n, data: data}, nil
}

// Size returns the matrix's row/column count.
func (m Matrix) Size() int { return m.n }

// At returns the value at (row, col). Complexity: O(1).
func (m Matrix) At(row, col int) int {
	return m.data[row*m.n+col]
}

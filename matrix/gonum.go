// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
//
// Purpose:
//   - Bridge to gonum.org/v1/gonum/mat for callers that hand matrices to
//     external linear-algebra routines, and as an independent reference
//     implementation in this package's own tests.
//
// Semantics:
//   - Conversions always materialize the LOGICAL shape: a transposed view
//     exports exactly the values a caller observes through At/Get, and the
//     transpose flag never leaks across the boundary.
//   - Both directions copy; no buffer is ever shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a freshly allocated *mat.Dense holding the Matrix's
// logical elements in row-major order.
// Complexity: O(rows*cols).
func (m *Matrix) ToGonum() *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, m.Len())
	for _, off := range m.selectAll() {
		out = append(out, m.data[off])
	}
	return mat.NewDense(rows, cols, out)
}

// FromGonum builds a new untransposed Matrix from any gonum mat.Matrix,
// copying its elements in row-major order.
//
// Errors: ErrInvalidValue for a nil source, ErrInvalidShape for empty gonum
// matrices, ErrNaNInf under the numeric policy.
// Complexity: O(rows*cols).
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: nil source: %w", ErrInvalidValue)
	}
	rows, cols := src.Dims()
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("FromGonum(%d,%d): %w", rows, cols, err)
	}
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, src.At(i, j))
		}
	}
	return New(rows, cols, WithValues(data...))
}

// SPDX-License-Identifier: MIT
// Package matrix: iteration over logical rows and columns.
//
// Purpose:
//   - Walk a Matrix one logical row (or column) at a time, yielding the same
//     Values an indexed read of that row/column would produce: a sub-matrix
//     for multi-element lines, a scalar for single-element ones.
//
// Determinism:
//   - Rows are yielded top to bottom, columns left to right, always against
//     the logical (post-transpose) shape.

package matrix

import "iter"

// EachRow returns an iterator over the logical rows of the Matrix.
// Each yielded Value equals Get(Index(i)): a 1×Cols sub-matrix copy, or a
// scalar when Cols() == 1.
// Complexity: O(rows*cols) over a full iteration.
func (m *Matrix) EachRow() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		rows := m.Rows()
		for i := 0; i < rows; i++ {
			// Cannot fail: i is in range and a row is never empty.
			v, _ := m.Get(Index(i))
			if !yield(v) {
				return
			}
		}
	}
}

// EachCol returns an iterator over the logical columns of the Matrix.
// Each yielded Value equals Get(All(), Index(j)): a Rows×1 sub-matrix copy,
// or a scalar when Rows() == 1.
// Complexity: O(rows*cols) over a full iteration.
func (m *Matrix) EachCol() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		cols := m.Cols()
		for j := 0; j < cols; j++ {
			v, _ := m.Get(All(), Index(j))
			if !yield(v) {
				return
			}
		}
	}
}

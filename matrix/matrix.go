// SPDX-License-Identifier: MIT
// Package matrix: construction, shape queries, and representation.
//
// Purpose:
//   - Build matrices from a shape plus optional fill data and orientation.
//   - Expose the logical-shape surface (Rows/Cols/Shape/Len/Transposed).
//   - Provide value-semantics helpers (Clone, Transpose) that never alias.
//
// Determinism & Policy:
//   - Construction validates shape, data kind, data length, and finiteness
//     (numeric policy) before any element is written.
//   - String renders the logical shape; GoString reconstructs the value.

package matrix

import (
	"fmt"
	"strings"
)

// New creates a rows×cols Matrix.
//
// Data is supplied through options: WithFill broadcasts a scalar over every
// element, WithValues/WithData copy a flat sequence of exactly rows*cols
// elements in physical row-major order, and no data option yields zeros.
// WithTransposed flips the logical orientation without reordering data.
//
// Stage 1 (Validate): shape ≥ (1, 1); data kind, length, finiteness.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): populate and return.
//
// Errors: ErrInvalidShape, ErrInvalidValue, ErrSizeMismatch, ErrNaNInf.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, err)
	}
	o := gatherOptions(opts...)

	m := &Matrix{
		rows:       rows,
		cols:       cols,
		transposed: o.transposed,
		data:       make([]float64, rows*cols),
	}
	if !o.hasData {
		// Zero-initialized by allocation; nothing else to do.
		return m, nil
	}

	switch o.data.kind {
	case valueScalar:
		if err := ValidateFinite(o.data.scalar); err != nil {
			return nil, fmt.Errorf("New: fill value: %w", err)
		}
		for idx := range m.data {
			m.data[idx] = o.data.scalar
		}
	case valueSeq:
		if len(o.data.seq) != len(m.data) {
			return nil, fmt.Errorf("New: data length %d, want %d: %w", len(o.data.seq), len(m.data), ErrSizeMismatch)
		}
		if err := ValidateFiniteAll(o.data.seq); err != nil {
			return nil, fmt.Errorf("New: data element: %w", err)
		}
		copy(m.data, o.data.seq)
	default:
		// Matrix-kind and zero Values are not construction data.
		return nil, fmt.Errorf("New: construction data must be a scalar or a sequence: %w", ErrInvalidValue)
	}
	return m, nil
}

// NewIdentity returns the n×n identity matrix: ones on the diagonal, zeros
// elsewhere.
//
// Errors: ErrInvalidShape for n < 1.
// Complexity: O(n²) zeroing plus O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the logical row count (post-transpose).
// Complexity: O(1).
func (m *Matrix) Rows() int {
	if m.transposed {
		return m.cols
	}
	return m.rows
}

// Cols returns the logical column count (post-transpose).
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if m.transposed {
		return m.rows
	}
	return m.cols
}

// Shape returns the logical (rows, cols) pair.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	return m.Rows(), m.Cols()
}

// Len returns the total element count (rows*cols), invariant under
// transposition.
// Complexity: O(1).
func (m *Matrix) Len() int {
	return len(m.data)
}

// Transposed reports whether the Matrix is a transposed view over its buffer.
// Complexity: O(1).
func (m *Matrix) Transposed() bool {
	return m.transposed
}

// Clone returns a deep copy: same shape, same orientation, independent buffer.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, transposed: m.transposed, data: data}
}

// Transpose returns a new Matrix with the orientation flag flipped.
// The buffer is copied, never shared: transposition stays a coordinate
// reinterpretation, and no two Matrix values alias the same storage.
// Complexity: O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	t := m.Clone()
	t.transposed = !m.transposed
	return t
}

// String renders the logical shape as one bracketed row per line, matching
// the package's dense-matrix convention:
//
//	[1, 2, 3]
//	[4, 5, 6]
//
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		b.WriteByte('[')
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%g", m.data[linearize(m.cols, m.transposed, i, j)])
			if j < cols-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// GoString implements fmt.GoStringer with a reconstruction form carrying the
// physical shape, the flat physical data, and the transpose flag:
//
//	matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6), matrix.WithTransposed())
//
// Complexity: O(rows*cols).
func (m *Matrix) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "matrix.New(%d, %d, matrix.WithValues(", m.rows, m.cols)
	for idx, v := range m.data {
		if idx > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteByte(')')
	if m.transposed {
		b.WriteString(", matrix.WithTransposed()")
	}
	b.WriteByte(')')
	return b.String()
}

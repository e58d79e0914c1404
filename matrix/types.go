// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types: the Matrix container itself
// and the Value tagged union used at every polymorphic API boundary
// (construction data, indexed writes, comparison and arithmetic operands,
// indexed-read results). Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.

package matrix

// Matrix is a fixed-shape two-dimensional container of float64 values.
//
// The backing buffer is flat and row-major for the pre-transpose shape
// (rows, cols); it never grows, shrinks, or reorders after construction.
// Transposition is a view: the transposed flag reinterprets logical (i, j)
// coordinates against the fixed physical layout, so the logical shape is
// (cols, rows) while transposed and (rows, cols) otherwise.
//
// Invariants (held for the lifetime of the value):
//   - rows ≥ 1, cols ≥ 1
//   - len(data) == rows*cols
//   - shape queries and comparisons always report the logical shape
//
// A Matrix owns its buffer exclusively. Sub-selection copies; Clone and
// Transpose copy; no two Matrix values ever alias the same buffer.
type Matrix struct {
	rows, cols int       // pre-transpose shape, fixed at construction
	transposed bool      // logical orientation flag, never a data reorder
	data       []float64 // flat backing storage, length == rows*cols
}

// valueKind discriminates the Value union.
type valueKind uint8

const (
	valueInvalid valueKind = iota // zero Value: rejected everywhere
	valueScalar                   // single float64
	valueSeq                      // flat []float64
	valueMatrix                   // *Matrix reference
)

// Value is a tagged union of the operand kinds the package accepts
// interchangeably: a scalar, a flat sequence, or a Matrix. It is resolved
// once at the API boundary instead of inspecting operand types inside each
// operation.
//
// Indexed reads return a Value holding either a scalar (single-element
// selection) or a Matrix (multi-element selection); see Matrix.Get.
type Value struct {
	kind   valueKind
	scalar float64
	seq    []float64
	mat    *Matrix
}

// Scalar wraps a single numeric value as a Value operand.
func Scalar(v float64) Value {
	return Value{kind: valueScalar, scalar: v}
}

// Sequence wraps a flat list of numeric values as a Value operand.
// The slice is not copied; callers must not mutate it mid-operation.
func Sequence(vals ...float64) Value {
	return Value{kind: valueSeq, seq: vals}
}

// Ref wraps a Matrix as a Value operand. The Matrix is referenced, not
// copied; operations honor its own transpose flag.
func Ref(m *Matrix) Value {
	return Value{kind: valueMatrix, mat: m}
}

// IsScalar reports whether the Value holds a single numeric value.
func (v Value) IsScalar() bool { return v.kind == valueScalar }

// IsMatrix reports whether the Value holds a Matrix.
func (v Value) IsMatrix() bool { return v.kind == valueMatrix }

// AsScalar returns the held scalar and true, or (0, false) for other kinds.
func (v Value) AsScalar() (float64, bool) {
	if v.kind != valueScalar {
		return 0, false
	}
	return v.scalar, true
}

// AsMatrix returns the held Matrix and true, or (nil, false) for other kinds.
func (v Value) AsMatrix() (*Matrix, bool) {
	if v.kind != valueMatrix {
		return nil, false
	}
	return v.mat, true
}

// AsSequence returns the held sequence and true, or (nil, false) otherwise.
func (v Value) AsSequence() ([]float64, bool) {
	if v.kind != valueSeq {
		return nil, false
	}
	return v.seq, true
}

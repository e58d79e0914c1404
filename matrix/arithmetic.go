// SPDX-License-Identifier: MIT
// Package matrix: elementwise arithmetic and the matrix product.
//
// Purpose:
//   - Add/Sub/Mul/Div over Value operands with the same broadcasting rules
//     as the comparison engine: Matrix↔Matrix by logical position,
//     Matrix↔scalar broadcast, scalar↔Matrix broadcast.
//   - MatMul with the (1,1) → bare-scalar degeneracy.
//   - Unary Neg/Abs preserving shape and orientation.
//
// Semantics:
//   - Matrix↔Matrix requires identical logical shapes (ErrShapeMismatch);
//     the result is a fresh untransposed Matrix combined in row-major
//     logical order, honoring each operand's own transpose flag.
//   - Matrix↔scalar and scalar↔Matrix preserve the Matrix operand's shape
//     AND transpose flag (broadcast touches every physical element).
//   - Division fails with ErrDivisionByZero on any exactly-zero divisor
//     element; a zero scalar divisor is rejected before any computation.
//     Division never silently produces ±Inf.
//   - scalar↔scalar and sequence operands → ErrNotImplemented.
//
// Determinism & Performance:
//   - Fixed loop orders, one result allocation, O(rows*cols) per elementwise
//     op and O(n·p·q) for MatMul.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opDiv    = "Div"
	opMatMul = "MatMul"
	opNeg    = "Neg"
	opAbs    = "Abs"
)

// combine is the shared elementwise kernel: out = fn(a, b) pairwise.
// fn may fail (division); the first failure aborts the whole operation.
func combine(op string, a, b Value, fn func(x, y float64) (float64, error)) (*Matrix, error) {
	switch {
	case a.kind == valueMatrix && b.kind == valueMatrix:
		am, bm := a.mat, b.mat
		if err := ValidateNotNil(am); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := ValidateNotNil(bm); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := ValidateSameShape(am, bm); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// Result is untransposed; combine by logical position.
		out := &Matrix{rows: am.Rows(), cols: am.Cols(), data: make([]float64, am.Len())}
		ai, bi := am.selectAll(), bm.selectAll()
		for k := range ai {
			v, err := fn(am.data[ai[k]], bm.data[bi[k]])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			out.data[k] = v
		}
		return out, nil

	case a.kind == valueMatrix && b.kind == valueScalar:
		if err := ValidateNotNil(a.mat); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// Broadcast preserves the Matrix operand's shape and orientation.
		out := a.mat.Clone()
		for idx, x := range a.mat.data {
			v, err := fn(x, b.scalar)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			out.data[idx] = v
		}
		return out, nil

	case a.kind == valueScalar && b.kind == valueMatrix:
		if err := ValidateNotNil(b.mat); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out := b.mat.Clone()
		for idx, y := range b.mat.data {
			v, err := fn(a.scalar, y)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			out.data[idx] = v
		}
		return out, nil

	case a.kind == valueInvalid || b.kind == valueInvalid:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidValue)

	default:
		return nil, fmt.Errorf("%s: %w", op, ErrNotImplemented)
	}
}

// Add returns the elementwise sum of the operands.
// Errors: ErrShapeMismatch, ErrNotImplemented, ErrInvalidValue, ErrNilMatrix.
func Add(a, b Value) (*Matrix, error) {
	return combine(opAdd, a, b, func(x, y float64) (float64, error) { return x + y, nil })
}

// Sub returns the elementwise difference a − b.
func Sub(a, b Value) (*Matrix, error) {
	return combine(opSub, a, b, func(x, y float64) (float64, error) { return x - y, nil })
}

// Mul returns the elementwise (Hadamard) product of the operands.
// For the matrix product, see MatMul.
func Mul(a, b Value) (*Matrix, error) {
	return combine(opMul, a, b, func(x, y float64) (float64, error) { return x * y, nil })
}

// Div returns the elementwise quotient a / b.
// Errors additionally: ErrDivisionByZero on any exactly-zero divisor element;
// a zero scalar divisor fails before any element is computed.
func Div(a, b Value) (*Matrix, error) {
	if s, ok := b.AsScalar(); ok && s == 0 {
		return nil, fmt.Errorf("%s: %w", opDiv, ErrDivisionByZero)
	}
	return combine(opDiv, a, b, func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	})
}

// Neg returns a new Matrix with every element negated, preserving the
// operand's shape and transpose flag.
// Complexity: O(rows*cols).
func Neg(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opNeg, err)
	}
	out := m.Clone()
	for idx, v := range m.data {
		out.data[idx] = -v
	}
	return out, nil
}

// Abs returns a new Matrix with the absolute value of every element,
// preserving the operand's shape and transpose flag.
// Complexity: O(rows*cols).
func Abs(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opAbs, err)
	}
	out := m.Clone()
	for idx, v := range m.data {
		if v < 0 {
			out.data[idx] = -v
		}
	}
	return out, nil
}

// MatMul returns the matrix product a·b.
//
// The operands' LOGICAL shapes must chain: Cols(a) == Rows(b), otherwise
// ErrShapeMismatch. When the result shape is (1, 1) the bare dot product is
// returned as a scalar Value; otherwise a new untransposed Matrix of shape
// (Rows(a), Cols(b)) where out(i, j) = Σₖ a(i, k)·b(k, j), with both
// operands read through their own transpose-aware offset mapping.
//
// Complexity: O(Rows(a)·Cols(a)·Cols(b)).
func MatMul(a, b *Matrix) (Value, error) {
	if err := ValidateNotNil(a); err != nil {
		return Value{}, fmt.Errorf("%s: %w", opMatMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return Value{}, fmt.Errorf("%s: %w", opMatMul, err)
	}
	n, p := a.Rows(), a.Cols()
	q := b.Cols()
	if p != b.Rows() {
		return Value{}, fmt.Errorf("%s: %dx%d by %dx%d: %w", opMatMul, n, p, b.Rows(), q, ErrShapeMismatch)
	}

	// Degenerate (1,1) result: return the bare dot product.
	if n == 1 && q == 1 {
		var dot float64
		for k := 0; k < p; k++ {
			dot += a.data[linearize(a.cols, a.transposed, 0, k)] * b.data[linearize(b.cols, b.transposed, k, 0)]
		}
		return Scalar(dot), nil
	}

	out := &Matrix{rows: n, cols: q, data: make([]float64, n*q)}
	for i := 0; i < n; i++ {
		for j := 0; j < q; j++ {
			var sum float64
			for k := 0; k < p; k++ {
				sum += a.data[linearize(a.cols, a.transposed, i, k)] * b.data[linearize(b.cols, b.transposed, k, j)]
			}
			out.data[i*q+j] = sum
		}
	}
	return Ref(out), nil
}

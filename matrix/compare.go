// SPDX-License-Identifier: MIT
// Package matrix: broadcasting comparison engine.
//
// Purpose:
//   - Provide the six relational operators over Value operands, total across
//     Matrix↔Matrix, Matrix↔scalar and scalar↔Matrix combinations.
//
// Semantics:
//   - Matrix↔Matrix pairs corresponding LOGICAL positions through each
//     side's own full selection, so each operand's transpose flag is honored
//     independently; a transposed and an untransposed matrix of equal
//     logical shape compare element-for-element.
//   - Relational operators (<, ≤, ≥, >) require identical logical shapes and
//     return ErrShapeMismatch otherwise. Equality across mismatched shapes
//     is a defined non-error result: Equal → false, NotEqual → true.
//   - Matrix↔scalar broadcasts the scalar over every element; the result is
//     true iff the relation holds for all elements (NotEqual: for at least
//     one element).
//   - Unsupported operand combinations (scalar↔scalar, sequence operands)
//     yield the ErrNotImplemented sentinel, deferring to the caller.
//
// Determinism & Performance:
//   - Fixed row-major pairing order with short-circuit on the first failing
//     pair; O(rows*cols) worst case, no allocations beyond the offset pairing.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opLess           = "Less"
	opLessOrEqual    = "LessOrEqual"
	opEqual          = "Equal"
	opNotEqual       = "NotEqual"
	opGreaterOrEqual = "GreaterOrEqual"
	opGreater        = "Greater"
	opClose          = "Close"
)

// forAllPairs reports whether rel holds for every corresponding element pair
// of the two operands. Shared kernel behind every relational operator.
//
// Stage 1 (Dispatch): resolve the operand-kind combination once.
// Stage 2 (Validate): nil and logical-shape checks for Matrix operands.
// Stage 3 (Execute): short-circuit scan in row-major logical order.
func forAllPairs(op string, a, b Value, rel func(x, y float64) bool) (bool, error) {
	switch {
	case a.kind == valueMatrix && b.kind == valueMatrix:
		am, bm := a.mat, b.mat
		if err := ValidateNotNil(am); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if err := ValidateNotNil(bm); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if err := ValidateSameShape(am, bm); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		// Pair logical positions via each side's own full selection.
		ai, bi := am.selectAll(), bm.selectAll()
		for k := range ai {
			if !rel(am.data[ai[k]], bm.data[bi[k]]) {
				return false, nil
			}
		}
		return true, nil

	case a.kind == valueMatrix && b.kind == valueScalar:
		if err := ValidateNotNil(a.mat); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		// Broadcast: orientation is irrelevant for an all-elements scan.
		for _, x := range a.mat.data {
			if !rel(x, b.scalar) {
				return false, nil
			}
		}
		return true, nil

	case a.kind == valueScalar && b.kind == valueMatrix:
		if err := ValidateNotNil(b.mat); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		for _, y := range b.mat.data {
			if !rel(a.scalar, y) {
				return false, nil
			}
		}
		return true, nil

	case a.kind == valueInvalid || b.kind == valueInvalid:
		return false, fmt.Errorf("%s: %w", op, ErrInvalidValue)

	default:
		// scalar↔scalar and sequence operands are outside the engine.
		return false, fmt.Errorf("%s: %w", op, ErrNotImplemented)
	}
}

// Less reports whether every corresponding element pair satisfies a < b.
// Errors: ErrShapeMismatch, ErrNotImplemented, ErrInvalidValue, ErrNilMatrix.
func Less(a, b Value) (bool, error) {
	return forAllPairs(opLess, a, b, func(x, y float64) bool { return x < y })
}

// LessOrEqual reports whether every corresponding element pair satisfies a ≤ b.
func LessOrEqual(a, b Value) (bool, error) {
	return forAllPairs(opLessOrEqual, a, b, func(x, y float64) bool { return x <= y })
}

// GreaterOrEqual reports whether every corresponding element pair satisfies a ≥ b.
func GreaterOrEqual(a, b Value) (bool, error) {
	return forAllPairs(opGreaterOrEqual, a, b, func(x, y float64) bool { return x >= y })
}

// Greater reports whether every corresponding element pair satisfies a > b.
func Greater(a, b Value) (bool, error) {
	return forAllPairs(opGreater, a, b, func(x, y float64) bool { return x > y })
}

// Equal reports whether every corresponding element pair is equal.
// A logical-shape mismatch between two matrices is NOT an error: the result
// is simply false.
func Equal(a, b Value) (bool, error) {
	eq, err := forAllPairs(opEqual, a, b, func(x, y float64) bool { return x == y })
	if err != nil && errors.Is(err, ErrShapeMismatch) {
		return false, nil // differing shapes are well-defined "not equal"
	}
	return eq, err
}

// NotEqual reports whether at least one corresponding element pair differs.
// A logical-shape mismatch between two matrices yields true, never an error.
func NotEqual(a, b Value) (bool, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opNotEqual, errors.Unwrap(err))
	}
	return !eq, nil
}

// Close reports whether every corresponding element pair is equal within the
// absolute tolerance eps (use DefaultEpsilon for the package policy).
// Shape-mismatch semantics follow Equal: false, not an error.
func Close(a, b Value, eps float64) (bool, error) {
	eq, err := forAllPairs(opClose, a, b, func(x, y float64) bool { return math.Abs(x-y) <= eps })
	if err != nil && errors.Is(err, ErrShapeMismatch) {
		return false, nil
	}
	return eq, err
}

// Equals is the boolean convenience form of Equal for two matrices: nil
// operands and shape mismatches both report false, and no error can occur.
func (m *Matrix) Equals(other *Matrix) bool {
	if m == nil || other == nil {
		return false
	}
	eq, _ := Equal(Ref(m), Ref(other))
	return eq
}

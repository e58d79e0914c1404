// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/finiteness checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the Matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateShape ensures a requested construction shape is at least (1, 1).
// Returns ErrInvalidShape otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidShape
	}
	return nil
}

// ValidateSameShape ensures two matrices have equal logical shapes.
// Assumes a and b are not nil (callers must ensure).
// Returns ErrShapeMismatch on any dimension difference.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrShapeMismatch
	}
	return nil
}

// ValidateFinite rejects NaN and ±Inf under the package numeric policy.
// Returns ErrNaNInf for non-finite v.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	return nil
}

// ValidateFiniteAll applies ValidateFinite to every element of vals.
// Complexity: O(len(vals)).
func ValidateFiniteAll(vals []float64) error {
	for _, v := range vals {
		if err := ValidateFinite(v); err != nil {
			return err
		}
	}
	return nil
}

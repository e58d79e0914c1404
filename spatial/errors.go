// SPDX-License-Identifier: MIT
// Package spatial: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the spatial
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package spatial

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spatial: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates incompatible dimensionalities between two
	// vectors, or a vector of the wrong length for the requested operation.
	ErrDimensionMismatch = errors.New("spatial: dimension mismatch")

	// ErrCrossDimension signals a cross product over a dimensionality for
	// which the operation does not exist (only 3 and 7 qualify).
	ErrCrossDimension = errors.New("spatial: cross product requires dimensionality 3 or 7")

	// ErrNotImplemented marks an operation that is mathematically defined but
	// deliberately unsupported (the seven-dimensional cross product).
	ErrNotImplemented = errors.New("spatial: operation not implemented")

	// ErrZeroNorm is returned when normalization would divide by a zero norm.
	ErrZeroNorm = errors.New("spatial: zero norm")

	// ErrDivisionByZero is returned on any exactly-zero divisor element.
	ErrDivisionByZero = errors.New("spatial: division by zero")

	// ErrDegenerateFrustum signals projection bounds that collapse an axis
	// (left==right, bottom==top or near==far).
	ErrDegenerateFrustum = errors.New("spatial: degenerate frustum")
)

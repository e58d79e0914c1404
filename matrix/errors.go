// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (rows < 1 or cols < 1). Constructors must validate before allocation.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrInvalidValue indicates that a supplied Value is not of a kind the
	// operation accepts (e.g., a sequence where a scalar or Matrix is
	// required, or the zero Value).
	ErrInvalidValue = errors.New("matrix: invalid value kind")

	// ErrSizeMismatch indicates that a flat sequence's length does not equal
	// the required element count (construction data or indexed assignment).
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrShapeMismatch indicates incompatible logical shapes between two
	// operands: relational comparison, elementwise arithmetic, indexed
	// Matrix-value assignment, or matrix product.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates that a scalar axis index falls outside the
	// axis's logical extent after negative-index adjustment.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptySelection indicates that an index expression resolved to zero
	// elements where at least one is required (reads and writes).
	ErrEmptySelection = errors.New("matrix: empty selection")

	// ErrDivisionByZero is returned when any divisor element is exactly zero
	// in a divide operation. The operation fails; no partial result escapes.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNotImplemented marks an operand combination the engine does not
	// define (e.g., scalar↔scalar comparison, sequence operands). It mirrors
	// a "not implemented" dispatch sentinel rather than a hard failure, so
	// callers may consult the other operand's type.
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrZeroStep indicates a range selector with step == 0.
	ErrZeroStep = errors.New("matrix: slice step must be non-zero")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (construction data, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// SPDX-License-Identifier: MIT
// Package matrix: the mapping protocol (indexed read and write).
//
// Purpose:
//   - Get resolves an index expression and returns either a scalar (single
//     element) or a freshly copied sub-matrix (several elements).
//   - Set resolves the same expressions and assigns from a Value union:
//     Matrix (paired by logical position), sequence (positional), or scalar
//     (broadcast).
//   - At/SetAt are O(1) single-element fast paths for numeric consumers.
//
// Determinism & Policy:
//   - Selections are processed in row-major selection order.
//   - Reads copy; no view into the source buffer ever escapes.
//   - Writes validate completely before the first element is touched.

package matrix

import "fmt"

// Get reads the selection designated by the index expression.
//
// Behavior:
//   - more than one element → a new untransposed Matrix of the sub-shape,
//     populated in row-major selection order (a copy, never a view);
//   - exactly one element → a scalar Value;
//   - zero elements → ErrEmptySelection.
//
// Errors: ErrIndexOutOfRange, ErrZeroStep, ErrEmptySelection,
// ErrInvalidValue (more than two axes).
// Complexity: O(k) for a k-element selection.
func (m *Matrix) Get(sels ...Selector) (Value, error) {
	subRows, subCols, offsets, err := m.resolve(sels)
	if err != nil {
		return Value{}, fmt.Errorf("Get: %w", err)
	}

	switch {
	case len(offsets) > 1:
		sub := &Matrix{rows: subRows, cols: subCols, data: make([]float64, len(offsets))}
		for k, off := range offsets {
			sub.data[k] = m.data[off]
		}
		return Ref(sub), nil
	case len(offsets) == 1:
		return Scalar(m.data[offsets[0]]), nil
	default:
		return Value{}, fmt.Errorf("Get: %w", ErrEmptySelection)
	}
}

// Set writes the Value into the selection designated by the index expression.
//
// Behavior by value kind:
//   - Matrix: its logical shape must equal the target sub-shape exactly
//     (ErrShapeMismatch); pairing goes through the value's own full
//     selection, so its transpose flag is honored;
//   - sequence: length must equal the selection size (ErrSizeMismatch);
//     elements are assigned positionally and must be finite (ErrNaNInf);
//   - scalar: broadcast to every selected offset;
//   - any other kind: ErrInvalidValue.
//
// Errors additionally: ErrIndexOutOfRange, ErrZeroStep, ErrEmptySelection.
// Complexity: O(k) for a k-element selection.
func (m *Matrix) Set(v Value, sels ...Selector) error {
	subRows, subCols, offsets, err := m.resolve(sels)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if len(offsets) == 0 {
		return fmt.Errorf("Set: %w", ErrEmptySelection)
	}

	switch v.kind {
	case valueMatrix:
		src := v.mat
		if err = ValidateNotNil(src); err != nil {
			return fmt.Errorf("Set: %w", err)
		}
		if src.Rows() != subRows || src.Cols() != subCols {
			return fmt.Errorf("Set: value %dx%d into selection %dx%d: %w",
				src.Rows(), src.Cols(), subRows, subCols, ErrShapeMismatch)
		}
		// Pair logical positions: k-th selected offset receives the k-th
		// logical element of the source, whatever its orientation.
		srcOffsets := src.selectAll()
		for k, off := range offsets {
			m.data[off] = src.data[srcOffsets[k]]
		}
	case valueSeq:
		if len(v.seq) != len(offsets) {
			return fmt.Errorf("Set: value length %d, selection %d: %w", len(v.seq), len(offsets), ErrSizeMismatch)
		}
		if err = ValidateFiniteAll(v.seq); err != nil {
			return fmt.Errorf("Set: value element: %w", err)
		}
		for k, off := range offsets {
			m.data[off] = v.seq[k]
		}
	case valueScalar:
		if err = ValidateFinite(v.scalar); err != nil {
			return fmt.Errorf("Set: %w", err)
		}
		for _, off := range offsets {
			m.data[off] = v.scalar
		}
	default:
		return fmt.Errorf("Set: value must be a Matrix, a sequence or a scalar: %w", ErrInvalidValue)
	}
	return nil
}

// At retrieves the single element at logical position (i, j).
// Unlike Get selectors, At does not accept negative indices.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	return m.data[linearize(m.cols, m.transposed, i, j)], nil
}

// SetAt assigns v at logical position (i, j).
//
// Errors: ErrIndexOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (m *Matrix) SetAt(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return fmt.Errorf("SetAt(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	if err := ValidateFinite(v); err != nil {
		return fmt.Errorf("SetAt(%d,%d): %w", i, j, err)
	}
	m.data[linearize(m.cols, m.transposed, i, j)] = v
	return nil
}

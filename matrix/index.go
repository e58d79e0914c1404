// SPDX-License-Identifier: MIT
// Package matrix: index resolution.
//
// Purpose:
//   - Map a user index expression (one or two axis Selectors) onto the pair
//     (logical sub-shape, ordered physical buffer offsets).
//   - Keep transposition entirely inside one coordinate-mapping function so
//     slicing behaves identically on transposed and untransposed views.
//
// Design:
//   - Selector is a small closed set of axis variants (Index, Pick, Range,
//     All) resolved through one shared function, instead of branching on key
//     shape at each call site.
//   - Range bounds follow half-open slice semantics: out-of-range bounds are
//     clamped (never errors), any nonzero step is legal, negative steps
//     reverse. Scalar positions (Index, Pick) adjust negatives from the end
//     of the axis and then must land inside the logical extent.
//
// Determinism & Performance:
//   - Offsets are produced in row-major order of the selection; fixed i→j
//     loops; one allocation per resolved axis plus one for the offsets.

package matrix

import "fmt"

// selKind discriminates the Selector closed set.
type selKind uint8

const (
	selAll   selKind = iota // full axis, step +1
	selIndex                // single position
	selRange                // start/stop/step with optional open bounds
	selPick                 // explicit list of positions
)

// Selector selects positions along one logical axis of a Matrix.
// Build values with Index, Pick, Range, RangeStep, From, To, All or Reversed;
// the zero Selector is All.
type Selector struct {
	kind             selKind
	index            int   // selIndex payload
	start, stop      int   // selRange bounds (pre-adjustment)
	step             int   // selRange step; constructors never leave it 0 unless user-supplied
	hasStart, hasStop bool // distinguish open bounds from explicit zeros
	list             []int // selPick payload
}

// Index selects the single position i; negative i counts from the end of the
// axis (-1 is the last position).
func Index(i int) Selector {
	return Selector{kind: selIndex, index: i}
}

// Pick selects an explicit list of positions in the given order; each entry
// follows the same negative-index rule as Index.
func Pick(positions ...int) Selector {
	return Selector{kind: selPick, list: positions}
}

// Range selects the half-open interval [start, stop) with step +1.
// Bounds are clamped to the axis, never errors.
func Range(start, stop int) Selector {
	return Selector{kind: selRange, start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// RangeStep selects [start, stop) with an arbitrary nonzero step; a negative
// step walks the axis backwards. A zero step resolves to ErrZeroStep.
func RangeStep(start, stop, step int) Selector {
	return Selector{kind: selRange, start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// From selects [start, end-of-axis) with step +1.
func From(start int) Selector {
	return Selector{kind: selRange, start: start, step: 1, hasStart: true}
}

// To selects [0, stop) with step +1.
func To(stop int) Selector {
	return Selector{kind: selRange, stop: stop, step: 1, hasStop: true}
}

// All selects every position of the axis in order. Omitted axes complete to All.
func All() Selector {
	return Selector{kind: selAll}
}

// Reversed selects every position of the axis in reverse order.
func Reversed() Selector {
	return Selector{kind: selRange, step: -1}
}

// clampSlice adjusts one explicit slice bound the way half-open slice
// semantics demand: negatives are shifted by the extent, then the result is
// clamped to [0, extent] for forward steps and [-1, extent-1] for backward
// steps (-1 being the exclusive stop "before position 0").
func clampSlice(bound, extent int, backward bool) int {
	if bound < 0 {
		bound += extent
	}
	if backward {
		if bound < 0 {
			return -1
		}
		if bound >= extent {
			return extent - 1
		}
		return bound
	}
	if bound < 0 {
		return 0
	}
	if bound > extent {
		return extent
	}
	return bound
}

// resolveAxis maps one Selector onto the ordered logical positions it
// designates within an axis of the given extent.
//
// Errors:
//   - ErrIndexOutOfRange for Index/Pick positions outside [0, extent) after
//     negative adjustment.
//   - ErrZeroStep for a Range with step == 0.
//
// Complexity: O(k) where k is the number of selected positions.
func resolveAxis(s Selector, extent int) ([]int, error) {
	switch s.kind {
	case selAll:
		pos := make([]int, extent)
		for i := 0; i < extent; i++ {
			pos[i] = i
		}
		return pos, nil

	case selIndex:
		i := s.index
		if i < 0 {
			i += extent // negative counts from the end of the axis
		}
		if i < 0 || i >= extent {
			return nil, fmt.Errorf("index %d (extent %d): %w", s.index, extent, ErrIndexOutOfRange)
		}
		return []int{i}, nil

	case selPick:
		pos := make([]int, len(s.list))
		for n, raw := range s.list {
			i := raw
			if i < 0 {
				i += extent
			}
			if i < 0 || i >= extent {
				return nil, fmt.Errorf("pick %d (extent %d): %w", raw, extent, ErrIndexOutOfRange)
			}
			pos[n] = i
		}
		return pos, nil

	case selRange:
		step := s.step
		if step == 0 {
			return nil, ErrZeroStep
		}
		backward := step < 0

		// Open bounds default to the full axis in the walking direction.
		start := 0
		if backward {
			start = extent - 1
		}
		if s.hasStart {
			start = clampSlice(s.start, extent, backward)
		}
		stop := extent
		if backward {
			stop = -1
		}
		if s.hasStop {
			stop = clampSlice(s.stop, extent, backward)
		}

		// Position count under half-open semantics; clamping may yield zero.
		var count int
		if backward {
			if start > stop {
				count = (start-stop-1)/(-step) + 1
			}
		} else {
			if start < stop {
				count = (stop-start-1)/step + 1
			}
		}

		pos := make([]int, count)
		for n := 0; n < count; n++ {
			pos[n] = start + n*step
		}
		return pos, nil

	default:
		// Unreachable: Selector constructors cover the closed set.
		return nil, ErrInvalidValue
	}
}

// completeSelectors expands a user key into exactly two axis selectors:
// no selectors means the full matrix, a single selector means that row
// selection with all columns, and more than two axes is rejected.
func completeSelectors(sels []Selector) (row, col Selector, err error) {
	switch len(sels) {
	case 0:
		return All(), All(), nil
	case 1:
		return sels[0], All(), nil
	case 2:
		return sels[0], sels[1], nil
	default:
		return Selector{}, Selector{}, fmt.Errorf("expected at most 2 axis selectors, got %d: %w", len(sels), ErrInvalidValue)
	}
}

// linearize composes a logical (i, j) pair with the transpose-aware offset
// mapping. The physical buffer is always row-major for the pre-transpose
// (rows, cols) shape, so a transposed logical (i, j) addresses physical
// (j, i). Bounds are the caller's responsibility.
func linearize(cols int, transposed bool, i, j int) int {
	if transposed {
		return j*cols + i
	}
	return i*cols + j
}

// resolve maps an index expression onto the logical sub-shape it selects and
// the physical buffer offsets it designates, in row-major selection order.
//
// The sub-shape dimensions are ≥ 0; empty selections are legal here and
// rejected by Get/Set, which require at least one element.
//
// Complexity: O(nRows*nCols) offsets plus O(nRows+nCols) axis resolution.
func (m *Matrix) resolve(sels []Selector) (subRows, subCols int, offsets []int, err error) {
	rowSel, colSel, err := completeSelectors(sels)
	if err != nil {
		return 0, 0, nil, err
	}

	// Resolve each axis against its logical extent (post-transpose).
	rowPos, err := resolveAxis(rowSel, m.Rows())
	if err != nil {
		return 0, 0, nil, err
	}
	colPos, err := resolveAxis(colSel, m.Cols())
	if err != nil {
		return 0, 0, nil, err
	}

	// Emit offsets in row-major order of the selection.
	offsets = make([]int, 0, len(rowPos)*len(colPos))
	for _, i := range rowPos {
		for _, j := range colPos {
			offsets = append(offsets, linearize(m.cols, m.transposed, i, j))
		}
	}
	return len(rowPos), len(colPos), offsets, nil
}

// selectAll returns every element's physical offset in logical row-major
// order. It is the degenerate full resolution used to pair corresponding
// logical elements between two equally-shaped matrices: pairing a transposed
// and an untransposed operand compares logical positions, not raw offsets.
func (m *Matrix) selectAll() []int {
	offsets := make([]int, 0, len(m.data))
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			offsets = append(offsets, linearize(m.cols, m.transposed, i, j))
		}
	}
	return offsets
}

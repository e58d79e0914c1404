// SPDX-License-Identifier: MIT
// Package spatial: real-valued vectors.
//
// Purpose:
//   - Arbitrary-dimension vectors with the algebra a transform pipeline
//     needs: dot and cross products, L2 norm, normalization, elementwise
//     arithmetic with scalar broadcast, and a GPU-friendly byte layout.
//
// Semantics:
//   - Constructors snap sub-epsilon magnitudes to exactly zero.
//   - Binary vector operations require equal dimensionality
//     (ErrDimensionMismatch); scalar forms broadcast.
//   - All operations return fresh vectors; nothing mutates in place.

package spatial

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opDot       = "Dot"
	opCross     = "Cross"
	opNormalize = "Normalize"
	opVecAdd    = "Vector.Add"
	opVecSub    = "Vector.Sub"
	opVecMul    = "Vector.Mul"
	opVecDiv    = "Vector.Div"
)

// machineEps is the float64 machine epsilon: the snapping threshold for
// near-zero components.
var machineEps = math.Nextafter(1, 2) - 1

// snap returns v, or exactly zero when its magnitude is below machineEps.
func snap(v float64) float64 {
	if math.Abs(v) < machineEps {
		return 0
	}
	return v
}

// Vector is a real-valued vector of fixed dimensionality.
type Vector []float64

// NewVector builds a Vector from the given components, snapping sub-epsilon
// magnitudes to zero.
func NewVector(vals ...float64) Vector {
	v := make(Vector, len(vals))
	for i, x := range vals {
		v[i] = snap(x)
	}
	return v
}

// Dim returns the dimensionality of the vector.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports exact elementwise equality; differing dimensionalities are
// simply unequal, never an error.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Dot returns the dot product of two equally-dimensioned vectors.
// Errors: ErrDimensionMismatch.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v) != len(o) {
		return 0, fmt.Errorf("%s: %d vs %d: %w", opDot, len(v), len(o), ErrDimensionMismatch)
	}
	var sum float64
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum, nil
}

// Cross returns the cross product of two three-dimensional vectors.
// The seven-dimensional cross product exists but is deliberately unsupported.
//
// Errors: ErrDimensionMismatch (unequal operands), ErrNotImplemented (7-D),
// ErrCrossDimension (any other dimensionality).
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%s: %d vs %d: %w", opCross, len(v), len(o), ErrDimensionMismatch)
	}
	switch len(v) {
	case 3:
		return NewVector(
			v[1]*o[2]-v[2]*o[1],
			v[2]*o[0]-v[0]*o[2],
			v[0]*o[1]-v[1]*o[0],
		), nil
	case 7:
		return nil, fmt.Errorf("%s: dimensionality 7: %w", opCross, ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%s: dimensionality %d: %w", opCross, len(v), ErrCrossDimension)
	}
}

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns a fresh unit-length vector pointing the same way.
// Errors: ErrZeroNorm.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opNormalize, ErrZeroNorm)
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = snap(x / n)
	}
	return out, nil
}

// Add returns the elementwise sum of two equally-dimensioned vectors.
// Errors: ErrDimensionMismatch.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%s: %d vs %d: %w", opVecAdd, len(v), len(o), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = snap(v[i] + o[i])
	}
	return out, nil
}

// Sub returns the elementwise difference v − o.
// Errors: ErrDimensionMismatch.
func (v Vector) Sub(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%s: %d vs %d: %w", opVecSub, len(v), len(o), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = snap(v[i] - o[i])
	}
	return out, nil
}

// Mul returns the elementwise (Hadamard) product of two vectors.
// Errors: ErrDimensionMismatch.
func (v Vector) Mul(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%s: %d vs %d: %w", opVecMul, len(v), len(o), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = snap(v[i] * o[i])
	}
	return out, nil
}

// Div returns the elementwise quotient v / o.
// Errors: ErrDimensionMismatch, ErrDivisionByZero on any zero element of o.
func (v Vector) Div(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%s: %d vs %d: %w", opVecDiv, len(v), len(o), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		if o[i] == 0 {
			return nil, fmt.Errorf("%s: element %d: %w", opVecDiv, i, ErrDivisionByZero)
		}
		out[i] = snap(v[i] / o[i])
	}
	return out, nil
}

// Scale returns the vector multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = snap(x * s)
	}
	return out
}

// Shift returns the vector with s added to every component.
func (v Vector) Shift(s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = snap(x + s)
	}
	return out
}

// Bytes returns the vector's components as little-endian float32 values,
// the layout GPU uniform buffers expect.
func (v Vector) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(4 * len(v))
	for _, x := range v {
		// Write on a bytes.Buffer cannot fail.
		_ = binary.Write(&buf, binary.LittleEndian, float32(x))
	}
	return buf.Bytes()
}

// String renders the vector as "(x, y, z)".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

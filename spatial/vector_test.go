// Package spatial_test contains unit tests for Vector algebra.
package spatial_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/spatial"
	"github.com/stretchr/testify/require"
)

// TestNewVectorSnapsEpsilon: sub-epsilon construction artifacts become zero.
func TestNewVectorSnapsEpsilon(t *testing.T) {
	v := spatial.NewVector(1, 1e-20, -1e-20)
	require.Equal(t, spatial.Vector{1, 0, 0}, v)
}

// TestDot covers the dot product and its dimension check.
func TestDot(t *testing.T) {
	a := spatial.NewVector(1, 2, 3)
	b := spatial.NewVector(4, 5, 6)

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	_, err = a.Dot(spatial.NewVector(1, 2))
	require.ErrorIs(t, err, spatial.ErrDimensionMismatch)
}

// TestCross covers the 3-D cross product and the closed dimensionality set.
func TestCross(t *testing.T) {
	x := spatial.NewVector(1, 0, 0)
	y := spatial.NewVector(0, 1, 0)

	z, err := x.Cross(y)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{0, 0, 1}, z) // x × y = z

	anti, err := y.Cross(x)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{0, 0, -1}, anti) // anticommutative

	_, err = x.Cross(spatial.NewVector(1, 2))
	require.ErrorIs(t, err, spatial.ErrDimensionMismatch)

	a2 := spatial.NewVector(1, 2)
	_, err = a2.Cross(spatial.NewVector(3, 4))
	require.ErrorIs(t, err, spatial.ErrCrossDimension)

	a7 := spatial.NewVector(1, 2, 3, 4, 5, 6, 7)
	_, err = a7.Cross(a7)
	require.ErrorIs(t, err, spatial.ErrNotImplemented) // 7-D exists, unsupported
}

// TestNormAndNormalize: L2 norm and unit-length projection.
func TestNormAndNormalize(t *testing.T) {
	v := spatial.NewVector(3, 4)
	require.Equal(t, 5.0, v.Norm())

	unit, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{0.6, 0.8}, unit)
	require.InDelta(t, 1.0, unit.Norm(), 1e-15)
	require.Equal(t, spatial.Vector{3, 4}, v) // source untouched

	_, err = spatial.NewVector(0, 0, 0).Normalize()
	require.ErrorIs(t, err, spatial.ErrZeroNorm)
}

// TestElementwiseVectorOps: Add/Sub/Mul/Div over equal dimensions.
func TestElementwiseVectorOps(t *testing.T) {
	a := spatial.NewVector(4, 9, 16)
	b := spatial.NewVector(2, 3, 4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{6, 12, 20}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{2, 6, 12}, diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{8, 27, 64}, prod)

	quot, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, spatial.Vector{2, 3, 4}, quot)

	_, err = a.Div(spatial.NewVector(1, 0, 1))
	require.ErrorIs(t, err, spatial.ErrDivisionByZero)

	_, err = a.Add(spatial.NewVector(1))
	require.ErrorIs(t, err, spatial.ErrDimensionMismatch)
}

// TestScalarBroadcastVector: Scale and Shift broadcast a scalar.
func TestScalarBroadcastVector(t *testing.T) {
	v := spatial.NewVector(1, -2, 3)

	require.Equal(t, spatial.Vector{2, -4, 6}, v.Scale(2))
	require.Equal(t, spatial.Vector{11, 8, 13}, v.Shift(10))
}

// TestVectorEqual: exact equality, dimension-safe.
func TestVectorEqual(t *testing.T) {
	a := spatial.NewVector(1, 2, 3)

	require.True(t, a.Equal(spatial.NewVector(1, 2, 3)))
	require.False(t, a.Equal(spatial.NewVector(1, 2, 4)))
	require.False(t, a.Equal(spatial.NewVector(1, 2))) // no error, just unequal
}

// TestCloneIndependentVector: Clone shares no backing storage.
func TestCloneIndependentVector(t *testing.T) {
	a := spatial.NewVector(1, 2)
	c := a.Clone()
	c[0] = 99
	require.Equal(t, spatial.Vector{1, 2}, a)
}

// TestVectorBytes: float32 little-endian layout, four bytes per component.
func TestVectorBytes(t *testing.T) {
	v := spatial.NewVector(1, -2.5)
	raw := v.Bytes()
	require.Len(t, raw, 8)

	x := math.Float32frombits(binary.LittleEndian.Uint32(raw[0:4]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(raw[4:8]))
	require.Equal(t, float32(1), x)
	require.Equal(t, float32(-2.5), y)
}

// TestVectorString renders components in parentheses.
func TestVectorString(t *testing.T) {
	require.Equal(t, "(1, 2.5, -3)", spatial.NewVector(1, 2.5, -3).String())
}

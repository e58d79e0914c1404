// SPDX-License-Identifier: MIT
// Package spatial: rotation quaternions.
//
// Purpose:
//   - Four-dimensional complex numbers for composing 3-D rotations without
//     gimbal lock: Hamilton product, conjugate, axis-angle construction and
//     conversion to rotation matrices.
//
// Semantics:
//   - The zero-argument constructor yields the identity rotation (1,0,0,0).
//   - Components are snapped to zero below machine epsilon, so axis-angle
//     round trips compare clean against literals.
//   - Mul is the Hamilton product (non-commutative); composed rotations apply
//     right to left.

package spatial

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmath/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opQuatNormalize = "Quaternion.Normalize"
	opFromAxisAngle = "FromAxisAngle"
)

// Quaternion is a four-dimensional complex number r + i·𝐢 + j·𝐣 + k·𝐤.
// The zero value is NOT the identity rotation; use NewQuaternion() or
// IdentityQuaternion().
type Quaternion struct {
	R, I, J, K float64
}

// NewQuaternion builds a Quaternion from its four components, snapping
// sub-epsilon magnitudes to zero. With no arguments it returns the identity
// rotation (1, 0, 0, 0).
func NewQuaternion(components ...float64) (Quaternion, error) {
	switch len(components) {
	case 0:
		return IdentityQuaternion(), nil
	case 4:
		return Quaternion{
			R: snap(components[0]),
			I: snap(components[1]),
			J: snap(components[2]),
			K: snap(components[3]),
		}, nil
	default:
		return Quaternion{}, fmt.Errorf("NewQuaternion: %d components: %w", len(components), ErrDimensionMismatch)
	}
}

// IdentityQuaternion returns the identity rotation (1, 0, 0, 0).
func IdentityQuaternion() Quaternion {
	return Quaternion{R: 1}
}

// FromAxisAngle builds the unit quaternion rotating by angle radians around
// the given three-dimensional axis. The axis need not be pre-normalized; the
// angle is reduced modulo 2π.
//
// Errors: ErrDimensionMismatch (axis is not 3-D), ErrZeroNorm (zero axis).
func FromAxisAngle(axis Vector, angle float64) (Quaternion, error) {
	if axis.Dim() != 3 {
		return Quaternion{}, fmt.Errorf("%s: axis dimensionality %d: %w", opFromAxisAngle, axis.Dim(), ErrDimensionMismatch)
	}
	unit, err := axis.Normalize()
	if err != nil {
		return Quaternion{}, fmt.Errorf("%s: %w", opFromAxisAngle, err)
	}
	angle = math.Mod(angle, 2*math.Pi)

	sin := math.Sin(angle / 2)
	return Quaternion{
		R: snap(math.Cos(angle / 2)),
		I: snap(unit[0] * sin),
		J: snap(unit[1] * sin),
		K: snap(unit[2] * sin),
	}, nil
}

// Conjugate returns the quaternion with its imaginary components negated.
// For unit quaternions this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{R: q.R, I: -q.I, J: -q.J, K: -q.K}
}

// Norm returns the L2 norm of the quaternion.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K)
}

// Normalize returns a fresh unit quaternion.
// Errors: ErrZeroNorm.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, fmt.Errorf("%s: %w", opQuatNormalize, ErrZeroNorm)
	}
	return Quaternion{R: snap(q.R / n), I: snap(q.I / n), J: snap(q.J / n), K: snap(q.K / n)}, nil
}

// Mul returns the Hamilton product q·o. Order matters: the combined rotation
// applies o first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		R: snap(q.R*o.R - q.I*o.I - q.J*o.J - q.K*o.K),
		I: snap(q.R*o.I + q.I*o.R + q.J*o.K - q.K*o.J),
		J: snap(q.R*o.J - q.I*o.K + q.J*o.R + q.K*o.I),
		K: snap(q.R*o.K + q.I*o.J - q.J*o.I + q.K*o.R),
	}
}

// Add returns the componentwise sum of two quaternions.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{R: snap(q.R + o.R), I: snap(q.I + o.I), J: snap(q.J + o.J), K: snap(q.K + o.K)}
}

// Sub returns the componentwise difference q − o.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{R: snap(q.R - o.R), I: snap(q.I - o.I), J: snap(q.J - o.J), K: snap(q.K - o.K)}
}

// Scale returns the quaternion with every component multiplied by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{R: snap(q.R * s), I: snap(q.I * s), J: snap(q.J * s), K: snap(q.K * s)}
}

// RotationMatrix3 returns the 3×3 rotation matrix of the quaternion.
// The caller is expected to pass a unit quaternion; Normalize first when in
// doubt.
func (q Quaternion) RotationMatrix3() (*matrix.Matrix, error) {
	r, i, j, k := q.R, q.I, q.J, q.K
	return matrix.New(3, 3, matrix.WithValues(
		1-2*(j*j+k*k), 2*(i*j-k*r), 2*(i*k+j*r),
		2*(i*j+k*r), 1-2*(i*i+k*k), 2*(j*k-i*r),
		2*(i*k-j*r), 2*(j*k+i*r), 1-2*(i*i+j*j),
	))
}

// RotationMatrix4 returns the 4×4 homogeneous rotation matrix: the 3×3
// rotation embedded in an identity frame.
func (q Quaternion) RotationMatrix4() (*matrix.Matrix, error) {
	out, err := matrix.NewIdentity(4)
	if err != nil {
		return nil, fmt.Errorf("RotationMatrix4: %w", err)
	}
	r3, err := q.RotationMatrix3()
	if err != nil {
		return nil, fmt.Errorf("RotationMatrix4: %w", err)
	}
	if err = out.Set(matrix.Ref(r3), matrix.Range(0, 3), matrix.Range(0, 3)); err != nil {
		return nil, fmt.Errorf("RotationMatrix4: %w", err)
	}
	return out, nil
}

// Bytes returns the components as little-endian float32 values in
// (R, I, J, K) order.
func (q Quaternion) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(16)
	for _, x := range [4]float64{q.R, q.I, q.J, q.K} {
		_ = binary.Write(&buf, binary.LittleEndian, float32(x))
	}
	return buf.Bytes()
}

// String renders the quaternion as "r + ii + jj + kk".
func (q Quaternion) String() string {
	return fmt.Sprintf("%g + %gi + %gj + %gk", q.R, q.I, q.J, q.K)
}

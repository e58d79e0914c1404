// SPDX-License-Identifier: MIT
// Package spatial: homogeneous 4×4 transform builders.
//
// Purpose:
//   - Construct the standard camera and model transforms — identity,
//     translation, orthographic and perspective projection — as matrices
//     from the matrix core.
//
// Conventions:
//   - Right-handed coordinates, column vectors: a point transforms as M·p,
//     so the translation column lives at index 3.
//   - Projections map the view frustum into the OpenGL clip cube
//     [-1, 1]³ with the camera looking down −z.

package spatial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmath/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opTranslation  = "Translation"
	opOrthographic = "Orthographic"
	opPerspective  = "Perspective"
)

// Identity returns the 4×4 identity transform.
func Identity() (*matrix.Matrix, error) {
	return matrix.NewIdentity(4)
}

// Translation returns the 4×4 transform moving points by the given
// three-dimensional offset.
//
// Errors: ErrDimensionMismatch.
func Translation(v Vector) (*matrix.Matrix, error) {
	if v.Dim() != 3 {
		return nil, fmt.Errorf("%s: offset dimensionality %d: %w", opTranslation, v.Dim(), ErrDimensionMismatch)
	}
	out, err := matrix.NewIdentity(4)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranslation, err)
	}
	// Offset occupies the top three rows of the last column.
	if err = out.Set(matrix.Sequence(v...), matrix.Range(0, 3), matrix.Index(3)); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranslation, err)
	}
	return out, nil
}

// Orthographic returns the parallel projection mapping the axis-aligned box
// [left,right]×[bottom,top]×[near,far] onto the clip cube.
//
// Errors: ErrDegenerateFrustum when any axis collapses.
func Orthographic(left, right, bottom, top, near, far float64) (*matrix.Matrix, error) {
	if right == left || top == bottom || far == near {
		return nil, fmt.Errorf("%s: %w", opOrthographic, ErrDegenerateFrustum)
	}
	return matrix.New(4, 4, matrix.WithValues(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, -2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	))
}

// Perspective returns the perspective projection for a vertical field of
// view (radians), viewport aspect ratio (width/height) and near/far clip
// planes.
//
// Errors: ErrDegenerateFrustum for a zero aspect, a non-positive field of
// view, or collapsed clip planes.
func Perspective(fieldOfView, aspect, near, far float64) (*matrix.Matrix, error) {
	if aspect == 0 || fieldOfView <= 0 || fieldOfView >= math.Pi || near == far {
		return nil, fmt.Errorf("%s: %w", opPerspective, ErrDegenerateFrustum)
	}
	yScale := 1 / math.Tan(fieldOfView/2)
	xScale := yScale / aspect
	zSum := near + far
	zDiff := near - far
	zProd := near * far

	return matrix.New(4, 4, matrix.WithValues(
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, zSum / zDiff, 2 * zProd / zDiff,
		0, 0, -1, 0,
	))
}

// SPDX-License-Identifier: MIT

// Package spatial provides small fixed-purpose geometry primitives built on
// top of the matrix core: real-valued vectors, rotation quaternions and 4×4
// homogeneous transform builders.
//
// What this package offers:
//
//   - Vector: an arbitrary-dimension real vector with dot and cross products,
//     L2 norm, normalization, elementwise arithmetic with scalar broadcast,
//     and a float32 little-endian byte layout for GPU uploads.
//   - Quaternion: four-dimensional complex numbers for composing rotations —
//     Hamilton product, conjugate, axis-angle construction, and conversion to
//     3×3 / 4×4 rotation matrices from the matrix package.
//   - Transform builders: Identity, Translation, Orthographic and Perspective
//     projection matrices, all materialized as *matrix.Matrix.
//
// Numeric policy: constructors snap components whose magnitude falls below
// the float64 machine epsilon to exactly zero, so round-trip artifacts of
// trigonometric construction compare clean against literal zeros.
//
// Error handling mirrors the matrix package: package-level sentinels with a
// "spatial:" prefix, matched via errors.Is, wrapped with operation context at
// public boundaries.
//
// Concurrency: values are plain data; treat each Vector, Quaternion and
// produced Matrix as confined to one goroutine unless externally synchronized.
package spatial

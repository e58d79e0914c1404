// Package lvlmath is a compact numeric toolkit for 3D applications:
// a fixed-shape two-dimensional Matrix container with NumPy-style
// indexing, plus the spatial primitives (vectors, quaternions,
// projection matrices) that consume it.
//
// 🚀 What is lvlmath?
//
//	A small, deterministic, dependency-light library that brings together:
//		• matrix/  — dense float64 matrices: slicing, transposed views,
//		  broadcasting comparisons, elementwise and matrix arithmetic
//		• spatial/ — Vector & Quaternion algebra and 4×4 transform builders
//		  (translation, orthographic, perspective) on top of matrix
//
// ✨ Why choose lvlmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden machinery
//   - Deterministic – fixed loop orders, no global state
//
// Quick ASCII example:
//
//	A = [1, 2, 3]      A[0:2, 1] = [2]
//	    [4, 5, 6]                  [5]
//
// Start with matrix.New, index with matrix.Index / matrix.Range /
// matrix.All, and compare with matrix.Equal and friends.
package lvlmath

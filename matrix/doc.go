// Package matrix provides a fixed-shape two-dimensional float64 container
// with NumPy-style indexing, zero-copy transposed views, broadcasting
// comparisons, and elementwise plus matrix-product arithmetic.
//
// The matrix package provides:
//
//   - Construction from a shape plus optional fill data and orientation
//     (New, NewIdentity, WithFill/WithValues/WithTransposed).
//   - An index resolver with a small closed set of axis selectors: Index,
//     Pick, Range, RangeStep, From, To, All, Reversed. Scalar indices may be
//     negative (counting from the end of the axis); range bounds are clamped
//     half-open slices with arbitrary nonzero steps.
//   - A mapping protocol: Get returns a scalar for single-element selections
//     and a copied sub-matrix otherwise; Set assigns from a scalar, a flat
//     sequence, or another Matrix (paired by logical position).
//   - Broadcasting comparison and arithmetic engines over the Value union
//     (Scalar | Sequence | Ref), honoring each operand's transpose flag.
//   - Row/column iterators (EachRow, EachCol) and gonum interop
//     (ToGonum, FromGonum).
//
// Transposition is a view: the flag reinterprets logical coordinates over a
// fixed row-major buffer and never reorders data. Sub-selection always
// copies, so no two Matrix values share storage.
//
// The package is single-threaded and synchronous: no operation blocks or
// spawns goroutines, and no internal locking exists. Concurrent readers of
// an unmutated Matrix are safe; hosts must serialize mutating access to a
// given instance themselves.
//
// All failures are reported through package sentinel errors (ErrInvalidShape,
// ErrShapeMismatch, ErrIndexOutOfRange, ...) matched via errors.Is.
package matrix

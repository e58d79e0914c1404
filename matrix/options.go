// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction and
// numeric policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by Close for
	// approximate elementwise equality.
	DefaultEpsilon = 1e-9

	// DefaultTransposed is the orientation of a freshly built Matrix:
	// untransposed, logical shape == physical shape.
	DefaultTransposed = false
)

// ---------- Public option type (functional) ----------

// Option mutates construction options. Safe to apply repeatedly; the last
// data-bearing option wins.
type Option func(*options)

// options carries the gathered construction state (internal).
type options struct {
	data       Value // construction data; zero Value means "no data"
	hasData    bool  // distinguishes absent data from an invalid Value
	transposed bool  // orientation flag for the new Matrix
}

// WithData supplies construction data as a Value union: a scalar fills every
// element; a sequence is copied in physical row-major order and must have
// exactly rows*cols elements. Matrix-kind or zero Values are rejected by New
// with ErrInvalidValue.
func WithData(v Value) Option {
	return func(o *options) {
		o.data = v
		o.hasData = true
	}
}

// WithFill initializes every element to the scalar v.
// Sugar for WithData(Scalar(v)).
func WithFill(v float64) Option {
	return WithData(Scalar(v))
}

// WithValues supplies the flat element data in physical row-major order.
// Sugar for WithData(Sequence(vals...)).
func WithValues(vals ...float64) Option {
	return WithData(Sequence(vals...))
}

// WithTransposed marks the new Matrix as a transposed view over its own
// buffer: the data is still stored (and supplied) in the untransposed
// row-major layout, but the logical shape becomes (cols, rows).
func WithTransposed() Option {
	return func(o *options) {
		o.transposed = true
	}
}

// gatherOptions applies defaults and then every option in order.
func gatherOptions(opts ...Option) options {
	o := options{transposed: DefaultTransposed}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Package matrix_test contains unit tests for row and column iteration.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestEachRow walks logical rows top to bottom.
func TestEachRow(t *testing.T) {
	m := grid3(t)

	var got []string
	for v := range m.EachRow() {
		row, ok := v.AsMatrix()
		require.True(t, ok) // 3-wide rows yield sub-matrices
		got = append(got, row.String())
	}
	require.Equal(t, []string{"[0, 1, 2]\n", "[3, 4, 5]\n", "[6, 7, 8]\n"}, got)
}

// TestEachCol walks logical columns left to right.
func TestEachCol(t *testing.T) {
	m := grid3(t)

	var got []string
	for v := range m.EachCol() {
		col, ok := v.AsMatrix()
		require.True(t, ok)
		require.Equal(t, 3, col.Rows()) // columns come back as 3x1
		require.Equal(t, 1, col.Cols())
		got = append(got, col.String())
	}
	require.Equal(t, []string{"[0]\n[3]\n[6]\n", "[1]\n[4]\n[7]\n", "[2]\n[5]\n[8]\n"}, got)
}

// TestEachRowScalarDegeneracy: single-element lines yield scalars, matching
// the indexed-read convention.
func TestEachRowScalarDegeneracy(t *testing.T) {
	m, err := matrix.New(3, 1, matrix.WithValues(1, 2, 3))
	require.NoError(t, err)

	var got []float64
	for v := range m.EachRow() {
		s, ok := v.AsScalar() // each 1-wide row is a bare scalar
		require.True(t, ok)
		got = append(got, s)
	}
	require.Equal(t, []float64{1, 2, 3}, got)
}

// TestEachRowOnTransposedView iterates the logical rows of the view.
func TestEachRowOnTransposedView(t *testing.T) {
	m, err := matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	mt := m.Transpose() // logically 3x2

	var count int
	for v := range mt.EachRow() {
		row, ok := v.AsMatrix()
		require.True(t, ok)
		require.Equal(t, 2, row.Cols()) // rows of the view are 2 wide
		count++
	}
	require.Equal(t, 3, count)
}

// TestEachRowEarlyBreak: stopping the range loop stops the iterator.
func TestEachRowEarlyBreak(t *testing.T) {
	m := grid3(t)

	var count int
	for range m.EachRow() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

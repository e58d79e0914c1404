// Package matrix_test contains unit tests for elementwise arithmetic, the
// unary operators and the matrix product.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestElementwiseMatrixMatrix checks Add/Sub/Mul/Div over equal shapes.
func TestElementwiseMatrixMatrix(t *testing.T) {
	a, err := matrix.New(2, 2, matrix.WithValues(1, 2, 3, 4))
	require.NoError(t, err)
	b, err := matrix.New(2, 2, matrix.WithValues(5, 6, 7, 8))
	require.NoError(t, err)

	sum, err := matrix.Add(matrix.Ref(a), matrix.Ref(b))
	require.NoError(t, err)
	require.Equal(t, "[6, 8]\n[10, 12]\n", sum.String())

	diff, err := matrix.Sub(matrix.Ref(b), matrix.Ref(a))
	require.NoError(t, err)
	require.Equal(t, "[4, 4]\n[4, 4]\n", diff.String())

	prod, err := matrix.Mul(matrix.Ref(a), matrix.Ref(b)) // Hadamard, not MatMul
	require.NoError(t, err)
	require.Equal(t, "[5, 12]\n[21, 32]\n", prod.String())

	quot, err := matrix.Div(matrix.Ref(b), matrix.Ref(a))
	require.NoError(t, err)
	require.Equal(t, "[5, 3]\n[2.3333333333333335, 2]\n", quot.String())
}

// TestElementwiseShapeMismatch: elementwise ops never broadcast across
// differing logical shapes.
func TestElementwiseShapeMismatch(t *testing.T) {
	a, err := matrix.New(2, 3)
	require.NoError(t, err)
	b, err := matrix.New(3, 2)
	require.NoError(t, err)

	_, err = matrix.Add(matrix.Ref(a), matrix.Ref(b))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestScalarBroadcastArithmetic: Matrix↔scalar in both orders.
func TestScalarBroadcastArithmetic(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithValues(1, 2, 3, 4))
	require.NoError(t, err)

	out, err := matrix.Add(matrix.Ref(m), matrix.Scalar(10))
	require.NoError(t, err)
	require.Equal(t, "[11, 12]\n[13, 14]\n", out.String())

	out, err = matrix.Sub(matrix.Scalar(10), matrix.Ref(m)) // scalar on the left
	require.NoError(t, err)
	require.Equal(t, "[9, 8]\n[7, 6]\n", out.String())

	out, err = matrix.Div(matrix.Ref(m), matrix.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, "[0.5, 1]\n[1.5, 2]\n", out.String())
}

// TestScalarBroadcastPreservesOrientation: broadcasting against a transposed
// view yields a result with the same logical view.
func TestScalarBroadcastPreservesOrientation(t *testing.T) {
	m, err := matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6), matrix.WithTransposed())
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows()) // logical 3x2
	require.Equal(t, 2, m.Cols())

	out, err := matrix.Mul(matrix.Ref(m), matrix.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows()) // orientation preserved
	require.Equal(t, 2, out.Cols())
	require.True(t, out.Transposed())
	require.Equal(t, "[2, 8]\n[4, 10]\n[6, 12]\n", out.String())
}

// TestMatrixMatrixResultUntransposed: combining a transposed and an
// untransposed operand pairs logical positions and yields a plain result.
func TestMatrixMatrixResultUntransposed(t *testing.T) {
	a, err := matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	// Logically 2x3 as well, but stored column-first.
	b, err := matrix.New(3, 2, matrix.WithValues(10, 40, 20, 50, 30, 60), matrix.WithTransposed())
	require.NoError(t, err)

	sum, err := matrix.Add(matrix.Ref(a), matrix.Ref(b))
	require.NoError(t, err)
	require.False(t, sum.Transposed())
	require.Equal(t, "[11, 22, 33]\n[44, 55, 66]\n", sum.String())
}

// TestDivByZero covers all zero-divisor paths.
func TestDivByZero(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithFill(4))
	require.NoError(t, err)

	_, err = matrix.Div(matrix.Ref(m), matrix.Scalar(0)) // rejected before computing
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	z, err := matrix.New(2, 2, matrix.WithValues(1, 0, 1, 1))
	require.NoError(t, err)
	_, err = matrix.Div(matrix.Ref(m), matrix.Ref(z)) // one zero element suffices
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	one, err := matrix.New(1, 1, matrix.WithFill(4))
	require.NoError(t, err)
	zero, err := matrix.New(1, 1)
	require.NoError(t, err)
	_, err = matrix.Div(matrix.Ref(one), matrix.Ref(zero)) // 1x1 zero matrix too
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

// TestArithmeticUnsupportedCombos mirrors the comparison engine's dispatch.
func TestArithmeticUnsupportedCombos(t *testing.T) {
	_, err := matrix.Add(matrix.Scalar(1), matrix.Scalar(2))
	require.ErrorIs(t, err, matrix.ErrNotImplemented)

	m, err := matrix.New(1, 2)
	require.NoError(t, err)
	_, err = matrix.Mul(matrix.Ref(m), matrix.Sequence(1, 2))
	require.ErrorIs(t, err, matrix.ErrNotImplemented)

	_, err = matrix.Sub(matrix.Value{}, matrix.Ref(m))
	require.ErrorIs(t, err, matrix.ErrInvalidValue)
}

// TestNegAbs: unary operators preserve shape and orientation.
func TestNegAbs(t *testing.T) {
	m, err := matrix.New(2, 2, matrix.WithValues(-1, 2, -3, 0), matrix.WithTransposed())
	require.NoError(t, err)

	neg, err := matrix.Neg(m)
	require.NoError(t, err)
	require.True(t, neg.Transposed())
	require.Equal(t, "[1, 3]\n[-2, -0]\n", neg.String())

	abs, err := matrix.Abs(m)
	require.NoError(t, err)
	require.True(t, abs.Transposed())
	require.Equal(t, "[1, 3]\n[2, 0]\n", abs.String())

	_, err = matrix.Neg(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatMul: the plain chained product.
func TestMatMul(t *testing.T) {
	a, err := matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	b, err := matrix.New(3, 2, matrix.WithValues(7, 8, 9, 10, 11, 12))
	require.NoError(t, err)

	v, err := matrix.MatMul(a, b)
	require.NoError(t, err)
	out, ok := v.AsMatrix()
	require.True(t, ok)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())
	require.Equal(t, "[58, 64]\n[139, 154]\n", out.String())
}

// TestMatMulShapeMismatch: inner dimensions must chain.
func TestMatMulShapeMismatch(t *testing.T) {
	a, err := matrix.New(2, 3)
	require.NoError(t, err)
	b, err := matrix.New(2, 3)
	require.NoError(t, err)

	_, err = matrix.MatMul(a, b) // 2x3 by 2x3 does not chain
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestMatMulScalarDegeneracy: a (1,1) product collapses to a bare scalar.
func TestMatMulScalarDegeneracy(t *testing.T) {
	row, err := matrix.New(1, 3, matrix.WithValues(1, 2, 3))
	require.NoError(t, err)
	col, err := matrix.New(3, 1, matrix.WithValues(4, 5, 6))
	require.NoError(t, err)

	v, err := matrix.MatMul(row, col)
	require.NoError(t, err)
	dot, ok := v.AsScalar()
	require.True(t, ok) // scalar, not a 1x1 Matrix
	require.Equal(t, 32.0, dot)
}

// TestMatMulTransposedOperand: logical shapes drive chaining, so a transposed
// view multiplies like its logical self.
func TestMatMulTransposedOperand(t *testing.T) {
	a, err := matrix.New(2, 3, matrix.WithValues(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	at := a.Transpose() // logically 3x2

	v, err := matrix.MatMul(at, a) // (3x2)·(2x3) = 3x3
	require.NoError(t, err)
	out, ok := v.AsMatrix()
	require.True(t, ok)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, 3, out.Cols())
	require.Equal(t, "[17, 22, 27]\n[22, 29, 36]\n[27, 36, 45]\n", out.String())
}

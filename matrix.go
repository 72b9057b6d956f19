package vecmath

import (
	"github.com/hupe1980/vecmath/internal/assert"
	"github.com/hupe1980/vecmath/internal/simd"
)

// Matrix is a 4x4 float32 matrix in column-major order.
type Matrix [16]float32

// IdentityMatrix returns the 4x4 identity.
func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float32 {
	return m[c*4+r]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float32) {
	m[c*4+r] = v
}

func raw(m *Matrix) *[16]float32 { return (*[16]float32)(m) }

// AddMatrixScalar computes dst[i] = m[i] + scalar.
func AddMatrixScalar(m *Matrix, scalar float32, dst *Matrix) {
	assert.NotNil(m, "m")
	assert.NotNil(dst, "dst")
	simd.AddMatrixScalar(raw(m), scalar, raw(dst))
}

// AddMatrix computes dst = m1 + m2.
func AddMatrix(m1, m2, dst *Matrix) {
	assert.NotNil(m1, "m1")
	assert.NotNil(m2, "m2")
	assert.NotNil(dst, "dst")
	simd.AddMatrix(raw(m1), raw(m2), raw(dst))
}

// SubtractMatrix computes dst = m1 - m2.
func SubtractMatrix(m1, m2, dst *Matrix) {
	assert.NotNil(m1, "m1")
	assert.NotNil(m2, "m2")
	assert.NotNil(dst, "dst")
	simd.SubtractMatrix(raw(m1), raw(m2), raw(dst))
}

// MultiplyMatrixScalar computes dst[i] = m[i] * scalar.
func MultiplyMatrixScalar(m *Matrix, scalar float32, dst *Matrix) {
	assert.NotNil(m, "m")
	assert.NotNil(dst, "dst")
	simd.MultiplyMatrixScalar(raw(m), scalar, raw(dst))
}

// MultiplyMatrix computes the product dst = m1 * m2. Applied to a vector,
// the result transforms by m2 first and then by m1.
func MultiplyMatrix(m1, m2, dst *Matrix) {
	assert.NotNil(m1, "m1")
	assert.NotNil(m2, "m2")
	assert.NotNil(dst, "dst")
	simd.MultiplyMatrix(raw(m1), raw(m2), raw(dst))
}

// NegateMatrix computes dst = -m.
func NegateMatrix(m, dst *Matrix) {
	assert.NotNil(m, "m")
	assert.NotNil(dst, "dst")
	simd.NegateMatrix(raw(m), raw(dst))
}

// TransposeMatrix writes the transpose of m to dst.
func TransposeMatrix(m, dst *Matrix) {
	assert.NotNil(m, "m")
	assert.NotNil(dst, "dst")
	simd.TransposeMatrix(raw(m), raw(dst))
}

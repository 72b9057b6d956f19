//go:build arm64 && !noasm

package simd

// neonKernel processes four floats per 128-bit V register.
var neonKernel = &Kernel{
	AddMatrixScalar:      addMatrixScalarNEON,
	AddMatrix:            addMatrixNEON,
	SubtractMatrix:       subtractMatrixNEON,
	MultiplyMatrixScalar: multiplyMatrixScalarNEON,
	MultiplyMatrix:       multiplyMatrixNEON,
	NegateMatrix:         negateMatrixNEON,
	TransposeMatrix:      transposeMatrixNEON,
	TransformVec4XYZW:    transformVec4XYZWNEON,
	TransformVec4:        transformVec4NEON,
	CrossVec3:            crossVec3NEON,
}

func transformVec4XYZWNEON(m *[16]float32, x, y, z, w float32, dst *[4]float32) {
	v := [4]float32{x, y, z, w}
	transformVec4NEON(m, &v, dst)
}

//go:build (amd64 || 386) && !noasm

package simd

// sseKernel processes four floats per XMM register. The same assembly
// routines exist for amd64 (SIMD64 tier) and 386 (SIMD32 tier).
var sseKernel = &Kernel{
	AddMatrixScalar:      addMatrixScalarSSE,
	AddMatrix:            addMatrixSSE,
	SubtractMatrix:       subtractMatrixSSE,
	MultiplyMatrixScalar: multiplyMatrixScalarSSE,
	MultiplyMatrix:       multiplyMatrixSSE,
	NegateMatrix:         negateMatrixSSE,
	TransposeMatrix:      transposeMatrixSSE,
	TransformVec4XYZW:    transformVec4XYZWSSE,
	TransformVec4:        transformVec4SSE,
	CrossVec3:            crossVec3SSE,
}

func transformVec4XYZWSSE(m *[16]float32, x, y, z, w float32, dst *[4]float32) {
	v := [4]float32{x, y, z, w}
	transformVec4SSE(m, &v, dst)
}

//go:build (amd64 || 386) && !noasm

package simd

// Apart from multiplyMatrixSSE, every routine loads all of its inputs
// before the first store, so dst may alias any input.

//go:noescape
func addMatrixScalarSSE(m *[16]float32, scalar float32, dst *[16]float32)

//go:noescape
func addMatrixSSE(m1, m2, dst *[16]float32)

//go:noescape
func subtractMatrixSSE(m1, m2, dst *[16]float32)

//go:noescape
func multiplyMatrixScalarSSE(m *[16]float32, scalar float32, dst *[16]float32)

// multiplyMatrixSSE keeps m1 in registers and writes column c of dst only
// after reading column c of m2, so dst may alias either input.
//
//go:noescape
func multiplyMatrixSSE(m1, m2, dst *[16]float32)

//go:noescape
func negateMatrixSSE(m, dst *[16]float32)

//go:noescape
func transposeMatrixSSE(m, dst *[16]float32)

//go:noescape
func transformVec4SSE(m *[16]float32, v, dst *[4]float32)

//go:noescape
func crossVec3SSE(v1, v2, dst *[3]float32)

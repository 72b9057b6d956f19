//go:build arm64 && !noasm

package simd

// All NEON routines load every input into registers before the first
// store, so dst may alias any input.

//go:noescape
func addMatrixScalarNEON(m *[16]float32, scalar float32, dst *[16]float32)

//go:noescape
func addMatrixNEON(m1, m2, dst *[16]float32)

//go:noescape
func subtractMatrixNEON(m1, m2, dst *[16]float32)

//go:noescape
func multiplyMatrixScalarNEON(m *[16]float32, scalar float32, dst *[16]float32)

//go:noescape
func multiplyMatrixNEON(m1, m2, dst *[16]float32)

//go:noescape
func negateMatrixNEON(m, dst *[16]float32)

//go:noescape
func transposeMatrixNEON(m, dst *[16]float32)

//go:noescape
func transformVec4NEON(m *[16]float32, v, dst *[4]float32)

//go:noescape
func crossVec3NEON(v1, v2, dst *[3]float32)

// Package vecmath provides 4x4 matrix and small-vector kernels with
// SIMD acceleration, plus mesh normal generation on top of them.
//
// # Layout
//
// A Matrix is 16 float32 values in column-major order: element (row r,
// column c) lives at index c*4+r. Translation sits in elements 12, 13 and 14.
// Vec3 and Vec4 are plain arrays, so callers own all storage and no
// operation allocates.
//
// # Backends
//
// Every matrix and vector operation is routed through one kernel table that
// is resolved once at package initialization:
//
//  1. SIMD64: compiled in for amd64 (SSE) and arm64 (NEON).
//  2. SIMD32: 386 builds. Guaranteed with GO386=sse2, otherwise probed once.
//  3. Scalar: pure Go, used everywhere else and with -tags noasm.
//
// ActiveTier, IsSIMD32Enabled and IsSIMD64Enabled report the outcome.
//
// # Aliasing
//
// dst may be the same array as any input of the same type. In-place forms
// such as MultiplyMatrix(m, m, m) are valid on every backend.
//
// # Degenerate input
//
// Normalize, TriangleNormal and FlatVertexNormal do not guard against zero
// lengths, degenerate triangles or unreferenced vertices; those produce
// Inf or NaN components. Mesh.ComputeNormals is the checked path:
//
//	mesh := vecmath.NewMesh(vertices, indices)
//	if err := mesh.ComputeNormals(ctx); err != nil {
//		return err
//	}
//
// Build with -tags vecmath_debug to turn nil-pointer and buffer-length
// preconditions of the raw functions into panics.
package vecmath

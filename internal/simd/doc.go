// Package simd provides the matrix and vector kernels behind vecmath.
//
// # Tiers
//
//   - SIMD64: SSE on amd64, NEON on arm64. Guaranteed by the target.
//   - SIMD32: SSE on 386. Guaranteed with GO386=sse2, otherwise probed
//     once at run time with golang.org/x/sys/cpu.
//   - Scalar: pure Go, every target.
//
// The kernel table is resolved once at package init, in that priority
// order. Build with -tags noasm to force the scalar kernel.
//
// # Layout
//
// Matrices are 16 contiguous float32 values in column-major order.
// Every kernel uses the same layout and accepts dst aliasing any input.
package simd

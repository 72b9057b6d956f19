//go:build 386 && 386.sse2 && !noasm

package simd

// GO386=sse2 targets guarantee SSE2.
const simd32Static = true

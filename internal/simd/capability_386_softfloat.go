//go:build 386 && !386.sse2 && !noasm

package simd

const simd32Static = false

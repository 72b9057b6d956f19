//go:build amd64 && !noasm

package simd

// SSE and SSE2 are part of the x86-64 baseline, so the SIMD64 tier needs no
// probe on amd64. There is no SIMD32 kernel for 64-bit targets.
const (
	simd64Static   = true
	simd32Static   = false
	simd32Optional = false
)

var (
	simd64Impl = withTier(sseKernel, SIMD64)
	simd32Impl *Kernel
)

func probeSIMD32() bool { return false }

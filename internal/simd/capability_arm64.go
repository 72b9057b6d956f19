//go:build arm64 && !noasm

package simd

// ASIMD (NEON) is mandatory on AArch64, so the SIMD64 tier needs no probe.
const (
	simd64Static   = true
	simd32Static   = false
	simd32Optional = false
)

var (
	simd64Impl = withTier(neonKernel, SIMD64)
	simd32Impl *Kernel
)

func probeSIMD32() bool { return false }

//go:build noasm || !(amd64 || arm64 || 386)

package simd

// No accelerated kernel is compiled in: both tiers report false without
// probing and every call runs the scalar kernel.
const (
	simd64Static   = false
	simd32Static   = false
	simd32Optional = false
)

var (
	simd64Impl *Kernel
	simd32Impl *Kernel
)

func probeSIMD32() bool { return false }

//go:build 386 && !noasm

package simd

import "golang.org/x/sys/cpu"

// On 386 the SSE kernel is the SIMD32 tier. A GO386=softfloat build may
// run on hardware without SSE2, so unless the target guarantees it the
// tier is probed once at run time.
const (
	simd64Static   = false
	simd32Optional = !simd32Static
)

var (
	simd64Impl *Kernel
	simd32Impl = withTier(sseKernel, SIMD32)
)

func probeSIMD32() bool {
	return cpu.X86.HasSSE2
}

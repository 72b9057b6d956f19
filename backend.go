package vecmath

import "github.com/hupe1980/vecmath/internal/simd"

// Tier is a category of hardware acceleration.
type Tier = simd.Tier

const (
	// Scalar is the portable pure-Go kernel.
	Scalar = simd.Scalar
	// SIMD32 is the kernel for 32-bit targets with optional vector units.
	SIMD32 = simd.SIMD32
	// SIMD64 is the kernel for 64-bit targets with mandatory vector units.
	SIMD64 = simd.SIMD64
)

// ActiveTier returns the tier of the kernel backing all operations.
// The result is fixed for the lifetime of the process.
func ActiveTier() Tier {
	return simd.ActiveTier()
}

// IsSIMD32Enabled reports whether the SIMD32 tier is usable. On targets
// where availability cannot be known at build time the CPU is probed on
// the first call and the answer is cached.
func IsSIMD32Enabled() bool {
	return simd.IsSIMD32Enabled()
}

// IsSIMD64Enabled reports whether the SIMD64 tier was compiled in.
func IsSIMD64Enabled() bool {
	return simd.IsSIMD64Enabled()
}

// ParseTier parses the name printed by Tier.String.
func ParseTier(s string) (Tier, bool) {
	return simd.ParseTier(s)
}

package simd

import (
	"strings"
	"sync"
)

// Tier is a class of SIMD acceleration with its own build-time availability.
type Tier uint8

const (
	// Scalar is the portable pure Go kernel.
	Scalar Tier = iota
	// SIMD32 is the vector unit of a 32-bit target (SSE on 386).
	SIMD32
	// SIMD64 is the vector unit of a 64-bit target (SSE on amd64, NEON on arm64).
	SIMD64
)

// String returns the string representation of a Tier.
func (t Tier) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case SIMD32:
		return "simd32"
	case SIMD64:
		return "simd64"
	default:
		return "unknown"
	}
}

// ParseTier parses a string into a Tier value.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "simd32":
		return SIMD32, true
	case "simd64":
		return SIMD64, true
	default:
		return Scalar, false
	}
}

// Build facts, set by the platform files:
//
//	simd64Static   - the target guarantees the SIMD64 tier.
//	simd32Static   - the target guarantees the SIMD32 tier.
//	simd32Optional - the SIMD32 kernel is compiled in but the hardware must be probed.
//	probeSIMD32    - the run-time probe for the optional SIMD32 tier.
//
// Platform files declare these as constants or package vars, never mutated
// after package initialization.

// simd32Probe memoizes the optional SIMD32 probe for the process lifetime.
// The first caller runs the probe; concurrent first callers block until it
// finishes and all observe the same value.
var simd32Probe = newLazyCapability(probeSIMD32)

// newLazyCapability wraps probe so it runs at most once.
// A panicking probe counts as "not available".
func newLazyCapability(probe func() bool) func() bool {
	return sync.OnceValue(func() (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return probe()
	})
}

// IsSIMD32Enabled reports whether the SIMD32 kernel can run on this process.
func IsSIMD32Enabled() bool {
	switch {
	case simd32Static:
		return true
	case simd32Optional:
		return simd32Probe()
	default:
		return false
	}
}

// IsSIMD64Enabled reports whether the SIMD64 kernel can run on this process.
// The tier is never probed: it is either guaranteed by the target or absent.
func IsSIMD64Enabled() bool {
	return simd64Static
}

// selectTier applies the dispatch priority. It is evaluated once, when the
// kernel table is resolved at package init.
func selectTier() Tier {
	switch {
	case simd64Static:
		return SIMD64
	case simd32Static:
		return SIMD32
	case simd32Optional && simd32Probe():
		return SIMD32
	default:
		return Scalar
	}
}

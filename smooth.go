package vecmath

import "github.com/hupe1980/vecmath/internal/assert"

// Smooth moves *x toward target. After elapsed time has passed, the
// remaining distance shrinks by the factor response/(elapsed+response), so
// a larger response gives a slower approach. Nothing happens when elapsed
// is not positive.
func Smooth(x *float32, target, elapsed, response float32) {
	assert.NotNil(x, "x")
	if elapsed > 0 {
		*x += (target - *x) * elapsed / (elapsed + response)
	}
}

// SmoothAsymmetric is like Smooth but uses rise while *x is below target and
// fall while it is at or above target.
func SmoothAsymmetric(x *float32, target, elapsed, rise, fall float32) {
	assert.NotNil(x, "x")
	if elapsed > 0 {
		delta := target - *x
		response := fall
		if delta > 0 {
			response = rise
		}
		*x += delta * elapsed / (elapsed + response)
	}
}

package vecmath

import (
	"math"

	"github.com/hupe1980/vecmath/internal/assert"
	"github.com/hupe1980/vecmath/internal/simd"
)

// Vec3 is a 3-component float32 vector.
type Vec3 [3]float32

// Vec4 is a 4-component float32 vector.
type Vec4 [4]float32

// TransformVec4XYZW computes dst = m * (x, y, z, w).
func TransformVec4XYZW(m *Matrix, x, y, z, w float32, dst *Vec4) {
	assert.NotNil(m, "m")
	assert.NotNil(dst, "dst")
	simd.TransformVec4XYZW(raw(m), x, y, z, w, (*[4]float32)(dst))
}

// TransformVec4 computes dst = m * v.
func TransformVec4(m *Matrix, v, dst *Vec4) {
	assert.NotNil(m, "m")
	assert.NotNil(v, "v")
	assert.NotNil(dst, "dst")
	simd.TransformVec4(raw(m), (*[4]float32)(v), (*[4]float32)(dst))
}

// CrossVec3 computes dst = v1 x v2.
func CrossVec3(v1, v2, dst *Vec3) {
	assert.NotNil(v1, "v1")
	assert.NotNil(v2, "v2")
	assert.NotNil(dst, "dst")
	simd.CrossVec3((*[3]float32)(v1), (*[3]float32)(v2), (*[3]float32)(dst))
}

// Dot3 returns the dot product of a and b.
func Dot3(a, b *Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length returns the Euclidean length of v.
func Length(v *Vec3) float32 {
	return float32(math.Sqrt(float64(Dot3(v, v))))
}

// Normalize scales v to unit length in place.
//
// A zero vector yields Inf or NaN components.
func Normalize(v *Vec3) {
	d := 1 / Length(v)
	v[0] *= d
	v[1] *= d
	v[2] *= d
}

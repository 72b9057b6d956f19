package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Matrix returns a 4x4 matrix with values in range [-scale, scale).
func (r *RNG) Matrix(scale float32) [16]float32 {
	var m [16]float32
	r.FillUniformRange(m[:], -scale, scale)
	return m
}

// Matrices returns num random matrices with values in range [-scale, scale).
func (r *RNG) Matrices(num int, scale float32) [][16]float32 {
	out := make([][16]float32, num)
	for i := range out {
		out[i] = r.Matrix(scale)
	}
	return out
}

// Vec4 returns a 4-component vector with values in range [-scale, scale).
func (r *RNG) Vec4(scale float32) [4]float32 {
	var v [4]float32
	r.FillUniformRange(v[:], -scale, scale)
	return v
}

// Vec3 returns a 3-component vector with values in range [-scale, scale).
func (r *RNG) Vec3(scale float32) [3]float32 {
	var v [3]float32
	r.FillUniformRange(v[:], -scale, scale)
	return v
}

// UnitVec3 returns a random direction on the unit sphere.
// Uses a Gaussian distribution for a uniform distribution on the sphere.
func (r *RNG) UnitVec3() [3]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		x, y, z := r.rand.NormFloat64(), r.rand.NormFloat64(), r.rand.NormFloat64()
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm < 1e-6 {
			continue
		}
		return [3]float32{float32(x / norm), float32(y / norm), float32(z / norm)}
	}
}

// GridMesh generates a (cols+1) x (rows+1) vertex grid in the XY plane,
// split into two counter-clockwise triangles per cell. Each vertex gets a
// Z offset in range [-jitter, jitter). Every vertex is referenced by at
// least one triangle.
func (r *RNG) GridMesh(cols, rows int, jitter float32) (vertices []float32, indices []uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stride := cols + 1
	vertices = make([]float32, 0, (cols+1)*(rows+1)*3)
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			z := float32(0)
			if jitter > 0 {
				z = (r.rand.Float32()*2 - 1) * jitter
			}
			vertices = append(vertices, float32(x), float32(y), z)
		}
	}

	indices = make([]uint16, 0, cols*rows*6)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i0 := uint16(y*stride + x)
			i1 := i0 + 1
			i2 := i0 + uint16(stride)
			i3 := i2 + 1
			indices = append(indices, i0, i1, i2, i1, i3, i2)
		}
	}

	return vertices, indices
}

// Tolerance returns an absolute delta for comparing against want with
// relative tolerance rel. Values with magnitude below 1 use rel directly.
func Tolerance(want float32, rel float64) float64 {
	return rel * math.Max(1, math.Abs(float64(want)))
}

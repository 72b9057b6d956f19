package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func randMatrix(rng *testutil.RNG, scale float32) vecmath.Matrix {
	return vecmath.Matrix(rng.Matrix(scale))
}

func TestIdentityMatrix(t *testing.T) {
	id := vecmath.IdentityMatrix()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, id.At(r, c), "(%d,%d)", r, c)
		}
	}
}

func TestMatrixAtSetColumnMajor(t *testing.T) {
	var m vecmath.Matrix
	m.Set(1, 3, 7)
	assert.Equal(t, float32(7), m[13])
	assert.Equal(t, float32(7), m.At(1, 3))
}

func TestMultiplyByIdentity(t *testing.T) {
	rng := testutil.NewRNG(1)
	id := vecmath.IdentityMatrix()

	for range 20 {
		m := randMatrix(rng, 100)
		var got vecmath.Matrix

		vecmath.MultiplyMatrix(&m, &id, &got)
		assert.Equal(t, m, got)

		vecmath.MultiplyMatrix(&id, &m, &got)
		assert.Equal(t, m, got)
	}
}

func TestMatrixInPlace(t *testing.T) {
	rng := testutil.NewRNG(2)
	m1 := randMatrix(rng, 4)
	m2 := randMatrix(rng, 4)

	var want vecmath.Matrix
	vecmath.MultiplyMatrix(&m1, &m2, &want)

	got := m1
	vecmath.MultiplyMatrix(&got, &m2, &got)
	for i := range want {
		assert.InDelta(t, want[i], got[i], testutil.Tolerance(want[i], 1e-5))
	}

	vecmath.SubtractMatrix(&m1, &m1, &got)
	assert.Equal(t, vecmath.Matrix{}, got)
}

func TestAddSubtractRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	m1 := randMatrix(rng, 1)
	m2 := randMatrix(rng, 1)

	var sum, back vecmath.Matrix
	vecmath.AddMatrix(&m1, &m2, &sum)
	vecmath.SubtractMatrix(&sum, &m2, &back)
	for i := range m1 {
		assert.InDelta(t, m1[i], back[i], 1e-6)
	}
}

func TestScalarOps(t *testing.T) {
	m := vecmath.IdentityMatrix()
	var got vecmath.Matrix

	vecmath.AddMatrixScalar(&m, 1, &got)
	assert.Equal(t, vecmath.Matrix{2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2}, got)

	vecmath.MultiplyMatrixScalar(&got, 0.5, &got)
	assert.Equal(t, vecmath.Matrix{1, .5, .5, .5, .5, 1, .5, .5, .5, .5, 1, .5, .5, .5, .5, 1}, got)

	vecmath.NegateMatrix(&got, &got)
	assert.Equal(t, float32(-1), got[0])
	assert.Equal(t, float32(-.5), got[1])
}

func TestTransposeTwice(t *testing.T) {
	rng := testutil.NewRNG(4)
	m := randMatrix(rng, 1000)

	var tr vecmath.Matrix
	vecmath.TransposeMatrix(&m, &tr)
	assert.Equal(t, m.At(1, 2), tr.At(2, 1))

	vecmath.TransposeMatrix(&tr, &tr)
	assert.Equal(t, m, tr)
}

func TestBackendQueries(t *testing.T) {
	tier := vecmath.ActiveTier()
	require.Contains(t, []vecmath.Tier{vecmath.Scalar, vecmath.SIMD32, vecmath.SIMD64}, tier)

	switch {
	case vecmath.IsSIMD64Enabled():
		assert.Equal(t, vecmath.SIMD64, tier)
	case vecmath.IsSIMD32Enabled():
		assert.Equal(t, vecmath.SIMD32, tier)
	default:
		assert.Equal(t, vecmath.Scalar, tier)
	}

	parsed, ok := vecmath.ParseTier(tier.String())
	assert.True(t, ok)
	assert.Equal(t, tier, parsed)
}

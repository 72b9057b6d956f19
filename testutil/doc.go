// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with generators for matrices,
// vectors and meshes, plus tolerance helpers for comparing kernels.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	m := rng.Matrix(10)              // values in [-10, 10)
//	v := rng.Vec4(1)                 // values in [-1, 1)
//	vx, idx := rng.GridMesh(4, 4, 0) // flat 5x5 vertex grid
//
// # Comparing Results
//
//	assert.InDelta(t, want, got, testutil.Tolerance(want, 1e-5))
package testutil

package vecmath_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func triangle() ([]float32, []uint16) {
	return []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint16{0, 1, 2}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		wantErr  error
	}{
		{"valid", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 2}, nil},
		{"nil vertices", nil, []uint32{0, 1, 2}, vecmath.ErrNilBuffer},
		{"nil indices", []float32{0, 0, 0}, nil, vecmath.ErrNilBuffer},
		{"vertex stride", []float32{0, 0, 0, 1}, []uint32{0, 0, 0}, vecmath.ErrVertexStride},
		{"index count", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1}, vecmath.ErrIndexCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := vecmath.NewMesh(tc.vertices, tc.indices).Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, vecmath.ErrInvalidMesh)
		})
	}
}

func TestMeshValidateIndexOutOfRange(t *testing.T) {
	vertices, _ := triangle()
	mesh := vecmath.NewMesh(vertices, []uint16{0, 1, 2, 2, 1, 7})

	err := mesh.Validate()

	var oor *vecmath.ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 5, oor.Position)
	assert.Equal(t, uint32(7), oor.Index)
	assert.Equal(t, 3, oor.Vertices)
	assert.ErrorIs(t, err, vecmath.ErrInvalidMesh)
}

func TestMeshValidateUnreferencedVertex(t *testing.T) {
	vertices := []float32{0, 0, 0, 9, 9, 9, 1, 0, 0, 0, 1, 0, 8, 8, 8}
	mesh := vecmath.NewMesh(vertices, []uint16{0, 2, 3})

	err := mesh.Validate()

	var unref *vecmath.ErrUnreferencedVertex
	require.ErrorAs(t, err, &unref)
	assert.Equal(t, 1, unref.Vertex)
	assert.Equal(t, 2, unref.Count)
	assert.Contains(t, err.Error(), "vertex 1 and 1 others")
}

func TestMeshValidateNormalsLength(t *testing.T) {
	vertices, indices := triangle()
	mesh := vecmath.NewMesh(vertices, indices)
	mesh.Normals = mesh.Normals[:3]

	assert.ErrorIs(t, mesh.Validate(), vecmath.ErrNormalsLength)
}

func TestMeshReferencedVertices(t *testing.T) {
	rng := testutil.NewRNG(31)
	vertices, indices := rng.GridMesh(4, 3, 0)
	mesh := vecmath.NewMesh(vertices, indices)

	used := mesh.ReferencedVertices()
	assert.Equal(t, uint64(mesh.VertexCount()), used.GetCardinality())
	assert.Equal(t, 20, mesh.VertexCount())
	assert.Equal(t, 24, mesh.TriangleCount())
}

func TestMeshComputeNormals(t *testing.T) {
	rng := testutil.NewRNG(32)
	vertices, indices := rng.GridMesh(5, 5, 0)
	mesh := vecmath.NewMesh(vertices, indices)

	// Stale contents must not leak into the result.
	for i := range mesh.Normals {
		mesh.Normals[i] = 42
	}

	require.NoError(t, mesh.ComputeNormals(context.Background()))
	for v := 0; v < mesh.VertexCount(); v++ {
		assert.InDeltaSlice(t, []float32{0, 0, 1}, mesh.Normals[v*3:v*3+3], 1e-5)
	}

	// Repeated runs give the same answer.
	first := append([]float32(nil), mesh.Normals...)
	require.NoError(t, mesh.ComputeNormals(context.Background()))
	assert.Equal(t, first, mesh.Normals)
}

func TestMeshComputeNormalsRejectsInvalid(t *testing.T) {
	vertices, _ := triangle()
	mesh := vecmath.NewMesh(vertices, []uint16{0, 1, 3})
	mesh.Normals[0] = 42

	err := mesh.ComputeNormals(context.Background())

	var oor *vecmath.ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oor)
	assert.Equal(t, float32(42), mesh.Normals[0], "normals untouched on error")
}

func TestMeshComputeNormalsWithoutValidation(t *testing.T) {
	vertices := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 5, 5, 5}
	mesh := vecmath.NewMesh(vertices, []uint16{0, 1, 2}, vecmath.WithValidation(false))

	require.NoError(t, mesh.ComputeNormals(context.Background()))
	assert.InDeltaSlice(t, []float32{0, 0, 1}, mesh.Normals[0:3], 1e-6)
	assert.True(t, math.IsNaN(float64(mesh.Normals[9])), "unreferenced vertex is NaN")
}

func TestMeshComputeNormalsCanceled(t *testing.T) {
	vertices, indices := triangle()
	mesh := vecmath.NewMesh(vertices, indices)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, mesh.ComputeNormals(ctx), context.Canceled)
}

func TestMeshLoggingAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := vecmath.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &vecmath.BasicMetricsCollector{}

	vertices, indices := triangle()
	mesh := vecmath.NewMesh(vertices, indices,
		vecmath.WithLogger(logger),
		vecmath.WithMetricsCollector(metrics),
	)
	require.NoError(t, mesh.ComputeNormals(context.Background()))

	bad := vecmath.NewMesh(vertices, []uint16{0, 1},
		vecmath.WithLogger(logger),
		vecmath.WithMetricsCollector(metrics),
	)
	err := bad.ComputeNormals(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, vecmath.ErrIndexCount))

	out := buf.String()
	assert.Contains(t, out, "normals computed")
	assert.Contains(t, out, "mesh validation failed")
	assert.Contains(t, out, "normal computation failed")
	assert.Contains(t, out, "tier="+vecmath.ActiveTier().String())

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ValidateCount)
	assert.Equal(t, int64(1), stats.ValidateErrors)
	assert.Equal(t, int64(2), stats.NormalsCount)
	assert.Equal(t, int64(1), stats.NormalsErrors)
	assert.Equal(t, int64(3), stats.NormalsVertices)
	assert.Equal(t, int64(1), stats.NormalsTriangles)
}

func TestMeshTransform(t *testing.T) {
	vertices, indices := triangle()
	mesh := vecmath.NewMesh(vertices, indices)
	require.NoError(t, mesh.ComputeNormals(context.Background()))

	// Rotate 90 degrees about X and translate along Z.
	rot := vecmath.Matrix{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, -1, 0, 0,
		0, 0, 3, 1,
	}
	mesh.Transform(&rot)

	assert.InDeltaSlice(t, []float32{0, 0, 3, 1, 0, 3, 0, 0, 4}, mesh.Vertices, 1e-6)
	for v := 0; v < 3; v++ {
		assert.InDeltaSlice(t, []float32{0, -1, 0}, mesh.Normals[v*3:v*3+3], 1e-6)
	}

	// Transformed normals agree with normals recomputed from scratch.
	moved := append([]float32(nil), mesh.Normals...)
	require.NoError(t, mesh.ComputeNormals(context.Background()))
	assert.InDeltaSlice(t, moved, mesh.Normals, 1e-6)
}

func TestMeshLiteralUsesDefaults(t *testing.T) {
	vertices, indices := triangle()
	mesh := &vecmath.Mesh[uint16]{
		Vertices: vertices,
		Indices:  indices,
		Normals:  make([]float32, len(vertices)),
	}

	assert.NotPanics(t, func() { assert.NoError(t, mesh.Validate()) })
	assert.NotPanics(t, func() { assert.NoError(t, mesh.ComputeNormals(context.Background())) })
	assert.InDeltaSlice(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}, mesh.Normals, 1e-6)

	bad := &vecmath.Mesh[uint16]{
		Vertices: vertices,
		Indices:  []uint16{0, 1, 3},
		Normals:  make([]float32, len(vertices)),
	}
	var oor *vecmath.ErrIndexOutOfRange
	assert.ErrorAs(t, bad.ComputeNormals(context.Background()), &oor, "validation is on by default")
}

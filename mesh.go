package vecmath

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mesh is an indexed triangle mesh with per-vertex normals.
//
// Vertices holds xyz triples, Indices three entries per triangle and
// Normals one xyz triple per vertex. Unlike the raw FlatVertexNormal, the
// methods on Mesh check their input before touching it. A Mesh built as a
// struct literal uses the defaults of NewMesh without options.
type Mesh[I Index] struct {
	Vertices []float32
	Indices  []I
	Normals  []float32

	opts options
}

// NewMesh creates a mesh over the given buffers and allocates its normals.
// The buffers are used in place, not copied.
func NewMesh[I Index](vertices []float32, indices []I, optFns ...Option) *Mesh[I] {
	return &Mesh[I]{
		Vertices: vertices,
		Indices:  indices,
		Normals:  make([]float32, len(vertices)),
		opts:     applyOptions(optFns),
	}
}

// settings returns the configured options, or the defaults when the mesh
// was not created by NewMesh.
func (m *Mesh[I]) settings() options {
	if m.opts.logger == nil {
		return applyOptions(nil)
	}
	return m.opts
}

// VertexCount returns the number of vertices.
func (m *Mesh[I]) VertexCount() int { return len(m.Vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh[I]) TriangleCount() int { return len(m.Indices) / 3 }

// ReferencedVertices returns the set of vertices used by at least one
// triangle. Indices past the last vertex are included as they are.
func (m *Mesh[I]) ReferencedVertices() *roaring.Bitmap {
	used := roaring.New()
	for _, idx := range m.Indices {
		used.Add(uint32(idx))
	}
	return used
}

// Validate checks that the mesh can produce well-defined flat normals:
// complete vertex triples and triangles, every index in range and every
// vertex referenced. All returned errors wrap ErrInvalidMesh.
func (m *Mesh[I]) Validate() error {
	start := time.Now()
	err := m.validate()
	m.settings().metricsCollector.RecordValidate(time.Since(start), err)
	return err
}

func (m *Mesh[I]) validate() error {
	if m.Vertices == nil || m.Indices == nil {
		return ErrNilBuffer
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%w: got %d floats", ErrVertexStride, len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: got %d indices", ErrIndexCount, len(m.Indices))
	}
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: got %d, want %d", ErrNormalsLength, len(m.Normals), len(m.Vertices))
	}

	n := m.VertexCount()
	for pos, idx := range m.Indices {
		if int(idx) >= n {
			return &ErrIndexOutOfRange{Position: pos, Index: uint32(idx), Vertices: n}
		}
	}

	used := m.ReferencedVertices()
	if used.GetCardinality() < uint64(n) {
		missing := roaring.Flip(used, 0, uint64(n))
		return &ErrUnreferencedVertex{
			Vertex: int(missing.Minimum()),
			Count:  int(missing.GetCardinality()),
		}
	}
	return nil
}

// ComputeNormals overwrites Normals with flat vertex normals.
//
// Unless validation was disabled with WithValidation(false), an invalid
// mesh is rejected before Normals is modified.
func (m *Mesh[I]) ComputeNormals(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := m.settings()
	start := time.Now()
	vertices, triangles := m.VertexCount(), m.TriangleCount()

	if opts.validate {
		err := m.Validate()
		opts.logger.LogValidate(ctx, vertices, triangles, err)
		if err != nil {
			err = fmt.Errorf("compute normals: %w", err)
			opts.logger.LogNormals(ctx, vertices, triangles, time.Since(start), err)
			opts.metricsCollector.RecordNormals(vertices, triangles, time.Since(start), err)
			return err
		}
	} else if len(m.Normals) < len(m.Vertices) {
		m.Normals = make([]float32, len(m.Vertices))
	}

	clear(m.Normals)
	FlatVertexNormal(m.Vertices, m.Indices, m.Normals)

	elapsed := time.Since(start)
	opts.logger.LogNormals(ctx, vertices, triangles, elapsed, nil)
	opts.metricsCollector.RecordNormals(vertices, triangles, elapsed, nil)
	return nil
}

// Transform applies mat to every vertex as a point (w = 1) and to every
// normal as a direction (w = 0), renormalizing the normals afterwards.
// Normals are only exact for rotations, translations and uniform scales;
// call ComputeNormals again after any other transform.
func (m *Mesh[I]) Transform(mat *Matrix) {
	var out Vec4
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		v := m.Vertices[i : i+3 : i+3]
		TransformVec4XYZW(mat, v[0], v[1], v[2], 1, &out)
		v[0], v[1], v[2] = out[0], out[1], out[2]
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		nv := (*Vec3)(m.Normals[i : i+3])
		TransformVec4XYZW(mat, nv[0], nv[1], nv[2], 0, &out)
		nv[0], nv[1], nv[2] = out[0], out[1], out[2]
		if nv[0] != 0 || nv[1] != 0 || nv[2] != 0 {
			Normalize(nv)
		}
	}
}

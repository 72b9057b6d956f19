package vecmath

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh is wrapped by every error returned from Mesh.Validate.
var ErrInvalidMesh = errors.New("invalid mesh")

var (
	// ErrNilBuffer is returned when the vertex or index buffer is nil.
	ErrNilBuffer = fmt.Errorf("%w: nil buffer", ErrInvalidMesh)

	// ErrVertexStride is returned when the vertex buffer is not a whole
	// number of xyz triples.
	ErrVertexStride = fmt.Errorf("%w: vertex buffer length is not a multiple of 3", ErrInvalidMesh)

	// ErrIndexCount is returned when the index buffer is not a whole number
	// of triangles.
	ErrIndexCount = fmt.Errorf("%w: index count is not a multiple of 3", ErrInvalidMesh)

	// ErrNormalsLength is returned when the normal buffer does not match the
	// vertex buffer.
	ErrNormalsLength = fmt.Errorf("%w: normal buffer length differs from vertex buffer", ErrInvalidMesh)
)

// ErrIndexOutOfRange indicates an index that refers past the last vertex.
type ErrIndexOutOfRange struct {
	// Position is the offset within the index buffer.
	Position int
	Index    uint32
	Vertices int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%v: index %d at position %d out of range for %d vertices",
		ErrInvalidMesh, e.Index, e.Position, e.Vertices)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidMesh }

// ErrUnreferencedVertex indicates a vertex that no triangle uses. Its flat
// normal would be undefined.
type ErrUnreferencedVertex struct {
	Vertex int
	// Count is the total number of unreferenced vertices.
	Count int
}

func (e *ErrUnreferencedVertex) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("%v: vertex %d and %d others not referenced by any triangle",
			ErrInvalidMesh, e.Vertex, e.Count-1)
	}
	return fmt.Sprintf("%v: vertex %d not referenced by any triangle", ErrInvalidMesh, e.Vertex)
}

func (e *ErrUnreferencedVertex) Unwrap() error { return ErrInvalidMesh }

package vecmath

import "github.com/hupe1980/vecmath/internal/assert"

// Index is the element type of a triangle index buffer.
type Index interface {
	~uint16 | ~uint32
}

// TriangleNormal writes the unit normal of triangle (v1, v2, v3) to normal.
//
// The normal is (v1-v2) x (v2-v3), so counter-clockwise winding seen from
// the front faces the viewer. A degenerate triangle yields NaN components.
func TriangleNormal(v1, v2, v3, normal *Vec3) {
	d1 := Vec3{v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2]}
	d2 := Vec3{v2[0] - v3[0], v2[1] - v3[1], v2[2] - v3[2]}
	CrossVec3(&d1, &d2, normal)
	Normalize(normal)
}

// FlatVertexNormal computes a normal for every vertex by averaging the
// normals of all triangles that reference it.
//
// vertices holds xyz triples and indices holds three entries per triangle.
// normals must have the same length as vertices and must be zeroed by the
// caller, since face normals are accumulated into it. A vertex that no
// triangle references ends up with NaN components. Out-of-range indices
// panic.
func FlatVertexNormal[I Index](vertices []float32, indices []I, normals []float32) {
	assert.MultipleOf(len(vertices), 3, "vertices")
	assert.MultipleOf(len(indices), 3, "indices")
	assert.MinLen(len(normals), len(vertices), "normals")

	n := len(vertices) / 3
	incidence := make([]uint32, n)

	var face Vec3
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := int(indices[t])*3, int(indices[t+1])*3, int(indices[t+2])*3

		TriangleNormal(
			(*Vec3)(vertices[a:a+3]),
			(*Vec3)(vertices[b:b+3]),
			(*Vec3)(vertices[c:c+3]),
			&face,
		)

		for _, v := range [3]int{a, b, c} {
			incidence[v/3]++
			normals[v] += face[0]
			normals[v+1] += face[1]
			normals[v+2] += face[2]
		}
	}

	for i, count := range incidence {
		nv := (*Vec3)(normals[i*3 : i*3+3])
		av := 1 / float32(count)
		nv[0] *= av
		nv[1] *= av
		nv[2] *= av
		Normalize(nv)
	}
}

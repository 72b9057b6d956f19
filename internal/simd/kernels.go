package simd

// Kernel is one implementation of the full matrix/vector operation set.
//
// All matrices are 16 floats in column-major order: element (row r,
// column c) is at index c*4+r. Every function permits dst to be the same
// array as any of its inputs.
type Kernel struct {
	Tier Tier

	AddMatrixScalar      func(m *[16]float32, scalar float32, dst *[16]float32)
	AddMatrix            func(m1, m2, dst *[16]float32)
	SubtractMatrix       func(m1, m2, dst *[16]float32)
	MultiplyMatrixScalar func(m *[16]float32, scalar float32, dst *[16]float32)
	MultiplyMatrix       func(m1, m2, dst *[16]float32)
	NegateMatrix         func(m, dst *[16]float32)
	TransposeMatrix      func(m, dst *[16]float32)
	TransformVec4XYZW    func(m *[16]float32, x, y, z, w float32, dst *[4]float32)
	TransformVec4        func(m *[16]float32, v, dst *[4]float32)
	CrossVec3            func(v1, v2, dst *[3]float32)
}

// scalarKernel is the reference implementation. Accelerated kernels are
// tested against it.
var scalarKernel = &Kernel{
	Tier:                 Scalar,
	AddMatrixScalar:      addMatrixScalarGeneric,
	AddMatrix:            addMatrixGeneric,
	SubtractMatrix:       subtractMatrixGeneric,
	MultiplyMatrixScalar: multiplyMatrixScalarGeneric,
	MultiplyMatrix:       multiplyMatrixGeneric,
	NegateMatrix:         negateMatrixGeneric,
	TransposeMatrix:      transposeMatrixGeneric,
	TransformVec4XYZW:    transformVec4XYZWGeneric,
	TransformVec4:        transformVec4Generic,
	CrossVec3:            crossVec3Generic,
}

// active is the kernel table resolved at init. It is never reassigned.
var active = scalarKernel

func init() {
	active = resolveKernel()
}

// resolveKernel maps the selected tier to its compiled kernel.
// simd32Impl and simd64Impl are provided by the platform files and are
// nil when the tier is not compiled in.
func resolveKernel() *Kernel {
	switch selectTier() {
	case SIMD64:
		if simd64Impl != nil {
			return simd64Impl
		}
	case SIMD32:
		if simd32Impl != nil {
			return simd32Impl
		}
	}
	return scalarKernel
}

// withTier returns a copy of k labelled with tier t. One assembly kernel
// can back different tiers on different targets.
func withTier(k *Kernel, t Tier) *Kernel {
	c := *k
	c.Tier = t
	return &c
}

// ActiveTier returns the tier of the kernel that backs the package functions.
func ActiveTier() Tier {
	return active.Tier
}

// availableKernels returns every kernel compiled in and usable on this CPU,
// scalar first.
func availableKernels() []*Kernel {
	ks := []*Kernel{scalarKernel}
	if simd32Impl != nil && IsSIMD32Enabled() {
		ks = append(ks, simd32Impl)
	}
	if simd64Impl != nil && IsSIMD64Enabled() {
		ks = append(ks, simd64Impl)
	}
	return ks
}

// ============================================================================
// Public API - dispatch through the resolved kernel table
// ============================================================================

// AddMatrixScalar adds scalar to every element of m.
func AddMatrixScalar(m *[16]float32, scalar float32, dst *[16]float32) {
	active.AddMatrixScalar(m, scalar, dst)
}

// AddMatrix computes dst = m1 + m2.
func AddMatrix(m1, m2, dst *[16]float32) {
	active.AddMatrix(m1, m2, dst)
}

// SubtractMatrix computes dst = m1 - m2.
func SubtractMatrix(m1, m2, dst *[16]float32) {
	active.SubtractMatrix(m1, m2, dst)
}

// MultiplyMatrixScalar multiplies every element of m by scalar.
func MultiplyMatrixScalar(m *[16]float32, scalar float32, dst *[16]float32) {
	active.MultiplyMatrixScalar(m, scalar, dst)
}

// MultiplyMatrix computes the matrix product dst = m1 * m2.
func MultiplyMatrix(m1, m2, dst *[16]float32) {
	active.MultiplyMatrix(m1, m2, dst)
}

// NegateMatrix computes dst = -m.
func NegateMatrix(m, dst *[16]float32) {
	active.NegateMatrix(m, dst)
}

// TransposeMatrix writes the transpose of m to dst.
func TransposeMatrix(m, dst *[16]float32) {
	active.TransposeMatrix(m, dst)
}

// TransformVec4XYZW computes dst = m * (x, y, z, w).
func TransformVec4XYZW(m *[16]float32, x, y, z, w float32, dst *[4]float32) {
	active.TransformVec4XYZW(m, x, y, z, w, dst)
}

// TransformVec4 computes dst = m * v.
func TransformVec4(m *[16]float32, v, dst *[4]float32) {
	active.TransformVec4(m, v, dst)
}

// CrossVec3 computes dst = v1 x v2.
func CrossVec3(v1, v2, dst *[3]float32) {
	active.CrossVec3(v1, v2, dst)
}

// ============================================================================
// Generic implementations (pure Go reference)
// ============================================================================

func addMatrixScalarGeneric(m *[16]float32, scalar float32, dst *[16]float32) {
	for i := range dst {
		dst[i] = m[i] + scalar
	}
}

func addMatrixGeneric(m1, m2, dst *[16]float32) {
	for i := range dst {
		dst[i] = m1[i] + m2[i]
	}
}

func subtractMatrixGeneric(m1, m2, dst *[16]float32) {
	for i := range dst {
		dst[i] = m1[i] - m2[i]
	}
}

func multiplyMatrixScalarGeneric(m *[16]float32, scalar float32, dst *[16]float32) {
	for i := range dst {
		dst[i] = m[i] * scalar
	}
}

func multiplyMatrixGeneric(m1, m2, dst *[16]float32) {
	// Computed into a local so dst may alias m1 or m2.
	var product [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			product[c*4+r] = m1[r]*m2[c*4] + m1[4+r]*m2[c*4+1] + m1[8+r]*m2[c*4+2] + m1[12+r]*m2[c*4+3]
		}
	}
	*dst = product
}

func negateMatrixGeneric(m, dst *[16]float32) {
	for i := range dst {
		dst[i] = -m[i]
	}
}

func transposeMatrixGeneric(m, dst *[16]float32) {
	t := [16]float32{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
	*dst = t
}

func transformVec4XYZWGeneric(m *[16]float32, x, y, z, w float32, dst *[4]float32) {
	dst[0] = x*m[0] + y*m[4] + z*m[8] + w*m[12]
	dst[1] = x*m[1] + y*m[5] + z*m[9] + w*m[13]
	dst[2] = x*m[2] + y*m[6] + z*m[10] + w*m[14]
	dst[3] = x*m[3] + y*m[7] + z*m[11] + w*m[15]
}

func transformVec4Generic(m *[16]float32, v, dst *[4]float32) {
	x, y, z, w := v[0], v[1], v[2], v[3]
	transformVec4XYZWGeneric(m, x, y, z, w, dst)
}

func crossVec3Generic(v1, v2, dst *[3]float32) {
	x := v1[1]*v2[2] - v1[2]*v2[1]
	y := v1[2]*v2[0] - v1[0]*v2[2]
	z := v1[0]*v2[1] - v1[1]*v2[0]
	dst[0], dst[1], dst[2] = x, y, z
}

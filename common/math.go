package common

import (
	"math"
	"unsafe"
)

// Mat4 is a 4x4 matrix stored in column-major order (WebGPU convention).
// Element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func Identity() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// The returned slice shares memory with the input and must not be modified.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}

// Mul returns m * o.
//
// Parameters:
//   - o: right-hand matrix
//
// Returns:
//   - Mat4: the product
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * o[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// MulVec4 transforms the homogeneous vector v by m.
//
// Parameters:
//   - v: the vector (x, y, z, w)
//
// Returns:
//   - [4]float32: m * v
func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}

// Perspective builds a perspective projection for WebGPU clip space (z in [0, 1]).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// ModelMatrix builds a transform from translation, Euler rotation, and per-axis scale.
// Rotations are applied X first, then Y, then Z (the XYZ intrinsic order of most
// scene graphs).
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - Mat4: the model matrix
func ModelMatrix(pos, rot, scale Vec3) Mat4 {
	a, b := math.Cos(rot[0]), math.Sin(rot[0])
	c, d := math.Cos(rot[1]), math.Sin(rot[1])
	e, f := math.Cos(rot[2]), math.Sin(rot[2])
	ae, af, be, bf := a*e, a*f, b*e, b*f

	// R = Rx * Ry * Rz
	r00, r01, r02 := c*e, -c*f, d
	r10, r11, r12 := af+be*d, ae-bf*d, -b*c
	r20, r21, r22 := bf-ae*d, be+af*d, a*c

	sx, sy, sz := scale[0], scale[1], scale[2]
	return Mat4{
		float32(r00 * sx), float32(r10 * sx), float32(r20 * sx), 0,
		float32(r01 * sy), float32(r11 * sy), float32(r21 * sy), 0,
		float32(r02 * sz), float32(r12 * sz), float32(r22 * sz), 0,
		float32(pos[0]), float32(pos[1]), float32(pos[2]), 1,
	}
}

// SegmentMatrix maps the unit segment (0,0,0)-(1,0,0) onto the segment a-b.
//
// Parameters:
//   - a, b: segment endpoints in world space
//
// Returns:
//   - Mat4: the segment transform
func SegmentMatrix(a, b Vec3) Mat4 {
	d := b.Sub(a)
	return Mat4{
		float32(d[0]), float32(d[1]), float32(d[2]), 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		float32(a[0]), float32(a[1]), float32(a[2]), 1,
	}
}

// Invert computes the inverse of m with the cofactor expansion.
// A singular matrix yields the identity and false.
//
// Returns:
//   - Mat4: the inverse of m
//   - bool: false if m is singular
func (m Mat4) Invert() (Mat4, bool) {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Identity(), false
	}
	inv := 1.0 / det

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * inv,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * inv,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * inv,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * inv,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * inv,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * inv,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * inv,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * inv,
	}, true
}

// NormalMatrix returns the inverse transpose of m, used to carry surface normals
// through non-uniform scale. A singular m yields the identity.
func (m Mat4) NormalMatrix() Mat4 {
	inv, ok := m.Invert()
	if !ok {
		return Identity()
	}
	return inv.Transpose()
}

// LookAt builds a view matrix for an eye looking at center.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector (typically 0,1,0)
//
// Returns:
//   - Mat4: the view matrix
func LookAt(eye, center, up Vec3) Mat4 {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		float32(x[0]), float32(y[0]), float32(z[0]), 0,
		float32(x[1]), float32(y[1]), float32(z[1]), 0,
		float32(x[2]), float32(y[2]), float32(z[2]), 0,
		float32(-x.Dot(eye)), float32(-y.Dot(eye)), float32(-z.Dot(eye)), 1,
	}
}

// TransformPoint applies m to a position (w = 1) without a perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4([4]float32{float32(p[0]), float32(p[1]), float32(p[2]), 1})
	return V3(float64(v[0]), float64(v[1]), float64(v[2]))
}

// TransformDir applies m to a direction (w = 0).
func (m Mat4) TransformDir(d Vec3) Vec3 {
	v := m.MulVec4([4]float32{float32(d[0]), float32(d[1]), float32(d[2]), 0})
	return V3(float64(v[0]), float64(v[1]), float64(v[2]))
}

package math

import "math"

// Mat4 is a 4x4 matrix stored column-major, the layout glUniformMatrix4fv
// expects with transpose disabled. Element (row r, column c) is m[c*4+r].
type Mat4 [16]float64

// Vec4 is a homogeneous coordinate.
type Vec4 [4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{0: 1, 5: 1, 10: 1, 15: 1}
}

// AxisCorrection returns the fixed remap applied to STL assets exported with
// a nose-along-Z convention: x' = -z, y' = x, z' = y.
func AxisCorrection() Mat4 {
	return columns(
		Vec4{0, 1, 0, 0},  // x -> +y
		Vec4{0, 0, 1, 0},  // y -> +z
		Vec4{-1, 0, 0, 0}, // z -> -x
		Vec4{0, 0, 0, 1},
	)
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Perspective returns a right-handed projection onto GL clip space.
// fovY is in radians and aspect is width/height.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	d := near - far
	return Mat4{
		0:  f / aspect,
		5:  f,
		10: (far + near) / d,
		11: -1,
		14: 2 * far * near / d,
	}
}

// Ortho returns an orthographic projection onto GL clip space. The 2D
// overlay uses it with top < bottom to get a y-down pixel space.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	w, h, d := right-left, top-bottom, far-near
	return Mat4{
		0:  2 / w,
		5:  2 / h,
		10: -2 / d,
		12: -(right + left) / w,
		13: -(top + bottom) / h,
		14: -(far + near) / d,
		15: 1,
	}
}

// LookAt returns the view matrix of a camera at eye looking at center.
// up must not be parallel to the viewing direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return columns(
		Vec4{s.X, u.X, -f.X, 0},
		Vec4{s.Y, u.Y, -f.Y, 0},
		Vec4{s.Z, u.Z, -f.Z, 0},
		Vec4{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	)
}

func columns(c0, c1, c2, c3 Vec4) Mat4 {
	var m Mat4
	for i, c := range [4]Vec4{c0, c1, c2, c3} {
		copy(m[i*4:i*4+4], c[:])
	}
	return m
}

// Mul returns m * o, so o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := range 4 {
		col := m.MulVec4(Vec4(o[c*4 : c*4+4]))
		copy(out[c*4:c*4+4], col[:])
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for r := range 4 {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}

// TransformPoint applies m to p with w = 1, dividing by the resulting w
// when it is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if v[3] != 0 && v[3] != 1 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return Vec3{v[0], v[1], v[2]}
}

// TransformDirection applies the linear part of m to d.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	v := m.MulVec4(Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// Float32 narrows the matrix for uniform upload.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

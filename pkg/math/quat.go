package math

import "math"

// Quat is a rotation quaternion w + xi + yj + zk. W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation by angle radians about axis. The
// axis is normalized first; a zero axis gives the identity.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Length()
	if n < 1e-12 {
		return QuatIdentity()
	}
	axis = axis.Scale(1 / n)
	s, c := math.Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// Norm returns the Euclidean length of the quaternion.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length, or the identity when q is
// too close to zero to have a direction.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < 1e-12 {
		return QuatIdentity()
	}
	return q.scale(1 / n)
}

func (q Quat) scale(s float64) Quat {
	return Quat{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

func (q Quat) add(o Quat) Quat {
	return Quat{X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z, W: q.W + o.W}
}

// Neg returns -q, which encodes the same orientation.
func (q Quat) Neg() Quat {
	return q.scale(-1)
}

// Conjugate returns the conjugate, the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Dot returns the 4D dot product.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// slerpLinearBelow is the angle under which Slerp blends linearly;
// sin(theta) would lose precision as a divisor.
const slerpLinearBelow = 1e-6

// Slerp interpolates from q (t = 0) to o (t = 1) at constant angular
// velocity along the shorter arc. The result is always unit length.
func (q Quat) Slerp(o Quat, t float64) Quat {
	q, o = q.Normalize(), o.Normalize()
	cos := q.Dot(o)
	if cos < 0 {
		o, cos = o.Neg(), -cos
	}
	theta := math.Acos(min(cos, 1))
	if theta < slerpLinearBelow {
		return q.Lerp(o, t)
	}
	sin := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return q.scale(a).add(o.scale(b)).Normalize()
}

// Lerp blends componentwise and renormalizes. It does not keep angular
// velocity constant.
func (q Quat) Lerp(o Quat, t float64) Quat {
	return q.scale(1 - t).add(o.scale(t)).Normalize()
}

// Mul multiplies two quaternions (Hamilton product). q.Mul(other) applies
// other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate rotates v by the quaternion (q v q*). q must be a unit quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat4 returns the rotation matrix of q. The columns are the images of
// the basis axes, which is what Rotate computes.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()
	x, y, z := q.Rotate(AxisX), q.Rotate(AxisY), q.Rotate(AxisZ)
	return columns(
		Vec4{x.X, x.Y, x.Z, 0},
		Vec4{y.X, y.Y, y.Z, 0},
		Vec4{z.X, z.Y, z.Z, 0},
		Vec4{0, 0, 0, 1},
	)
}

// ApproxEqual reports whether q and other encode the same orientation within
// tol, treating q and -q as equal.
func (q Quat) ApproxEqual(other Quat, tol float64) bool {
	return q.componentsNear(other, tol) || q.componentsNear(other.Neg(), tol)
}

func (q Quat) componentsNear(o Quat, tol float64) bool {
	return math.Abs(q.X-o.X) <= tol && math.Abs(q.Y-o.Y) <= tol &&
		math.Abs(q.Z-o.Z) <= tol && math.Abs(q.W-o.W) <= tol
}

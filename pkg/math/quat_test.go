package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	if math.Abs(n.Norm()-1.0) > 1e-12 {
		t.Errorf("Normalized quaternion length should be 1, got %v", n.Norm())
	}
	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("zero quaternion should normalize to identity")
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(AxisY, math.Pi/2)

	if got := q1.Slerp(q2, 0); !got.ApproxEqual(q1, 1e-12) {
		t.Errorf("Slerp at t=0 should equal q1, got %v", got)
	}
	if got := q1.Slerp(q2, 1); !got.ApproxEqual(q2, 1e-12) {
		t.Errorf("Slerp at t=1 should equal q2, got %v", got)
	}

	// For a 90 degree rotation, halfway is 45 degrees.
	result5 := q1.Slerp(q2, 0.5)
	if want := QuatFromAxisAngle(AxisY, math.Pi/4); !result5.ApproxEqual(want, 1e-12) {
		t.Errorf("Slerp at t=0.5: expected %v, got %v", want, result5)
	}
}

func TestQuatSlerpShortestArc(t *testing.T) {
	a := QuatFromAxisAngle(AxisZ, 0.2)
	b := QuatFromAxisAngle(AxisZ, 0.6).Neg() // same orientation, opposite hemisphere

	mid := a.Slerp(b, 0.5)
	if want := QuatFromAxisAngle(AxisZ, 0.4); !mid.ApproxEqual(want, 1e-12) {
		t.Errorf("Slerp should take the short arc: got %v, want %v", mid, want)
	}
}

func TestQuatSlerpUnitNorm(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 2.5)
	b := QuatFromAxisAngle(AxisZ, -1.1)
	for i := 0; i <= 100; i++ {
		q := a.Slerp(b, float64(i)/100)
		if math.Abs(q.Norm()-1) > 1e-12 {
			t.Fatalf("t=%v: norm %v", float64(i)/100, q.Norm())
		}
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()
	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(m[i]-identity[i]) > 1e-12 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 1.3)
	m := q.ToMat4()
	for _, v := range []Vec3{AxisX, AxisY, AxisZ, {4, -5, 6}} {
		if a, b := m.TransformPoint(v), q.Rotate(v); !vecNear(a, b, 1e-12) {
			t.Errorf("matrix %v != rotate %v for %v", a, b, v)
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(AxisY, math.Pi/2)

	if math.Abs(q.W-math.Cos(math.Pi/4)) > 1e-12 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", math.Cos(math.Pi/4), q.W)
	}
	if math.Abs(q.Y-math.Sin(math.Pi/4)) > 1e-12 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", math.Sin(math.Pi/4), q.Y)
	}
}

func TestQuatFromAxisAngleNormalizesAxis(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		want Quat
	}{
		{"scaled z", Vec3{Z: 5}, QuatFromAxisAngle(AxisZ, 0.7)},
		{"diagonal", Vec3{X: 1, Y: 1}, QuatFromAxisAngle(Vec3{X: 1, Y: 1}.Normalize(), 0.7)},
		{"zero axis", Vec3{}, QuatIdentity()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, 0.7)
			if math.Abs(q.Norm()-1) > 1e-12 {
				t.Errorf("|q| = %v, want 1", q.Norm())
			}
			if !q.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", q, tt.want)
			}
		})
	}

	// A unit quaternion rotates without scaling.
	v := Vec3{X: 3, Y: -1, Z: 2}
	if got := QuatFromAxisAngle(Vec3{X: 1, Y: 1}, 0.7).Rotate(v).Length(); math.Abs(got-v.Length()) > 1e-12 {
		t.Errorf("rotated length = %v, want %v", got, v.Length())
	}
}

func TestQuatMulOrder(t *testing.T) {
	// yaw.Mul(pitch) applies pitch first: X -> -Z (pitch 90 about Y) -> -Z (yaw about Z keeps Z).
	yaw := QuatFromAxisAngle(AxisZ, math.Pi/2)
	pitch := QuatFromAxisAngle(AxisY, math.Pi/2)

	got := yaw.Mul(pitch).Rotate(AxisX)
	if !vecNear(got, Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("yaw*pitch rotating X = %v, want (0,0,-1)", got)
	}
	got = pitch.Mul(yaw).Rotate(AxisX)
	if !vecNear(got, Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("pitch*yaw rotating X = %v, want (0,1,0)", got)
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 1}.Normalize(), 0.9)
	if got := q.Mul(q.Conjugate()); !got.ApproxEqual(QuatIdentity(), 1e-12) {
		t.Errorf("q*conj(q) = %v, want identity", got)
	}
}

func TestQuatSlerpConstantVelocity(t *testing.T) {
	a := QuatFromAxisAngle(AxisX, 0.3)
	b := QuatFromAxisAngle(Vec3{0, 1, 1}.Normalize(), 1.7)
	total := 2 * math.Acos(math.Abs(a.Dot(b)))

	prev := a
	for i := 1; i <= 10; i++ {
		q := a.Slerp(b, float64(i)/10)
		step := 2 * math.Acos(min(math.Abs(prev.Dot(q)), 1))
		if math.Abs(step-total/10) > 1e-9 {
			t.Fatalf("step %d covers %v rad, want %v", i, step, total/10)
		}
		prev = q
	}
}

func TestQuatSlerpNearlyEqual(t *testing.T) {
	a := QuatFromAxisAngle(AxisZ, 0.5)
	b := QuatFromAxisAngle(AxisZ, 0.5+1e-9)
	got := a.Slerp(b, 0.5)
	if math.Abs(got.Norm()-1) > 1e-12 || !got.ApproxEqual(a, 1e-8) {
		t.Errorf("Slerp of nearly equal quaternions = %v", got)
	}
}

// Package rotation builds the yaw, pitch, roll keyframes and resolves the
// interpolated orientation for any point of the animation.
package rotation

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/math"
)

// Segment boundaries in overall progress.
const (
	YawEnd   = 1.0 / 3.0
	PitchEnd = 2.0 / 3.0
)

// segmentCount is the number of equal-length segments.
const segmentCount = 3

// Phase identifies one rotation segment.
type Phase int

const (
	Yaw Phase = iota
	Pitch
	Roll
)

// String returns the short phase name.
func (p Phase) String() string {
	switch p {
	case Yaw:
		return "Yaw"
	case Pitch:
		return "Pitch"
	case Roll:
		return "Roll"
	default:
		return "Unknown"
	}
}

// Title returns the phase name with its rotation axis.
func (p Phase) Title() string {
	switch p {
	case Yaw:
		return "Yaw (Z-axis)"
	case Pitch:
		return "Pitch (Y-axis)"
	case Roll:
		return "Roll (X-axis)"
	default:
		return "Unknown"
	}
}

// Axis returns the fixed axis the phase rotates about.
func (p Phase) Axis() math.Vec3 {
	switch p {
	case Yaw:
		return math.AxisZ
	case Pitch:
		return math.AxisY
	default:
		return math.AxisX
	}
}

// Angles holds target angles in degrees.
type Angles struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// DefaultAngles returns yaw 60°, pitch 30°, roll 45°.
func DefaultAngles() Angles {
	return Angles{Yaw: 60, Pitch: 30, Roll: 45}
}

// Degrees returns the target angle for p.
func (a Angles) Degrees(p Phase) float64 {
	switch p {
	case Yaw:
		return a.Yaw
	case Pitch:
		return a.Pitch
	default:
		return a.Roll
	}
}

// Segment is a resolved position within the sequence.
type Segment struct {
	Index int     // 0, 1 or 2
	Phase Phase   // phase for Index
	Local float64 // progress within the segment in [0, 1]
}

// Resolve maps overall progress t to its segment. Partitions are
// [0, 1/3], (1/3, 2/3] and (2/3, 1]; t outside [0, 1] is clamped and NaN
// maps to 0.
func Resolve(t float64) Segment {
	t = clamp01(t)

	var start float64
	var idx int
	switch {
	case t <= YawEnd:
		idx, start = 0, 0
	case t <= PitchEnd:
		idx, start = 1, YawEnd
	default:
		idx, start = 2, PitchEnd
	}

	return Segment{
		Index: idx,
		Phase: Phase(idx),
		Local: clamp01((t - start) * segmentCount),
	}
}

// Sequence holds the keyframes of a yaw, pitch, roll rotation. It is
// immutable once built.
type Sequence struct {
	angles    Angles
	keyframes [segmentCount + 1]math.Quat
}

// NewSequence builds the keyframes for the given angles. Each rotation is
// composed on the right, so pitch and roll act about the already rotated
// body axes. Each keyframe takes the sign that puts it in the same
// hemisphere as its predecessor, so a segment's slerp ends exactly where the
// next one starts, components included.
func NewSequence(a Angles) *Sequence {
	s := &Sequence{angles: a}
	s.keyframes[0] = math.QuatIdentity()
	for p := Yaw; p <= Roll; p++ {
		r := math.QuatFromAxisAngle(p.Axis(), radians(a.Degrees(p)))
		prev := s.keyframes[p]
		next := prev.Mul(r).Normalize()
		if prev.Dot(next) < 0 {
			next = next.Neg()
		}
		s.keyframes[p+1] = next
	}
	return s
}

// Angles returns the target angles.
func (s *Sequence) Angles() Angles {
	return s.angles
}

// Keyframe returns the orientation at boundary i: 0 identity, 1 after yaw,
// 2 after pitch, 3 the combined rotation.
func (s *Sequence) Keyframe(i int) math.Quat {
	return s.keyframes[i]
}

// Combined returns the final orientation.
func (s *Sequence) Combined() math.Quat {
	return s.keyframes[segmentCount]
}

// OrientationAt returns the interpolated orientation at overall progress t.
func (s *Sequence) OrientationAt(t float64) math.Quat {
	return s.Orientation(Resolve(t))
}

// Orientation returns the interpolated orientation for a resolved segment.
func (s *Sequence) Orientation(seg Segment) math.Quat {
	return s.keyframes[seg.Index].Slerp(s.keyframes[seg.Index+1], seg.Local)
}

func radians(deg float64) float64 {
	return deg * gomath.Pi / 180
}

func clamp01(v float64) float64 {
	if gomath.IsNaN(v) {
		return 0
	}
	return gomath.Max(0, gomath.Min(1, v))
}

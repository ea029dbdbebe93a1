// Package plot builds the float32 geometry of a 3D plot: arrows, the view
// cube and its ticks, and a colormapped surface. It has no GL dependency.
package plot

import (
	"github.com/chewxy/math32"
)

// Segment is a line from A to B drawn Width pixels wide.
type Segment struct {
	A, B  [3]float32
	Color [4]float32
	Width float32
}

// headAngle is the angle between the shaft and each arrowhead line.
const headAngle = 15 * math32.Pi / 180

// Arrow returns the shaft and two head lines of an arrow from origin along vec.
// The head lines have length headRatio·|vec| and lie in a plane containing vec.
func Arrow(origin, vec [3]float32, headRatio float32, color [4]float32, width float32) []Segment {
	tip := add(origin, vec)
	segs := []Segment{{A: origin, B: tip, Color: color, Width: width}}

	length := norm(vec)
	if length == 0 || headRatio <= 0 {
		return segs
	}

	dir := scale(vec, 1/length)
	perp := perpendicular(dir)
	head := headRatio * length
	cos, sin := math32.Cos(headAngle), math32.Sin(headAngle)

	for _, s := range []float32{1, -1} {
		// back along the shaft, tilted toward ±perp
		back := add(scale(dir, -cos), scale(perp, s*sin))
		segs = append(segs, Segment{
			A:     tip,
			B:     add(tip, scale(back, head)),
			Color: color,
			Width: width,
		})
	}
	return segs
}

// perpendicular returns a unit vector orthogonal to the unit vector d,
// preferring one in the horizontal plane.
func perpendicular(d [3]float32) [3]float32 {
	p := cross(d, [3]float32{0, 0, 1})
	if norm(p) < 1e-4 {
		p = cross(d, [3]float32{1, 0, 0})
	}
	return scale(p, 1/norm(p))
}

func add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(a [3]float32, s float32) [3]float32 {
	return [3]float32{a[0] * s, a[1] * s, a[2] * s}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(a [3]float32) float32 {
	return math32.Sqrt(dot(a, a))
}

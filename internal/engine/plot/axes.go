package plot

import (
	gomath "math"

	"github.com/Faultbox/quatviz/internal/engine/debug"
)

// Cube returns the 12 edges of the ±bound view cube.
func Cube(bound float32, color [4]float32, width float32) []Segment {
	v := debug.GenerateBBoxWireframeVertices(-bound, -bound, -bound, bound, bound, bound)
	return Wireframe(v, color, width)
}

// Wireframe pairs consecutive xyz vertices into segments.
func Wireframe(v []float32, color [4]float32, width float32) []Segment {
	segs := make([]Segment, 0, len(v)/6)
	for i := 0; i+5 < len(v); i += 6 {
		segs = append(segs, Segment{
			A:     [3]float32{v[i], v[i+1], v[i+2]},
			B:     [3]float32{v[i+3], v[i+4], v[i+5]},
			Color: color,
			Width: width,
		})
	}
	return segs
}

// Ticks returns evenly spaced round values covering [-bound, bound], aiming
// for at most maxTicks values.
func Ticks(bound float64, maxTicks int) []float64 {
	if bound <= 0 || maxTicks < 2 {
		return nil
	}
	step := niceStep(2 * bound / float64(maxTicks-1))
	var ticks []float64
	for v := gomath.Ceil(-bound/step) * step; v <= bound+step*1e-9; v += step {
		// snap -0 and accumulated error
		ticks = append(ticks, gomath.Round(v/step)*step)
	}
	return ticks
}

// niceStep rounds raw up to 1, 2, 2.5, 5 or 10 times a power of ten.
func niceStep(raw float64) float64 {
	exp := gomath.Floor(gomath.Log10(raw))
	base := gomath.Pow(10, exp)
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*base >= raw*(1-1e-9) {
			return m * base
		}
	}
	return 10 * base
}

// Tick is a labelled tick on one axis of the view cube.
type Tick struct {
	Axis  int // 0 x, 1 y, 2 z
	Value float64
	Pos   [3]float32 // where the label is anchored
}

// AxisTicks places tick marks along the three cube edges that meet at the
// (-bound, -bound, -bound) corner's neighbors, like a 3D plot's axis panes.
// It returns the mark segments and the label anchors.
func AxisTicks(bound float32, values []float64, color [4]float32, width float32) ([]Segment, []Tick) {
	mark := bound * 0.03
	var segs []Segment
	var ticks []Tick

	for _, v := range values {
		f := float32(v)

		// x axis along y = -bound, z = -bound
		x := [3]float32{f, -bound, -bound}
		segs = append(segs, Segment{A: x, B: add(x, [3]float32{0, -mark, 0}), Color: color, Width: width})
		ticks = append(ticks, Tick{Axis: 0, Value: v, Pos: add(x, [3]float32{0, -4 * mark, 0})})

		// y axis along x = bound, z = -bound
		y := [3]float32{bound, f, -bound}
		segs = append(segs, Segment{A: y, B: add(y, [3]float32{mark, 0, 0}), Color: color, Width: width})
		ticks = append(ticks, Tick{Axis: 1, Value: v, Pos: add(y, [3]float32{4 * mark, 0, 0})})

		// z axis along x = -bound, y = bound
		z := [3]float32{-bound, bound, f}
		segs = append(segs, Segment{A: z, B: add(z, [3]float32{0, mark, 0}), Color: color, Width: width})
		ticks = append(ticks, Tick{Axis: 2, Value: v, Pos: add(z, [3]float32{0, 4 * mark, 0})})
	}
	return segs, ticks
}

// AxisLabelAnchors returns where the "X", "Y" and "Z" captions go.
func AxisLabelAnchors(bound float32) [3][3]float32 {
	off := bound * 0.25
	return [3][3]float32{
		{0, -bound - off, -bound},
		{bound + off, 0, -bound},
		{-bound, bound + off, 0},
	}
}

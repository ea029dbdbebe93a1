package frame

import gomath "math"

// baseTextSize is the point size drawn at 1:1 by the bitmap font.
const baseTextSize = 9

// TextScale returns the font scale for a point size on a display with
// pixelScale drawable pixels per point, rounded to half steps and never
// below 1.
func TextScale(size float64, pixelScale float32) float32 {
	s := gomath.Round(size/baseTextSize*float64(pixelScale)*2) / 2
	return float32(gomath.Max(s, 1))
}

// TextTop converts a bottom-up view fraction to a top-down pixel row.
func TextTop(y float64, height float32) float32 {
	return float32(1-y) * height
}

// Extent resolves the view cube half-size and triad length. Non-positive
// values are derived from the mesh radius: the cube gets a quarter of
// margin and the triad is 0.6 of the cube. clipped reports whether the mesh
// extends past the cube.
func Extent(bound, axisLength, radius float64) (b, axis float64, clipped bool) {
	b = bound
	if b <= 0 {
		b = radius * 1.25
	}
	if b <= 0 {
		b = 1
	}
	axis = axisLength
	if axis <= 0 {
		axis = 0.6 * b
	}
	return b, axis, radius > b
}

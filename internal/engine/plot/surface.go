package plot

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quatviz/internal/engine/lighting"
	"github.com/Faultbox/quatviz/pkg/math"
)

// coolwarm holds evenly spaced samples of the diverging blue-white-red map.
var coolwarm = [...][3]float32{
	{59, 76, 192},
	{98, 130, 234},
	{141, 176, 254},
	{184, 208, 249},
	{221, 221, 221},
	{245, 196, 173},
	{244, 154, 123},
	{222, 96, 77},
	{180, 4, 38},
}

// Coolwarm maps v in [0, 1] to an RGB color. Values outside are clamped.
func Coolwarm(v float32) [3]float32 {
	if math32.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	pos := v * float32(len(coolwarm)-1)
	i := int(pos)
	if i >= len(coolwarm)-1 {
		i = len(coolwarm) - 2
	}
	f := pos - float32(i)
	a, b := coolwarm[i], coolwarm[i+1]
	return [3]float32{
		(a[0] + (b[0]-a[0])*f) / 255,
		(a[1] + (b[1]-a[1])*f) / 255,
		(a[2] + (b[2]-a[2])*f) / 255,
	}
}

// LightDir is the fixed light used to shade surfaces.
var LightDir = lighting.Default()

// shade maps the cosine between a face normal and the light into a
// brightness factor in [0.3, 1].
func shade(n [3]float32) float32 {
	l := norm(n)
	if l == 0 {
		return 1
	}
	c := dot(scale(n, 1/l), LightDir)
	return 0.3 + 0.7*(c+1)/2
}

// SurfaceStride is the number of floats per surface vertex: pos3 + color4.
const SurfaceStride = 7

// Surface expands faces into flat-shaded triangles. Each face is colored by
// its mean height mapped through Coolwarm over the mesh's height range.
// dst is reused when it has enough capacity.
func Surface(dst []float32, verts []math.Vec3, faces [][3]int, alpha float32) []float32 {
	dst = dst[:0]
	if len(faces) == 0 {
		return dst
	}

	heights := make([]float32, len(faces))
	lo, hi := math32.Inf(1), math32.Inf(-1)
	for i, f := range faces {
		h := float32(verts[f[0]].Z+verts[f[1]].Z+verts[f[2]].Z) / 3
		heights[i] = h
		lo = math32.Min(lo, h)
		hi = math32.Max(hi, h)
	}
	span := hi - lo

	for i, f := range faces {
		a, b, c := verts[f[0]].Array(), verts[f[1]].Array(), verts[f[2]].Array()

		var t float32 = 0.5
		if span > 0 {
			t = (heights[i] - lo) / span
		}
		rgb := Coolwarm(t)
		k := shade(cross(sub(b, a), sub(c, a)))

		for _, p := range [3][3]float32{a, b, c} {
			dst = append(dst, p[0], p[1], p[2], rgb[0]*k, rgb[1]*k, rgb[2]*k, alpha)
		}
	}
	return dst
}

// Edges returns each undirected face edge once as index pairs.
func Edges(faces [][3]int) []uint32 {
	type edge struct{ a, b int }
	seen := make(map[edge]bool, len(faces)*3/2)
	out := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := edge{a, b}
			if seen[e] {
				continue
			}
			seen[e] = true
			out = append(out, uint32(a), uint32(b))
		}
	}
	return out
}

// Positions flattens vertex positions into dst.
func Positions(dst []float32, verts []math.Vec3) []float32 {
	dst = dst[:0]
	for _, v := range verts {
		dst = append(dst, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return dst
}

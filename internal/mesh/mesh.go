// Package mesh loads the triangulated model and prepares it for animation.
//
// A Mesh is treated as immutable once loaded: every transform returns a new
// Mesh and leaves the receiver untouched.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/formats"
	"github.com/Faultbox/quatviz/pkg/math"
)

// volumeEpsilon is the relative volume below which a mesh is treated as open.
const volumeEpsilon = 1e-9

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []math.Vec3
	Faces    [][3]int
}

// FromSTL builds an indexed mesh from parsed STL data, welding shared vertices.
func FromSTL(stl *formats.STL) *Mesh {
	verts, faces := stl.Indexed()
	m := &Mesh{
		Vertices: make([]math.Vec3, len(verts)),
		Faces:    faces,
	}
	for i, v := range verts {
		m.Vertices[i] = math.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
	}
	return m
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Triangle returns the corner positions of face i.
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// Transform returns a copy with every vertex transformed as a point by mat.
// Faces are shared with the receiver.
func (m *Mesh) Transform(mat math.Mat4) *Mesh {
	return m.mapVertices(mat.TransformPoint)
}

// Rotated returns a copy with every vertex rotated by q about the origin.
func (m *Mesh) Rotated(q math.Quat) *Mesh {
	return m.mapVertices(q.Rotate)
}

// Translate returns a copy offset by d.
func (m *Mesh) Translate(d math.Vec3) *Mesh {
	return m.mapVertices(d.Add)
}

func (m *Mesh) mapVertices(fn func(math.Vec3) math.Vec3) *Mesh {
	out := &Mesh{
		Vertices: make([]math.Vec3, len(m.Vertices)),
		Faces:    m.Faces,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = fn(v)
	}
	return out
}

// Volume returns the signed enclosed volume. It is only meaningful for
// closed, consistently wound meshes.
func (m *Mesh) Volume() float64 {
	var vol float64
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		vol += a.Dot(b.Cross(c)) / 6
	}
	return vol
}

// SurfaceArea returns the total triangle area.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		area += b.Sub(a).Cross(c.Sub(a)).Length() / 2
	}
	return area
}

// CenterOfMass returns the centroid of the enclosed solid assuming uniform
// density. Meshes that enclose no volume fall back to the area-weighted
// surface centroid.
func (m *Mesh) CenterOfMass() math.Vec3 {
	if len(m.Faces) == 0 {
		return m.vertexCentroid()
	}

	var vol float64
	var sum math.Vec3
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		v := a.Dot(b.Cross(c)) / 6
		vol += v
		sum = sum.Add(a.Add(b).Add(c).Scale(v / 4))
	}

	min, max := m.Bounds()
	extent := max.Sub(min).Length()
	if gomath.Abs(vol) > volumeEpsilon*extent*extent*extent {
		return sum.Scale(1 / vol)
	}

	return m.surfaceCentroid()
}

func (m *Mesh) surfaceCentroid() math.Vec3 {
	var area float64
	var sum math.Vec3
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		w := b.Sub(a).Cross(c.Sub(a)).Length() / 2
		area += w
		sum = sum.Add(a.Add(b).Add(c).Scale(w / 3))
	}
	if area == 0 {
		return m.vertexCentroid()
	}
	return sum.Scale(1 / area)
}

func (m *Mesh) vertexCentroid() math.Vec3 {
	if len(m.Vertices) == 0 {
		return math.Vec3{}
	}
	var sum math.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(m.Vertices)))
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Radius returns the largest vertex distance from the origin.
func (m *Mesh) Radius() float64 {
	var r float64
	for _, v := range m.Vertices {
		r = gomath.Max(r, v.Length())
	}
	return r
}

package mesh

import (
	"github.com/fogleman/simplify"

	"github.com/Faultbox/quatviz/pkg/math"
)

// Decimate returns a simplified copy keeping roughly keep×faces triangles.
// Values outside (0, 1) return the receiver unchanged.
func (m *Mesh) Decimate(keep float64) *Mesh {
	if keep <= 0 || keep >= 1 || len(m.Faces) == 0 {
		return m
	}

	tris := make([]*simplify.Triangle, 0, len(m.Faces))
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		tris = append(tris, simplify.NewTriangle(toVector(a), toVector(b), toVector(c)))
	}

	out := simplify.NewMesh(tris).Simplify(keep)
	return fromTriangles(out.Triangles)
}

func fromTriangles(tris []*simplify.Triangle) *Mesh {
	m := &Mesh{Faces: make([][3]int, 0, len(tris))}
	index := make(map[simplify.Vector]int)
	weld := func(v simplify.Vector) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(m.Vertices)
		index[v] = i
		m.Vertices = append(m.Vertices, math.Vec3{X: v.X, Y: v.Y, Z: v.Z})
		return i
	}
	for _, t := range tris {
		m.Faces = append(m.Faces, [3]int{weld(t.V1), weld(t.V2), weld(t.V3)})
	}
	return m
}

func toVector(v math.Vec3) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

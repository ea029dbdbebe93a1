package mesh

import (
	"errors"
	"fmt"
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/quatviz/internal/assets"
	"github.com/Faultbox/quatviz/pkg/formats"
	"github.com/Faultbox/quatviz/pkg/math"
)

const tol = 1e-9

func vecSlice(v math.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func assertVec(t *testing.T, name string, got, want math.Vec3) {
	t.Helper()
	if !floats.EqualApprox(vecSlice(got), vecSlice(want), tol) {
		t.Errorf("%s: expected %+v, got %+v", name, want, got)
	}
}

// tetrahedron returns the unit corner tetrahedron with outward winding.
func tetrahedron() *Mesh {
	return &Mesh{
		Vertices: []math.Vec3{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces:    [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
	}
}

// box returns an axis-aligned box with outward winding.
func box(min, size math.Vec3) *Mesh {
	m := &Mesh{}
	for i := 0; i < 8; i++ {
		m.Vertices = append(m.Vertices, math.Vec3{
			X: min.X + size.X*float64(i&1),
			Y: min.Y + size.Y*float64(i>>1&1),
			Z: min.Z + size.Z*float64(i>>2&1),
		})
	}
	// corner index = x | y<<1 | z<<2
	m.Faces = [][3]int{
		{0, 2, 3}, {0, 3, 1}, // -Z
		{4, 5, 7}, {4, 7, 6}, // +Z
		{0, 1, 5}, {0, 5, 4}, // -Y
		{2, 6, 7}, {2, 7, 3}, // +Y
		{0, 4, 6}, {0, 6, 2}, // -X
		{1, 3, 7}, {1, 7, 5}, // +X
	}
	return m
}

func reversed(m *Mesh) *Mesh {
	out := &Mesh{Vertices: m.Vertices}
	for _, f := range m.Faces {
		out.Faces = append(out.Faces, [3]int{f[0], f[2], f[1]})
	}
	return out
}

func TestVolume(t *testing.T) {
	if v := box(math.Vec3{}, math.Vec3{X: 2, Y: 3, Z: 4}).Volume(); !scalar.EqualWithinAbs(v, 24, tol) {
		t.Errorf("expected box volume 24, got %v", v)
	}
	if v := tetrahedron().Volume(); !scalar.EqualWithinAbs(v, 1.0/6, tol) {
		t.Errorf("expected tetrahedron volume 1/6, got %v", v)
	}
}

func TestSurfaceArea(t *testing.T) {
	if a := box(math.Vec3{}, math.Vec3{X: 2, Y: 3, Z: 4}).SurfaceArea(); !scalar.EqualWithinAbs(a, 52, tol) {
		t.Errorf("expected box area 52, got %v", a)
	}
	// Three right triangles of area 1/2 plus an equilateral face of side sqrt(2).
	want := 1.5 + gomath.Sqrt(3)/2
	if a := tetrahedron().SurfaceArea(); !scalar.EqualWithinAbs(a, want, tol) {
		t.Errorf("expected tetrahedron area %v, got %v", want, a)
	}
}

func TestCenterOfMass(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
		want math.Vec3
	}{
		{"tetrahedron", tetrahedron(), math.Vec3{X: 0.25, Y: 0.25, Z: 0.25}},
		{"offset box", box(math.Vec3{X: 10, Y: -1, Z: 4}, math.Vec3{X: 2, Y: 2, Z: 2}), math.Vec3{X: 11, Y: 0, Z: 5}},
		{"inward winding", reversed(tetrahedron()), math.Vec3{X: 0.25, Y: 0.25, Z: 0.25}},
		{
			"flat triangle",
			&Mesh{Vertices: []math.Vec3{{}, {X: 3}, {Y: 3}}, Faces: [][3]int{{0, 1, 2}}},
			math.Vec3{X: 1, Y: 1},
		},
		{"empty", &Mesh{}, math.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "com", tt.mesh.CenterOfMass(), tt.want)
		})
	}
}

func TestCenterOfMassIsNotSurfaceCentroid(t *testing.T) {
	// The tetrahedron's slanted face is larger than the others, pulling the
	// surface centroid away from the solid centroid.
	m := tetrahedron()
	surface := m.surfaceCentroid()
	if scalar.EqualWithinAbs(surface.X, 0.25, 1e-3) {
		t.Fatalf("surface centroid unexpectedly equals solid centroid: %+v", surface)
	}
	assertVec(t, "com", m.CenterOfMass(), math.Vec3{X: 0.25, Y: 0.25, Z: 0.25})
}

func TestTransformDoesNotMutate(t *testing.T) {
	m := tetrahedron()
	orig := append([]math.Vec3(nil), m.Vertices...)

	moved := m.Transform(math.Translate(5, 0, 0))
	rotated := m.Rotated(math.QuatFromAxisAngle(math.AxisZ, 1))
	_ = m.Translate(math.Vec3{Y: 7})

	for i, v := range m.Vertices {
		if v != orig[i] {
			t.Fatalf("vertex %d mutated: %+v -> %+v", i, orig[i], v)
		}
	}
	assertVec(t, "moved", moved.Vertices[1], math.Vec3{X: 6})
	if rotated.TriangleCount() != m.TriangleCount() {
		t.Errorf("rotated face count changed")
	}
}

func TestRotatedPreservesShape(t *testing.T) {
	m := box(math.Vec3{X: -1, Y: -2, Z: -3}, math.Vec3{X: 2, Y: 4, Z: 6})
	q := math.QuatFromAxisAngle(math.Vec3{X: 1, Y: 1, Z: 0}, 0.7)
	r := m.Rotated(q)

	if !scalar.EqualWithinAbs(r.Radius(), m.Radius(), tol) {
		t.Errorf("radius changed: %v -> %v", m.Radius(), r.Radius())
	}
	if !scalar.EqualWithinAbs(r.Volume(), m.Volume(), 1e-6) {
		t.Errorf("volume changed: %v -> %v", m.Volume(), r.Volume())
	}
	assertVec(t, "com", r.CenterOfMass(), math.Vec3{})
}

func TestBoundsAndRadius(t *testing.T) {
	m := box(math.Vec3{X: -1, Y: -2, Z: -2}, math.Vec3{X: 2, Y: 4, Z: 4})
	min, max := m.Bounds()
	assertVec(t, "min", min, math.Vec3{X: -1, Y: -2, Z: -2})
	assertVec(t, "max", max, math.Vec3{X: 1, Y: 2, Z: 2})
	if !scalar.EqualWithinAbs(m.Radius(), 3, tol) {
		t.Errorf("expected radius 3, got %v", m.Radius())
	}
}

func TestFromSTLWelds(t *testing.T) {
	b := box(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	stl := &formats.STL{}
	for i := range b.Faces {
		a, bb, c := b.Triangle(i)
		stl.Triangles = append(stl.Triangles, formats.STLTriangle{
			Vertices: [3][3]float32{a.Array(), bb.Array(), c.Array()},
		})
	}

	m := FromSTL(stl)
	if len(m.Vertices) != 8 {
		t.Errorf("expected 8 welded vertices, got %d", len(m.Vertices))
	}
	if m.TriangleCount() != 12 {
		t.Errorf("expected 12 faces, got %d", m.TriangleCount())
	}
}

func writeASCII(t *testing.T, dir, name string, m *Mesh) {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("solid test\n")
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		sb.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, v := range []math.Vec3{a, b, c} {
			fmt.Fprintf(&sb, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		sb.WriteString("    endloop\n  endfacet\n")
	}
	sb.WriteString("endsolid test\n")
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sb.String()), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadCorrectsAndRecenters(t *testing.T) {
	dir := t.TempDir()
	writeASCII(t, dir, "box.stl", box(math.Vec3{X: 10, Y: 20, Z: 30}, math.Vec3{X: 2, Y: 4, Z: 6}))

	m, err := Load("box.stl", Options{Locator: assets.NewLocator(dir)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	assertVec(t, "com", m.CenterOfMass(), math.Vec3{})

	// x' = -z, y' = x, z' = y
	min, max := m.Bounds()
	assertVec(t, "min", min, math.Vec3{X: -3, Y: -1, Z: -2})
	assertVec(t, "max", max, math.Vec3{X: 3, Y: 1, Z: 2})
}

func TestLoadIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeASCII(t, dir, "tet.stl", tetrahedron().Translate(math.Vec3{X: 5, Y: 6, Z: 7}))

	loc := assets.NewLocator(dir)
	a, err := Load("tet.stl", Options{Locator: loc})
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	b, err := Load("tet.stl", Options{Locator: loc})
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if len(a.Vertices) != len(b.Vertices) || a.TriangleCount() != b.TriangleCount() {
		t.Fatalf("counts differ: %d/%d vs %d/%d",
			len(a.Vertices), a.TriangleCount(), len(b.Vertices), b.TriangleCount())
	}
	for i := range a.Vertices {
		assertVec(t, "vertex", a.Vertices[i], b.Vertices[i])
	}
	if hits, misses := loc.Cache().Stats(); hits != 1 || misses != 1 {
		t.Errorf("shared locator cache: %d hits, %d misses; want 1, 1", hits, misses)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.stl"), []byte("solid bad\nfacet normal a b c\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loc := assets.NewLocator(dir)

	_, err := Load("missing.stl", Options{Locator: loc})
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	_, err = Load("bad.stl", Options{Locator: loc})
	if !errors.Is(err, formats.ErrMalformedASCIISTL) {
		t.Errorf("expected ErrMalformedASCIISTL, got %v", err)
	}
}

func TestDecimate(t *testing.T) {
	m := box(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})

	for _, keep := range []float64{0, 1, -0.5} {
		if got := m.Decimate(keep); got != m {
			t.Errorf("Decimate(%v) should return the receiver", keep)
		}
	}

	d := m.Decimate(0.5)
	if d.TriangleCount() > m.TriangleCount() {
		t.Errorf("decimation grew the mesh: %d -> %d", m.TriangleCount(), d.TriangleCount())
	}
	for _, f := range d.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(d.Vertices) {
				t.Fatalf("face index %d out of range", idx)
			}
		}
	}
}

package frame

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/quatviz/internal/mesh"
	"github.com/Faultbox/quatviz/internal/rotation"
	"github.com/Faultbox/quatviz/pkg/math"
)

func newBuilder() *Builder {
	base := &mesh.Mesh{
		Vertices: []math.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: -1, Y: -1, Z: -1}},
		Faces:    [][3]int{{0, 1, 2}, {0, 3, 1}},
	}
	return NewBuilder(base, rotation.NewSequence(rotation.DefaultAngles()), Timeline{Frames: 601}, 15000)
}

func overlayText(f *Frame) []string {
	out := make([]string, len(f.Overlay))
	for i, l := range f.Overlay {
		out[i] = l.Content
	}
	return out
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		frames int
		index  int
		want   float64
	}{
		{601, 0, 0},
		{601, 300, 0.5},
		{601, 600, 1},
		{601, 601, 0},
		{601, -1, 1},
		{1, 0, 0},
		{0, 7, 0},
		{3, 1, 0.5},
	}
	for _, tt := range tests {
		got := Timeline{Frames: tt.frames}.T(tt.index)
		if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("Timeline{%d}.T(%d) = %v, want %v", tt.frames, tt.index, got, tt.want)
		}
	}
}

func TestFrameOverlay(t *testing.T) {
	b := newBuilder()

	tests := []struct {
		index int
		title string
		lines map[int]string
	}{
		{
			index: 0,
			title: "Yaw (Z-axis) - Overall: 0%",
			lines: map[int]string{
				0: "Overall: 0%",
				1: "Yaw: 0%",
				3: "w = 1.0000",
				4: "x = 0.0000",
				5: "y = 0.0000",
				6: "z = 0.0000",
				7: "|q| = 1.0000",
			},
		},
		{
			index: 300,
			title: "Pitch (Y-axis) - Overall: 50%",
			lines: map[int]string{
				0: "Overall: 50%",
				1: "Pitch: 50%",
				3: "w = 0.8586",
				4: "x = -0.0653",
				5: "y = 0.1130",
				6: "z = 0.4957",
				7: "|q| = 1.0000",
			},
		},
		{
			index: 600,
			title: "Roll (X-axis) - Overall: 100%",
			lines: map[int]string{
				0: "Overall: 100%",
				1: "Roll: 100%",
				7: "|q| = 1.0000",
			},
		},
		{
			index: 200,
			title: "Yaw (Z-axis) - Overall: 33%",
			lines: map[int]string{
				1: "Yaw: 100%",
			},
		},
	}

	for _, tt := range tests {
		f := b.Frame(tt.index)
		if f.Title != tt.title {
			t.Errorf("frame %d: title %q, want %q", tt.index, f.Title, tt.title)
		}
		text := overlayText(f)
		for i, want := range tt.lines {
			if text[i] != want {
				t.Errorf("frame %d line %d: %q, want %q", tt.index, i, text[i], want)
			}
		}
	}
}

func TestOverlayStaticLines(t *testing.T) {
	text := overlayText(newBuilder().Frame(123))
	want := map[int]string{
		2:  "Current Quaternion:",
		8:  "Target Angles:",
		9:  "Yaw:   60°",
		10: "Pitch: 30°",
		11: "Roll:  45°",
	}
	for i, w := range want {
		if text[i] != w {
			t.Errorf("line %d: %q, want %q", i, text[i], w)
		}
	}
}

func TestOverlayColors(t *testing.T) {
	b := newBuilder()
	for _, tt := range []struct {
		index int
		want  color.NRGBA
	}{
		{100, Blue},
		{300, Green},
		{500, Red},
	} {
		if got := b.Frame(tt.index).Overlay[1].Color; got != tt.want {
			t.Errorf("frame %d phase color %v, want %v", tt.index, got, tt.want)
		}
	}

	o := b.Frame(0).Overlay
	if o[4].Color != Red || o[5].Color != Green || o[6].Color != Blue {
		t.Errorf("quaternion component colors: %v %v %v", o[4].Color, o[5].Color, o[6].Color)
	}
}

func TestFrameRebuildable(t *testing.T) {
	b := newBuilder()

	a := b.Frame(417)
	_ = b.Frame(12)
	c := b.Frame(417)

	if a.Orientation != c.Orientation || a.T != c.T || a.Title != c.Title {
		t.Errorf("frame 417 differs between builds")
	}
	for i := range a.Mesh.Vertices {
		if a.Mesh.Vertices[i] != c.Mesh.Vertices[i] {
			t.Fatalf("vertex %d differs between builds", i)
		}
	}
}

func TestFrameDoesNotMutateBase(t *testing.T) {
	b := newBuilder()
	orig := append([]math.Vec3(nil), b.base.Vertices...)

	for _, i := range []int{0, 150, 300, 450, 600} {
		_ = b.Frame(i)
	}

	for i, v := range b.base.Vertices {
		if v != orig[i] {
			t.Fatalf("base vertex %d mutated", i)
		}
	}
}

func TestFrameEndpoints(t *testing.T) {
	b := newBuilder()
	seq := rotation.NewSequence(rotation.DefaultAngles())

	first := b.Frame(0)
	if first.Segment.Index != 0 || first.Segment.Local != 0 {
		t.Errorf("frame 0 segment %+v", first.Segment)
	}
	if !first.Orientation.ApproxEqual(math.QuatIdentity(), 1e-12) {
		t.Errorf("frame 0 orientation %+v", first.Orientation)
	}

	last := b.Frame(600)
	if last.Segment.Index != 2 || last.Segment.Local != 1 {
		t.Errorf("frame 600 segment %+v", last.Segment)
	}
	if !last.Orientation.ApproxEqual(seq.Combined(), 1e-12) {
		t.Errorf("frame 600 orientation %+v, want %+v", last.Orientation, seq.Combined())
	}
}

func TestTriads(t *testing.T) {
	b := newBuilder()

	f0 := b.Frame(0)
	for i := range f0.Local {
		if f0.Local[i].Vector.Sub(f0.Global[i].Vector).Length() > 1e-9 {
			t.Errorf("frame 0 local axis %d should match global", i)
		}
	}

	f := b.Frame(450)
	want := [3]math.Vec3{{X: 15000}, {Y: 15000}, {Z: 15000}}
	for i, a := range f.Global {
		if a.Vector != want[i] {
			t.Errorf("global axis %d = %+v, want %+v", i, a.Vector, want[i])
		}
		if a.Alpha != 0.3 || a.HeadRatio != 0.15 {
			t.Errorf("global axis %d style %v/%v", i, a.Alpha, a.HeadRatio)
		}
	}
	for i, a := range f.Local {
		if !scalar.EqualWithinAbs(a.Vector.Length(), 15000, 1e-6) {
			t.Errorf("local axis %d length %v", i, a.Vector.Length())
		}
		want := f.Orientation.Rotate(want[i])
		if a.Vector.Sub(want).Length() > 1e-6 {
			t.Errorf("local axis %d = %+v, want %+v", i, a.Vector, want)
		}
		if a.HeadRatio != 0.3 || a.Alpha != 1 {
			t.Errorf("local axis %d style %v/%v", i, a.Alpha, a.HeadRatio)
		}
	}
	if f.Local[0].Label != "Local x" || f.Global[2].Label != "Global z" {
		t.Errorf("unexpected labels %q %q", f.Local[0].Label, f.Global[2].Label)
	}
}

func TestLegend(t *testing.T) {
	want := []string{"Global x", "Global y", "Global z", "Local x", "Local y", "Local z"}
	got := Legend()
	if len(got) != len(want) {
		t.Fatalf("expected %d legend entries, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.Label != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Label, want[i])
		}
	}
	if got[3].Color != Red || got[4].Color != Lime || got[5].Color != Cyan {
		t.Errorf("local legend colors %v %v %v", got[3].Color, got[4].Color, got[5].Color)
	}
}

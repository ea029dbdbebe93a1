// Package frame computes everything drawn for one animation frame.
//
// A Frame is a pure function of its index: the Builder holds only immutable
// inputs, so any frame can be rebuilt at any time in any order.
package frame

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/quatviz/internal/mesh"
	"github.com/Faultbox/quatviz/internal/rotation"
	"github.com/Faultbox/quatviz/pkg/math"
)

// Timeline maps frame indices to overall progress.
type Timeline struct {
	Frames int
}

// T returns progress in [0, 1] for frame i. Indices wrap modulo Frames.
func (tl Timeline) T(i int) float64 {
	if tl.Frames <= 1 {
		return 0
	}
	i %= tl.Frames
	if i < 0 {
		i += tl.Frames
	}
	return float64(i) / float64(tl.Frames-1)
}

// Text is one overlay line. Y is a bottom-up fraction of the view height.
type Text struct {
	Content string
	Color   color.NRGBA
	Y       float64
	Size    float64 // nominal point size
	Bold    bool
}

// Frame is the complete state of one rendered frame.
type Frame struct {
	Index       int
	T           float64
	Segment     rotation.Segment
	Orientation math.Quat
	Norm        float64

	Mesh   *mesh.Mesh
	Global Triad
	Local  Triad

	Title   string
	Overlay []Text
}

// Builder produces frames from the immutable base mesh and rotation sequence.
type Builder struct {
	base       *mesh.Mesh
	seq        *rotation.Sequence
	timeline   Timeline
	axisLength float64
}

// NewBuilder creates a frame builder.
func NewBuilder(base *mesh.Mesh, seq *rotation.Sequence, tl Timeline, axisLength float64) *Builder {
	return &Builder{
		base:       base,
		seq:        seq,
		timeline:   tl,
		axisLength: axisLength,
	}
}

// Timeline returns the builder's timeline.
func (b *Builder) Timeline() Timeline {
	return b.timeline
}

// AxisLength returns the triad length.
func (b *Builder) AxisLength() float64 {
	return b.axisLength
}

// Frame builds frame i.
func (b *Builder) Frame(i int) *Frame {
	t := b.timeline.T(i)
	seg := rotation.Resolve(t)
	q := b.seq.Orientation(seg)

	f := &Frame{
		Index:       i,
		T:           t,
		Segment:     seg,
		Orientation: q,
		Norm:        q.Norm(),
		Global:      NewTriad(math.QuatIdentity(), b.axisLength, GlobalStyle),
		Local:       NewTriad(q, b.axisLength, LocalStyle),
		Title:       Title(seg, t),
	}
	if b.base != nil {
		f.Mesh = b.base.Rotated(q)
	}
	f.Overlay = Overlay(seg, t, q, b.seq.Angles())
	return f
}

// Title returns the window title line for a frame.
func Title(seg rotation.Segment, t float64) string {
	return fmt.Sprintf("%s - Overall: %.0f%%", seg.Phase.Title(), t*100)
}

// Overlay returns the text lines shown over the scene.
func Overlay(seg rotation.Segment, t float64, q math.Quat, a rotation.Angles) []Text {
	phase := PhaseColor(seg.Index)
	return []Text{
		{Content: fmt.Sprintf("Overall: %.0f%%", t*100), Color: Black, Y: 0.95, Size: 12},
		{Content: fmt.Sprintf("%s: %.0f%%", seg.Phase, seg.Local*100), Color: phase, Y: 0.90, Size: 10},

		{Content: "Current Quaternion:", Color: Black, Y: 0.85, Size: 11, Bold: true},
		{Content: fmt.Sprintf("w = %.4f", q.W), Color: Black, Y: 0.81, Size: 9},
		{Content: fmt.Sprintf("x = %.4f", q.X), Color: Red, Y: 0.77, Size: 9},
		{Content: fmt.Sprintf("y = %.4f", q.Y), Color: Green, Y: 0.73, Size: 9},
		{Content: fmt.Sprintf("z = %.4f", q.Z), Color: Blue, Y: 0.69, Size: 9},
		{Content: fmt.Sprintf("|q| = %.4f", q.Norm()), Color: Black, Y: 0.65, Size: 9},

		{Content: "Target Angles:", Color: Black, Y: 0.58, Size: 10, Bold: true},
		{Content: fmt.Sprintf("Yaw:   %g°", a.Yaw), Color: PhaseColor(0), Y: 0.54, Size: 9},
		{Content: fmt.Sprintf("Pitch: %g°", a.Pitch), Color: PhaseColor(1), Y: 0.50, Size: 9},
		{Content: fmt.Sprintf("Roll:  %g°", a.Roll), Color: PhaseColor(2), Y: 0.46, Size: 9},
	}
}

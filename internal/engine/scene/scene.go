// Package scene renders one animation frame of the 3D plot offscreen: the
// view cube, the colormapped mesh and the global and local axis triads.
package scene

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/framebuffer"
	"github.com/Faultbox/quatviz/internal/engine/plot"
	"github.com/Faultbox/quatviz/internal/frame"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width      int32 // drawable pixels
	Height     int32
	Samples    int32 // MSAA samples, 1 disables
	Bound      float32
	MaxTicks   int
	LineScale  float32 // pixels per nominal line width unit
	ShowBounds bool    // draw the rotated mesh's bounding box
	Background [4]float32
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1400,
		Height:     1100,
		Samples:    4,
		Bound:      25000,
		MaxTicks:   6,
		LineScale:  1,
		Background: [4]float32{1, 1, 1, 1},
	}
}

var (
	cubeColor   = [4]float32{0.5, 0.5, 0.5, 1}
	tickColor   = [4]float32{0.2, 0.2, 0.2, 1}
	boundsColor = [4]float32{0.9, 0.6, 0.1, 1}
)

// Label is text anchored at a projected scene point.
type Label struct {
	Text string
	X, Y float32 // drawable pixels, top-left origin
}

// Scene manages the offscreen plot.
type Scene struct {
	config Config

	framebuffer  *framebuffer.Framebuffer
	meshRenderer *MeshRenderer
	lineRenderer *LineRenderer

	axes  []plot.Segment // cube and tick marks
	ticks []plot.Tick

	log *zap.Logger
}

// New creates a new scene with the given configuration.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		config: cfg,
		log:    logger.Named("scene"),
	}

	var err error
	s.framebuffer, err = framebuffer.New(cfg.Width, cfg.Height, cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}
	if s.meshRenderer, err = NewMeshRenderer(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating mesh renderer: %w", err)
	}
	if s.lineRenderer, err = NewLineRenderer(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating line renderer: %w", err)
	}
	s.lineRenderer.WidthScale = cfg.LineScale

	s.buildAxes()

	s.log.Info("scene created",
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height),
		zap.Int32("samples", s.framebuffer.Samples()),
		zap.Float32("bound", cfg.Bound),
	)
	return s, nil
}

func (s *Scene) buildAxes() {
	b := s.config.Bound
	s.axes = plot.Cube(b, cubeColor, 1)
	marks, ticks := plot.AxisTicks(b, plot.Ticks(float64(b), s.config.MaxTicks), tickColor, 1)
	s.axes = append(s.axes, marks...)
	s.ticks = ticks
}

// Render draws f into the offscreen target and returns its color texture.
func (s *Scene) Render(f *frame.Frame, view, proj math.Mat4) uint32 {
	restore := s.framebuffer.BindWithViewport()
	bg := s.config.Background
	s.framebuffer.Clear(bg[0], bg[1], bg[2], bg[3])

	vp := proj.Mul(view).Float32()
	w, h := s.framebuffer.Size()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	s.lineRenderer.Add(s.axes...)
	if s.config.ShowBounds && f.Mesh != nil {
		lo, hi := f.Mesh.Bounds()
		box := debug.GenerateBBoxWireframeFromBounds(lo.Array(), hi.Array(), 0)
		s.lineRenderer.Add(plot.Wireframe(box, boundsColor, 1)...)
	}
	s.lineRenderer.Flush(vp, w, h)

	s.meshRenderer.Draw(f.Mesh, vp)

	// triads stay visible through the mesh
	gl.Disable(gl.DEPTH_TEST)
	s.lineRenderer.Add(TriadSegments(f.Global)...)
	s.lineRenderer.Add(TriadSegments(f.Local)...)
	s.lineRenderer.Flush(vp, w, h)
	gl.Enable(gl.DEPTH_TEST)

	restore()
	s.framebuffer.Resolve()
	return s.framebuffer.ColorTexture()
}

// TriadSegments converts a triad into arrow line segments.
func TriadSegments(t frame.Triad) []plot.Segment {
	segs := make([]plot.Segment, 0, 9)
	for _, a := range t {
		segs = append(segs, plot.Arrow(
			a.Origin.Array(),
			a.Vector.Array(),
			float32(a.HeadRatio),
			rgba(a.Color, a.Alpha),
			a.Width,
		)...)
	}
	return segs
}

func rgba(c color.NRGBA, alpha float64) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255 * float32(alpha),
	}
}

// Labels returns tick values and axis captions projected with viewProj.
// Points behind the camera are skipped.
func (s *Scene) Labels(viewProj math.Mat4) []Label {
	w, h := s.framebuffer.Size()
	labels := make([]Label, 0, len(s.ticks)+3)
	for _, t := range s.ticks {
		if x, y, ok := camera.Project(viewProj, t.Pos, int(w), int(h)); ok {
			labels = append(labels, Label{Text: strconv.FormatFloat(t.Value, 'f', -1, 64), X: x, Y: y})
		}
	}
	for i, p := range plot.AxisLabelAnchors(s.config.Bound) {
		if x, y, ok := camera.Project(viewProj, p, int(w), int(h)); ok {
			labels = append(labels, Label{Text: string(rune('X' + i)), X: x, Y: y})
		}
	}
	return labels
}

// Resize resizes the offscreen target.
func (s *Scene) Resize(width, height int32) {
	s.framebuffer.Resize(width, height)
	s.config.Width, s.config.Height = s.framebuffer.Size()
}

// SetLineScale sets pixels per nominal line width unit.
func (s *Scene) SetLineScale(scale float32) {
	s.config.LineScale = scale
	s.lineRenderer.WidthScale = scale
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	if s.lineRenderer != nil {
		s.lineRenderer.Destroy()
		s.lineRenderer = nil
	}
	if s.meshRenderer != nil {
		s.meshRenderer.Destroy()
		s.meshRenderer = nil
	}
	if s.framebuffer != nil {
		s.framebuffer.Destroy()
		s.framebuffer = nil
	}
}

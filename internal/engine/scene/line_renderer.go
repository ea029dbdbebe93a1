package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quatviz/internal/engine/plot"
	"github.com/Faultbox/quatviz/internal/engine/scene/shaders"
	"github.com/Faultbox/quatviz/internal/engine/shader"
)

// lineStride is pos3 + other3 + side1 + color4 + width1.
const lineStride = 12

// LineRenderer batches wide line segments and draws them as screen-space quads.
type LineRenderer struct {
	program  *shader.Program
	vao, vbo uint32
	vertices []float32

	// WidthScale converts nominal widths to drawable pixels.
	WidthScale float32
}

// NewLineRenderer compiles the line program.
func NewLineRenderer() (*LineRenderer, error) {
	lr := &LineRenderer{
		vertices:   make([]float32, 0, 64*6*lineStride),
		WidthScale: 1,
	}

	var err error
	if lr.program, err = shader.New("lines", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)
	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)

	var offset uintptr
	for i, n := range []int32{3, 3, 1, 4, 1} {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, lineStride*4, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return lr, nil
}

// Add queues segments.
func (lr *LineRenderer) Add(segs ...plot.Segment) {
	for _, s := range segs {
		w := s.Width * lr.WidthScale
		a := lr.corner(s.A, s.B, 1, s.Color, w)
		b := lr.corner(s.A, s.B, -1, s.Color, w)
		// seen from B the normal flips, so the sides swap
		c := lr.corner(s.B, s.A, -1, s.Color, w)
		d := lr.corner(s.B, s.A, 1, s.Color, w)
		lr.vertices = append(lr.vertices, a...)
		lr.vertices = append(lr.vertices, b...)
		lr.vertices = append(lr.vertices, c...)
		lr.vertices = append(lr.vertices, b...)
		lr.vertices = append(lr.vertices, d...)
		lr.vertices = append(lr.vertices, c...)
	}
}

func (lr *LineRenderer) corner(p, other [3]float32, side float32, c [4]float32, w float32) []float32 {
	return []float32{p[0], p[1], p[2], other[0], other[1], other[2], side, c[0], c[1], c[2], c[3], w}
}

// Flush draws and clears the queued segments.
func (lr *LineRenderer) Flush(viewProj [16]float32, width, height int32) {
	if len(lr.vertices) == 0 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("uViewProj", viewProj)
	lr.program.SetVec2("uViewport", float32(width), float32(height))

	gl.BindVertexArray(lr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(lr.vertices)*4, unsafe.Pointer(&lr.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(lr.vertices)/lineStride))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	lr.vertices = lr.vertices[:0]
}

// Destroy releases GL resources.
func (lr *LineRenderer) Destroy() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	if lr.program != nil {
		lr.program.Delete()
		lr.program = nil
	}
}

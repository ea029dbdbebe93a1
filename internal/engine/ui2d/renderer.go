// Package ui2d provides a batched 2D overlay layer using OpenGL.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quatviz/internal/engine/shader"
	"github.com/Faultbox/quatviz/pkg/math"
)

const (
	solidStride = 7 // pos3 + color4
	textStride  = 9 // pos3 + uv2 + color4
	sceneStride = 5 // pos3 + uv2
)

// Renderer batches screen-space quads and text and draws them in End.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program
	textShader  *shader.Program
	sceneShader *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32
	sceneVAO, sceneVBO uint32

	solidVertices []float32
	textVertices  []float32
	sceneVertices []float32

	font *Font
}

// New creates a 2D renderer for a screen of the given pixel size.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 8192),
	}

	var err error
	if r.solidShader, err = shader.New("ui2d solid", solidVertexShader, solidFragmentShader); err != nil {
		return nil, err
	}
	if r.textShader, err = shader.New("ui2d text", textVertexShader, textFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.sceneShader, err = shader.New("ui2d scene", textVertexShader, sceneFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	r.solidVAO, r.solidVBO = newBuffers([]int32{3, 4})
	r.textVAO, r.textVBO = newBuffers([]int32{3, 2, 4})
	r.sceneVAO, r.sceneVBO = newBuffers([]int32{3, 2})

	r.font = NewFont()

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Close()
		return nil, fmt.Errorf("ui2d setup: GL error 0x%x", code)
	}
	return r, nil
}

// newBuffers creates a VAO/VBO pair with tightly packed float attributes of
// the given component counts at consecutive locations.
func newBuffers(components []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var stride int32
	for _, c := range components {
		stride += c * 4
	}
	var offset uintptr
	for i, c := range components {
		gl.VertexAttribPointerWithOffset(uint32(i), c, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(c * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End draws all queued quads, then all queued text.
func (r *Renderer) End() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := r.projection()

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", proj)
		upload(r.solidVAO, r.solidVBO, r.solidVertices)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", proj)
		r.textShader.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		upload(r.textVAO, r.textVBO, r.textVertices)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Enable(gl.DEPTH_TEST)
}

func upload(vao, vbo uint32, data []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
}

func (r *Renderer) projection() [16]float32 {
	return math.Ortho(0, float64(r.screenWidth), float64(r.screenHeight), 0, -1, 1).Float32()
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.textVAO, &r.sceneVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.textVBO, &r.sceneVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	for _, p := range []*shader.Program{r.solidShader, r.textShader, r.sceneShader} {
		if p != nil {
			p.Delete()
		}
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.solidVertices = appendSolid(r.solidVertices, Rect{x, y, width, height}, color)
}

// DrawRectOutline draws a border of the given thickness inside a rectangle.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	for _, s := range outline(Rect{x, y, width, height}, thickness) {
		r.solidVertices = appendSolid(r.solidVertices, s, color)
	}
}

// DrawPanel draws a filled rectangle with a one pixel border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	r.DrawRect(x, y, width, height, bg)
	r.DrawRectOutline(x, y, width, height, 1, border)
}

// DrawHLine draws a horizontal bar of the given thickness centred on y.
func (r *Renderer) DrawHLine(x, y, length, thickness float32, color Color) {
	thickness = max(thickness, 1)
	r.DrawRect(x, y-thickness/2, length, thickness, color)
}

// DrawText queues text with its top-left corner at x, y.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}
	gw, gh := r.font.GlyphSize()
	layoutText(x, y, text, float32(gw)*scale, float32(gh)*scale, func(cell Rect, ch rune) {
		u0, v0, u1, v1 := r.font.GetGlyphUV(ch)
		r.textVertices = appendTextured(r.textVertices, cell, [4]float32{u0, v0, u1, v1}, color)
	})
}

// DrawTextBold queues text twice, one pixel apart horizontally.
func (r *Renderer) DrawTextBold(x, y float32, text string, scale float32, color Color) {
	r.DrawText(x, y, text, scale, color)
	r.DrawText(x+1, y, text, scale, color)
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

// DrawSceneTexture draws an offscreen render target as an opaque quad.
// Call it before Begin so the overlay lands on top.
func (r *Renderer) DrawSceneTexture(x, y, w, h float32, textureID uint32) {
	if textureID == 0 {
		return
	}

	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	r.sceneShader.Use()
	r.sceneShader.SetMat4("uProjection", r.projection())
	r.sceneShader.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	r.sceneVertices = appendBlit(r.sceneVertices[:0], Rect{x, y, w, h})
	upload(r.sceneVAO, r.sceneVBO, r.sceneVertices)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.sceneVertices)/sceneStride))

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Enable(gl.DEPTH_TEST)
}

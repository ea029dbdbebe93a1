// Package framebuffer provides OpenGL framebuffer utilities for offscreen rendering.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer manages an offscreen render target with color and depth
// attachments. With samples > 1 it renders into multisampled renderbuffers
// and Resolve blits them into the sampleable color texture.
type Framebuffer struct {
	fbo          uint32 // resolve target, owns colorTexture
	colorTexture uint32
	depthRBO     uint32

	samples int32
	msFBO   uint32
	msColor uint32
	msDepth uint32
	width   int32
	height  int32
}

// New creates a new framebuffer with the specified dimensions and sample count.
func New(width, height, samples int32) (*Framebuffer, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if samples < 1 {
		samples = 1
	}

	var maxSamples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &maxSamples)
	if maxSamples > 0 && samples > maxSamples {
		samples = maxSamples
	}

	fb := &Framebuffer{
		width:   width,
		height:  height,
		samples: samples,
	}

	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}

	return fb, nil
}

func (fb *Framebuffer) create() error {
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	gl.GenTextures(1, &fb.colorTexture)
	gl.GenRenderbuffers(1, &fb.depthRBO)
	fb.allocate()

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.colorTexture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	if fb.samples > 1 {
		gl.GenFramebuffers(1, &fb.msFBO)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.msFBO)

		gl.GenRenderbuffers(1, &fb.msColor)
		gl.GenRenderbuffers(1, &fb.msDepth)
		fb.allocateMultisample()

		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.msColor)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.msDepth)

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			fb.Destroy()
			return fmt.Errorf("multisample framebuffer incomplete: 0x%x", status)
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

func (fb *Framebuffer) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
}

func (fb *Framebuffer) allocateMultisample() {
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msColor)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.RGBA8, fb.width, fb.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msDepth)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.DEPTH_COMPONENT24, fb.width, fb.height)
}

// drawFBO is the framebuffer geometry is rendered into.
func (fb *Framebuffer) drawFBO() uint32 {
	if fb.msFBO != 0 {
		return fb.msFBO
	}
	return fb.fbo
}

// Bind makes this framebuffer the current render target.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.drawFBO())
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// BindWithViewport binds and sets viewport, saving previous state.
// Returns a restore function to restore the previous framebuffer and viewport.
func (fb *Framebuffer) BindWithViewport() func() {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	fb.Bind()

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// Clear clears color and depth buffers with the specified color.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Resolve copies multisampled color into the color texture. It is a no-op
// without multisampling.
func (fb *Framebuffer) Resolve() {
	if fb.msFBO == 0 {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.msFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.fbo)
	gl.BlitFramebuffer(0, 0, fb.width, fb.height, 0, 0, fb.width, fb.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ColorTexture returns the color attachment texture ID.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.colorTexture
}

// Samples returns the effective sample count.
func (fb *Framebuffer) Samples() int32 {
	return fb.samples
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize updates the framebuffer dimensions if they have changed.
func (fb *Framebuffer) Resize(width, height int32) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.width && height == fb.height {
		return
	}

	fb.width = width
	fb.height = height

	fb.allocate()
	if fb.msFBO != 0 {
		fb.allocateMultisample()
	}
}

// ReadPixels reads the resolved color texture into bottom-up RGBA rows.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))

	return pixels
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	for _, id := range []*uint32{&fb.fbo, &fb.msFBO} {
		if *id != 0 {
			gl.DeleteFramebuffers(1, id)
			*id = 0
		}
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
	for _, id := range []*uint32{&fb.depthRBO, &fb.msColor, &fb.msDepth} {
		if *id != 0 {
			gl.DeleteRenderbuffers(1, id)
			*id = 0
		}
	}
}

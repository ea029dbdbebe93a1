package ui2d

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quatviz/internal/engine/glyph"
)

// Font is a glyph atlas uploaded as a single-channel texture.
type Font struct {
	atlas   *glyph.Atlas
	texture uint32
}

// NewFont rasterizes the built-in bitmap font and uploads it.
func NewFont() *Font {
	f := &Font{atlas: glyph.NewAtlas()}

	img := f.atlas.Image
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, w, h, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// GlyphSize returns the unscaled cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.CellW, f.atlas.CellH
}

// GetGlyphUV returns texture coordinates for r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.UV(r)
}

// MeasureText returns the size of text drawn at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.Measure(text, scale)
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close deletes the atlas texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}

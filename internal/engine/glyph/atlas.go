// Package glyph rasterizes a bitmap font into a texture atlas.
package glyph

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas covers printable ASCII and Latin-1, so text such as "45°" renders.
const (
	firstRune = 0x20
	lastRune  = 0xff
	columns   = 16

	// fallback is drawn for runes outside the atlas.
	fallback = '?'
)

// Atlas is a grid of fixed-size glyph cells in an alpha image.
type Atlas struct {
	Image  *image.Alpha
	CellW  int
	CellH  int
	Ascent int
}

// NewAtlas rasterizes the 7x13 basic font.
func NewAtlas() *Atlas {
	return newAtlas(basicfont.Face7x13)
}

func newAtlas(face *basicfont.Face) *Atlas {
	a := &Atlas{
		CellW:  face.Advance,
		CellH:  face.Height,
		Ascent: face.Ascent,
	}

	count := lastRune - firstRune + 1
	rows := (count + columns - 1) / columns
	a.Image = image.NewAlpha(image.Rect(0, 0, columns*a.CellW, rows*a.CellH))

	d := &font.Drawer{
		Dst:  a.Image,
		Src:  image.Opaque,
		Face: face,
	}
	for r := rune(firstRune); r <= lastRune; r++ {
		x, y := a.cell(r)
		d.Dot = fixed.P(x, y+a.Ascent)
		d.DrawString(string(r))
	}
	return a
}

// cell returns the top-left pixel of r's cell.
func (a *Atlas) cell(r rune) (int, int) {
	i := int(r - firstRune)
	return (i % columns) * a.CellW, (i / columns) * a.CellH
}

// Has reports whether r has a cell in the atlas.
func (a *Atlas) Has(r rune) bool {
	return r >= firstRune && r <= lastRune
}

// UV returns normalized texture coordinates for r. Runes outside the atlas
// map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if !a.Has(r) {
		r = fallback
	}
	x, y := a.cell(r)
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	return float32(x) / w, float32(y) / h, float32(x+a.CellW) / w, float32(y+a.CellH) / h
}

// Measure returns the pixel size of text drawn at scale. Newlines start a
// new line.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	return float32(widest*a.CellW) * scale, float32(len(lines)*a.CellH) * scale
}

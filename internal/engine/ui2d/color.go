package ui2d

import "image/color"

// Color is a straight-alpha RGBA colour with components in [0, 1], laid out
// the way the quad shader consumes it.
type Color struct {
	R, G, B, A float32
}

// Overlay palette. The plot background is white, so text is dark and the
// legend panel is a translucent white box with a light grey frame.
var (
	ColorText         = Color{0, 0, 0, 1}
	ColorTextDim      = Color{0.35, 0.35, 0.35, 1}
	ColorLegendBg     = Color{1, 1, 1, 0.8}
	ColorLegendBorder = Color{0.8, 0.8, 0.8, 1}
)

// FromNRGBA converts an 8-bit non-premultiplied colour.
func FromNRGBA(c color.NRGBA) Color {
	const s = 1.0 / 255
	return Color{float32(c.R) * s, float32(c.G) * s, float32(c.B) * s, float32(c.A) * s}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

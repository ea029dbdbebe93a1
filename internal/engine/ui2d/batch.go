package ui2d

// Rect is an axis-aligned rectangle in overlay pixels, y down.
type Rect struct {
	X, Y, W, H float32
}

// quadCorners are the unit-square corners of a quad's two triangles.
var quadCorners = [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}}

// appendSolid appends a filled rectangle as pos3 + color4 vertices.
func appendSolid(dst []float32, r Rect, c Color) []float32 {
	for _, k := range quadCorners {
		dst = append(dst, r.X+k[0]*r.W, r.Y+k[1]*r.H, 0, c.R, c.G, c.B, c.A)
	}
	return dst
}

// appendTextured appends a rectangle as pos3 + uv2 + color4 vertices. uv is
// (u0, v0, u1, v1) at the top-left and bottom-right corners.
func appendTextured(dst []float32, r Rect, uv [4]float32, c Color) []float32 {
	for _, k := range quadCorners {
		u := uv[0] + k[0]*(uv[2]-uv[0])
		v := uv[1] + k[1]*(uv[3]-uv[1])
		dst = append(dst, r.X+k[0]*r.W, r.Y+k[1]*r.H, 0, u, v, c.R, c.G, c.B, c.A)
	}
	return dst
}

// appendBlit appends a rectangle as pos3 + uv2 vertices sampling a whole
// render target. GL textures start at the bottom-left, so v is flipped.
func appendBlit(dst []float32, r Rect) []float32 {
	for _, k := range quadCorners {
		dst = append(dst, r.X+k[0]*r.W, r.Y+k[1]*r.H, 0, k[0], 1-k[1])
	}
	return dst
}

// outline returns the four strips of a border of width t inside r.
func outline(r Rect, t float32) [4]Rect {
	return [4]Rect{
		{r.X, r.Y, r.W, t},
		{r.X, r.Y + r.H - t, r.W, t},
		{r.X, r.Y + t, t, r.H - 2*t},
		{r.X + r.W - t, r.Y + t, t, r.H - 2*t},
	}
}

// layoutText places text on a monospaced grid starting at (x, y), calling
// emit with the cell of every visible rune. Newlines return to x.
func layoutText(x, y float32, text string, cellW, cellH float32, emit func(cell Rect, r rune)) {
	cx := x
	for _, r := range text {
		switch r {
		case '\n':
			cx = x
			y += cellH
			continue
		case ' ':
		default:
			emit(Rect{cx, y, cellW, cellH}, r)
		}
		cx += cellW
	}
}

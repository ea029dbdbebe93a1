package ui2d

// Context lays out rows of text and legend entries inside panels.
type Context struct {
	renderer *Renderer

	// Current panel
	panel   *Rect
	cursorX float32
	cursorY float32
	padding float32
}

// NewContext creates a layout context over r.
func NewContext(r *Renderer) *Context {
	return &Context{
		renderer: r,
		padding:  8,
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// BeginPanel draws a panel background and moves the cursor inside it.
func (c *Context) BeginPanel(rect Rect, bg, border Color) {
	c.renderer.DrawPanel(rect.X, rect.Y, rect.W, rect.H, bg, border)
	c.panel = &rect
	c.cursorX = rect.X + c.padding
	c.cursorY = rect.Y + c.padding
}

// EndPanel ends the current panel.
func (c *Context) EndPanel() {
	c.panel = nil
}

// Label draws a row of text in the default text color.
func (c *Context) Label(text string, scale float32) {
	c.LabelColored(text, scale, ColorText)
}

// LabelColored draws a row of text and advances the cursor.
func (c *Context) LabelColored(text string, scale float32, color Color) {
	c.renderer.DrawText(c.cursorX, c.cursorY, text, scale, color)
	_, h := c.renderer.MeasureText(text, scale)
	c.cursorY += h + 4
}

// LegendRow draws a line sample followed by a label.
func (c *Context) LegendRow(label string, scale, thickness float32, color Color) {
	const sample = 24
	_, h := c.renderer.MeasureText(label, scale)
	c.renderer.DrawHLine(c.cursorX, c.cursorY+h/2, sample, thickness, color)
	c.renderer.DrawText(c.cursorX+sample+6, c.cursorY, label, scale, ColorText)
	c.cursorY += h + 4
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// LegendSize returns the panel size needed for rows of labels.
func (c *Context) LegendSize(labels []string, scale float32) (float32, float32) {
	var w, h float32
	for _, l := range labels {
		lw, lh := c.renderer.MeasureText(l, scale)
		if lw > w {
			w = lw
		}
		h += lh + 4
	}
	return w + 24 + 6 + c.padding*2, h - 4 + c.padding*2
}

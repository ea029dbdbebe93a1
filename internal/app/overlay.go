package app

import (
	"github.com/Faultbox/quatviz/internal/engine/scene"
	"github.com/Faultbox/quatviz/internal/engine/ui2d"
	"github.com/Faultbox/quatviz/internal/frame"
)

const (
	titleSize  = 14
	labelSize  = 8
	legendSize = 9
	marginX    = 0.02 // fraction of the width
)

// drawOverlay draws the title and the per-frame status lines.
func (a *App) drawOverlay(f *frame.Frame) {
	w, h := float32(a.width), float32(a.height)

	scale := frame.TextScale(titleSize, a.pixelScale)
	tw, _ := a.ui.MeasureText(f.Title, scale)
	a.ui.DrawTextBold((w-tw)/2, 0.02*h, f.Title, scale, ui2d.ColorText)

	for _, line := range f.Overlay {
		scale := frame.TextScale(line.Size, a.pixelScale)
		x, y := marginX*w, frame.TextTop(line.Y, h)
		color := ui2d.FromNRGBA(line.Color)
		if line.Bold {
			a.ui.DrawTextBold(x, y, line.Content, scale, color)
		} else {
			a.ui.DrawText(x, y, line.Content, scale, color)
		}
	}
}

// drawLegend draws the axis legend in the upper right corner.
func (a *App) drawLegend() {
	entries := frame.Legend()
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}

	scale := frame.TextScale(legendSize, a.pixelScale)
	pw, ph := a.uiCtx.LegendSize(labels, scale)
	margin := 0.02 * float32(a.width)
	rect := ui2d.Rect{X: float32(a.width) - pw - margin, Y: 0.08 * float32(a.height), W: pw, H: ph}

	a.uiCtx.BeginPanel(rect, ui2d.ColorLegendBg, ui2d.ColorLegendBorder)
	for _, e := range entries {
		color := ui2d.FromNRGBA(e.Color).WithAlpha(float32(e.Alpha))
		a.uiCtx.LegendRow(e.Label, scale, e.Width*a.pixelScale, color)
	}
	a.uiCtx.EndPanel()
}

// drawLabels draws tick values and axis captions centered on their anchors.
func (a *App) drawLabels(labels []scene.Label) {
	scale := frame.TextScale(labelSize, a.pixelScale)
	for _, l := range labels {
		w, h := a.ui.MeasureText(l.Text, scale)
		a.ui.DrawText(l.X-w/2, l.Y-h/2, l.Text, scale, ui2d.ColorTextDim)
	}
}

package frame

import "image/color"

// Named colors used by the scene and overlay.
var (
	Black     = color.NRGBA{0, 0, 0, 255}
	Red       = color.NRGBA{255, 0, 0, 255}
	Lime      = color.NRGBA{0, 255, 0, 255}
	Cyan      = color.NRGBA{0, 255, 255, 255}
	Blue      = color.NRGBA{0, 0, 255, 255}
	Green     = color.NRGBA{0, 128, 0, 255}
	DarkRed   = color.NRGBA{139, 0, 0, 255}
	DarkGreen = color.NRGBA{0, 100, 0, 255}
	DarkBlue  = color.NRGBA{0, 0, 139, 255}
)

// PhaseColor returns the highlight color for a phase index.
func PhaseColor(index int) color.NRGBA {
	switch index {
	case 0:
		return Blue
	case 1:
		return Green
	default:
		return Red
	}
}

package frame

import (
	"image/color"

	"github.com/Faultbox/quatviz/pkg/math"
)

// Arrow is a single axis arrow from Origin along Vector.
type Arrow struct {
	Origin    math.Vec3
	Vector    math.Vec3
	Color     color.NRGBA
	Alpha     float64 // 0..1
	HeadRatio float64 // arrowhead length as a fraction of the arrow length
	Width     float32 // line width in pixels
	Label     string
}

// Triad is an x, y, z set of arrows.
type Triad [3]Arrow

// TriadStyle describes how a triad is drawn.
type TriadStyle struct {
	Prefix    string
	Colors    [3]color.NRGBA
	Alpha     float64
	HeadRatio float64
	Width     float32
}

// Triad styles for the fixed world axes and the rotating body axes.
var (
	GlobalStyle = TriadStyle{
		Prefix:    "Global ",
		Colors:    [3]color.NRGBA{DarkRed, DarkGreen, DarkBlue},
		Alpha:     0.3,
		HeadRatio: 0.15,
		Width:     1.5,
	}
	LocalStyle = TriadStyle{
		Prefix:    "Local ",
		Colors:    [3]color.NRGBA{Red, Lime, Cyan},
		Alpha:     1,
		HeadRatio: 0.3,
		Width:     4,
	}
)

var axisNames = [3]string{"x", "y", "z"}

// NewTriad builds the unit axes scaled to length and rotated by q.
func NewTriad(q math.Quat, length float64, style TriadStyle) Triad {
	var t Triad
	for i, axis := range [3]math.Vec3{math.AxisX, math.AxisY, math.AxisZ} {
		t[i] = Arrow{
			Vector:    q.Rotate(axis.Scale(length)),
			Color:     style.Colors[i],
			Alpha:     style.Alpha,
			HeadRatio: style.HeadRatio,
			Width:     style.Width,
			Label:     style.Prefix + axisNames[i],
		}
	}
	return t
}

// LegendEntry is one row of the axis legend.
type LegendEntry struct {
	Label string
	Color color.NRGBA
	Alpha float64
	Width float32
}

// Legend returns the entries for the global then local triads.
func Legend() []LegendEntry {
	var entries []LegendEntry
	for _, style := range []TriadStyle{GlobalStyle, LocalStyle} {
		for i, name := range axisNames {
			entries = append(entries, LegendEntry{
				Label: style.Prefix + name,
				Color: style.Colors[i],
				Alpha: style.Alpha,
				Width: style.Width,
			})
		}
	}
	return entries
}

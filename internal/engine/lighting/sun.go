// Package lighting provides light source helpers for shading the plot.
package lighting

import (
	"github.com/chewxy/math32"
)

// Direction converts a compass azimuth (degrees clockwise from +Y) and an
// altitude above the XY plane (degrees) into a unit vector pointing towards
// the light in a Z-up scene.
func Direction(azimuth, altitude float32) [3]float32 {
	az := (90 - azimuth) * math32.Pi / 180
	alt := altitude * math32.Pi / 180

	return [3]float32{
		math32.Cos(az) * math32.Cos(alt),
		math32.Sin(az) * math32.Cos(alt),
		math32.Sin(alt),
	}
}

// DefaultAzimuth and DefaultAltitude place the light to the south-west,
// raised so that the vertical component is one third.
const (
	DefaultAzimuth  = 225
	DefaultAltitude = 19.4712206
)

// Default returns the direction used for surface shading.
func Default() [3]float32 {
	return Direction(DefaultAzimuth, DefaultAltitude)
}

// Package camera provides the view camera for the 3D plot.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quatviz/pkg/math"
)

// ViewCamera orbits the origin of a Z-up scene. Angles are in degrees:
// elevation above the XY plane and azimuth about +Z from +X.
type ViewCamera struct {
	Elevation float32
	Azimuth   float32

	// Half-size of the view cube the camera frames
	Bound float32

	FovY float32 // vertical field of view, degrees
	Zoom float32 // 1 frames the whole cube

	// Constraints
	MinZoom      float32
	MaxZoom      float32
	MaxElevation float32

	// Sensitivity
	DragSensitivity float32 // degrees per pixel
	ZoomSensitivity float32 // zoom factor per wheel step

	initElevation float32
	initAzimuth   float32
}

// NewViewCamera creates a camera looking at a ±bound cube from the given angles.
func NewViewCamera(elevation, azimuth, bound float32) *ViewCamera {
	if bound <= 0 {
		bound = 1
	}
	return &ViewCamera{
		Elevation:       elevation,
		Azimuth:         azimuth,
		Bound:           bound,
		FovY:            30,
		Zoom:            1,
		MinZoom:         0.25,
		MaxZoom:         8,
		MaxElevation:    89,
		DragSensitivity: 0.4,
		ZoomSensitivity: 0.1,
		initElevation:   elevation,
		initAzimuth:     azimuth,
	}
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// radius is the half-diagonal of the view cube.
func (c *ViewCamera) radius() float32 {
	return c.Bound * math32.Sqrt(3)
}

// Distance returns the eye distance from the origin.
func (c *ViewCamera) Distance() float32 {
	return c.radius() / math32.Sin(radians(c.FovY)/2) / c.Zoom
}

// Position returns the camera position in world space.
func (c *ViewCamera) Position() math.Vec3 {
	el, az := radians(c.Elevation), radians(c.Azimuth)
	d := c.Distance()
	return math.Vec3{
		X: float64(d * math32.Cos(el) * math32.Cos(az)),
		Y: float64(d * math32.Cos(el) * math32.Sin(az)),
		Z: float64(d * math32.Sin(el)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *ViewCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 0, Z: 1}
	return math.LookAt(c.Position(), math.Vec3{}, up)
}

// Projection returns a perspective projection whose depth range encloses
// the view cube.
func (c *ViewCamera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	d, r := c.Distance(), c.radius()
	near := math32.Max(d-2*r, d*0.01)
	far := d + 2*r
	return math.Perspective(float64(radians(c.FovY)), float64(aspect), float64(near), float64(far))
}

// ViewProjection returns Projection(aspect) × ViewMatrix().
func (c *ViewCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.Projection(aspect).Mul(c.ViewMatrix())
}

// HandleDrag orbits based on mouse drag delta in pixels.
func (c *ViewCamera) HandleDrag(deltaX, deltaY float32) {
	c.Azimuth -= deltaX * c.DragSensitivity
	c.Elevation += deltaY * c.DragSensitivity

	c.Azimuth = math32.Mod(c.Azimuth, 360)
	if c.Elevation > c.MaxElevation {
		c.Elevation = c.MaxElevation
	}
	if c.Elevation < -c.MaxElevation {
		c.Elevation = -c.MaxElevation
	}
}

// HandleZoom updates zoom based on scroll wheel delta.
func (c *ViewCamera) HandleZoom(delta float32) {
	c.Zoom *= 1 + delta*c.ZoomSensitivity
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}

// Reset restores the initial angles and zoom.
func (c *ViewCamera) Reset() {
	c.Elevation = c.initElevation
	c.Azimuth = c.initAzimuth
	c.Zoom = 1
}

// Project maps a world point to pixel coordinates with a top-left origin.
// ok is false when the point is behind the camera.
func Project(viewProj math.Mat4, p [3]float32, width, height int) (x, y float32, ok bool) {
	clip := viewProj.MulVec4(math.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1})
	if clip[3] <= 0 {
		return 0, 0, false
	}
	nx := float32(clip[0] / clip[3])
	ny := float32(clip[1] / clip[3])
	x = (nx + 1) / 2 * float32(width)
	y = (1 - ny) / 2 * float32(height)
	return x, y, true
}

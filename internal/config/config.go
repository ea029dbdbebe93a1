// Package config handles visualizer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all visualizer settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Rotation  RotationConfig  `yaml:"rotation"`
	View      ViewConfig      `yaml:"view"`
	Mesh      MeshConfig      `yaml:"mesh"`
	Capture   CaptureConfig   `yaml:"capture"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AnimationConfig holds frame sequencing settings.
type AnimationConfig struct {
	Frames     int           `yaml:"frames"`      // Frames per pass, including both endpoints
	FrameDelay time.Duration `yaml:"frame_delay"` // Minimum time between presented frames
	Loop       bool          `yaml:"loop"`        // Restart at frame 0 after the last frame
}

// RotationConfig holds the fixed target angles in degrees.
type RotationConfig struct {
	YawDeg   float64 `yaml:"yaw_deg"`   // About Z
	PitchDeg float64 `yaml:"pitch_deg"` // About Y
	RollDeg  float64 `yaml:"roll_deg"`  // About X
}

// ViewConfig holds camera and scene extent settings.
type ViewConfig struct {
	ElevationDeg float64 `yaml:"elevation_deg"`
	AzimuthDeg   float64 `yaml:"azimuth_deg"`
	Bound        float64 `yaml:"bound"`       // Half-size of the view cube; <= 0 derives it from the mesh
	AxisLength   float64 `yaml:"axis_length"` // Axis triad length; <= 0 derives it from the mesh
	ShowBounds   bool    `yaml:"show_bounds"` // Draw the rotated mesh's bounding box
}

// MeshConfig holds the asset settings.
type MeshConfig struct {
	File     string  `yaml:"file"`     // Asset name, looked up next to the executable then in the working dir
	Decimate float64 `yaml:"decimate"` // Fraction of faces to keep; 0 disables decimation
}

// CaptureConfig holds frame capture settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference animation: 601 frames of
// yaw 60°, pitch 30°, roll 45°.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Quaternion Rotation: Yaw → Pitch → Roll",
			Width:      1400,
			Height:     1100,
			Fullscreen: false,
			VSync:      true,
		},
		Animation: AnimationConfig{
			Frames:     601,
			FrameDelay: time.Millisecond,
			Loop:       true,
		},
		Rotation: RotationConfig{
			YawDeg:   60,
			PitchDeg: 30,
			RollDeg:  45,
		},
		View: ViewConfig{
			ElevationDeg: 30,
			AzimuthDeg:   20,
			Bound:        25000,
			AxisLength:   15000,
		},
		Mesh: MeshConfig{
			File:     "F15.stl",
			Decimate: 0,
		},
		Capture: CaptureConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot drive an animation.
func (c *Config) Validate() error {
	var errs []error
	if c.Animation.Frames < 1 {
		errs = append(errs, fmt.Errorf("animation.frames must be >= 1, got %d", c.Animation.Frames))
	}
	if c.Animation.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("animation.frame_delay must not be negative, got %s", c.Animation.FrameDelay))
	}
	if c.Mesh.File == "" {
		errs = append(errs, errors.New("mesh.file must be set"))
	}
	if c.Mesh.Decimate < 0 || c.Mesh.Decimate >= 1 {
		errs = append(errs, fmt.Errorf("mesh.decimate must be in [0, 1), got %g", c.Mesh.Decimate))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

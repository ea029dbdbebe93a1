// Package main is the entry point for the quaternion rotation visualizer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/app"
	"github.com/Faultbox/quatviz/internal/assets"
	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/frame"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/internal/mesh"
	"github.com/Faultbox/quatviz/internal/rotation"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Quaternion Rotation Visualizer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("visualizer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("visualizer closed normally")
}

func run(cfg *config.Config) error {
	loc := assets.NewLocator(assets.DefaultDirs()...)
	defer loc.Close()

	m, err := mesh.Load(cfg.Mesh.File, mesh.Options{Decimate: cfg.Mesh.Decimate, Locator: loc})
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	radius := m.Radius()
	bound, axisLength, clipped := frame.Extent(cfg.View.Bound, cfg.View.AxisLength, radius)
	if clipped {
		logger.Warn("mesh extends past the view bounds",
			zap.Float64("radius", radius),
			zap.Float64("bound", bound),
		)
	}

	angles := rotation.Angles{
		Yaw:   cfg.Rotation.YawDeg,
		Pitch: cfg.Rotation.PitchDeg,
		Roll:  cfg.Rotation.RollDeg,
	}
	seq := rotation.NewSequence(angles)
	builder := frame.NewBuilder(m, seq, frame.Timeline{Frames: cfg.Animation.Frames}, axisLength)

	logger.Info("rotation sequence ready",
		zap.Float64("yaw_deg", angles.Yaw),
		zap.Float64("pitch_deg", angles.Pitch),
		zap.Float64("roll_deg", angles.Roll),
		zap.Int("frames", cfg.Animation.Frames),
		zap.Float64("axis_length", axisLength),
	)

	a, err := app.New(cfg, builder, bound)
	if err != nil {
		return fmt.Errorf("creating visualizer: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return a.Run(ctx)
}

// Package app hosts the visualizer: it owns the window and GL resources and
// drives the animation through the frame builder, scene and overlay.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/animation"
	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/input"
	"github.com/Faultbox/quatviz/internal/engine/renderer"
	"github.com/Faultbox/quatviz/internal/engine/scene"
	"github.com/Faultbox/quatviz/internal/engine/ui2d"
	"github.com/Faultbox/quatviz/internal/engine/window"
	"github.com/Faultbox/quatviz/internal/frame"
	"github.com/Faultbox/quatviz/internal/logger"
)

// pausedFrameDelay paces redraws while the animation is paused or held.
const pausedFrameDelay = 16 * time.Millisecond

// App is the visualizer instance.
type App struct {
	cfg     *config.Config
	builder *frame.Builder

	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	ui       *ui2d.Renderer
	uiCtx    *ui2d.Context
	input    *input.Input
	camera   *camera.ViewCamera
	capture  *debug.ScreenshotCapture

	width, height int // drawable pixels
	pixelScale    float32

	current        *frame.Frame
	paused         bool
	quit           bool
	capturePending bool

	log *zap.Logger
}

// New creates the window and GL resources. bound is the view cube half-size.
func New(cfg *config.Config, builder *frame.Builder, bound float64) (*App, error) {
	a := &App{
		cfg:     cfg,
		builder: builder,
		log:     logger.Named("app"),
	}

	a.log.Info("initializing visualizer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.width, a.height = a.window.DrawableSize()
	a.pixelScale = a.window.PixelScale()

	// renderer after the window, since the GL context must exist
	a.renderer, err = renderer.New(renderer.Config{
		Width:      a.width,
		Height:     a.height,
		Background: [4]float32{1, 1, 1, 1},
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = int32(a.width)
	sceneCfg.Height = int32(a.height)
	sceneCfg.Bound = float32(bound)
	sceneCfg.LineScale = a.pixelScale
	sceneCfg.ShowBounds = cfg.View.ShowBounds
	if a.scene, err = scene.New(sceneCfg); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	if a.ui, err = ui2d.New(a.width, a.height); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	a.uiCtx = ui2d.NewContext(a.ui)

	if err := renderer.CheckError("setup"); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.camera = camera.NewViewCamera(float32(cfg.View.ElevationDeg), float32(cfg.View.AzimuthDeg), float32(bound))
	a.capture = debug.NewScreenshotCapture(cfg.Capture.Dir, "quatviz")

	a.log.Info("visualizer initialized")
	return a, nil
}

// Run animates until the window is closed, ctx is cancelled or rendering fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	anim := a.cfg.Animation
	driver := animation.NewDriver(
		animation.Frames(anim.Frames, anim.Loop),
		animation.NewPacer(anim.FrameDelay),
	)

	a.log.Info("starting animation",
		zap.Int("frames", anim.Frames),
		zap.Duration("frame_delay", anim.FrameDelay),
		zap.Bool("loop", anim.Loop),
	)

	present := func(i int) error {
		return a.present(ctx, i, false)
	}
	if err := driver.Run(ctx, present); err != nil {
		return err
	}

	// single pass finished: keep showing the last frame until closed
	if !a.quit && ctx.Err() == nil && a.current != nil {
		a.log.Info("animation complete", zap.Int("presented", driver.Presented()))
		err := a.present(ctx, a.current.Index, true)
		if errors.Is(err, animation.ErrStop) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}

// present shows frame i. While paused, or when hold is set, it keeps
// redrawing the same frame and only returns on quit or resume.
func (a *App) present(ctx context.Context, i int, hold bool) error {
	a.current = a.builder.Frame(i)
	a.window.SetTitle(a.current.Title)

	pacer := animation.NewPacer(pausedFrameDelay)
	for {
		if err := a.handleInput(); err != nil {
			return err
		}
		if err := a.draw(); err != nil {
			return err
		}
		a.window.SwapBuffers()

		if !a.paused && !hold {
			return nil
		}
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
}

func (a *App) handleInput() error {
	if a.input.Update() {
		a.log.Info("window closed")
		a.quit = true
		return animation.ErrStop
	}

	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.resize()
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				a.log.Info("escape pressed")
				a.quit = true
				return animation.ErrStop
			case sdl.SCANCODE_SPACE:
				a.paused = !a.paused
				a.log.Info("pause toggled", zap.Bool("paused", a.paused), zap.Int("frame", a.current.Index))
			case sdl.SCANCODE_F12:
				a.capturePending = true
			}
		case input.EventMouseMove:
			if a.input.IsButtonDown(sdl.BUTTON_LEFT) {
				a.camera.HandleDrag(float32(e.DX), float32(e.DY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(e.Wheel)
		}
	}
	return nil
}

func (a *App) resize() {
	w, h := a.window.DrawableSize()
	if w == a.width && h == a.height {
		return
	}
	a.width, a.height = w, h
	a.pixelScale = a.window.PixelScale()

	a.renderer.Resize(w, h)
	a.scene.Resize(int32(w), int32(h))
	a.scene.SetLineScale(a.pixelScale)
	a.ui.Resize(w, h)
}

// draw renders the current frame and overlay to the backbuffer.
func (a *App) draw() error {
	f := a.current
	aspect := float32(a.width) / float32(max(a.height, 1))
	view := a.camera.ViewMatrix()
	proj := a.camera.Projection(aspect)

	tex := a.scene.Render(f, view, proj)

	a.renderer.Begin()
	a.ui.DrawSceneTexture(0, 0, float32(a.width), float32(a.height), tex)

	a.ui.Begin()
	a.drawLabels(a.scene.Labels(proj.Mul(view)))
	a.drawOverlay(f)
	a.drawLegend()
	a.ui.End()

	if a.capturePending {
		a.capturePending = false
		a.saveCapture(f.Index)
	}

	return renderer.CheckError(fmt.Sprintf("frame %d", f.Index))
}

func (a *App) saveCapture(index int) {
	path, err := a.capture.CaptureFromPixels(a.renderer.ReadPixels(), a.width, a.height, index)
	if err != nil {
		a.log.Warn("capture failed", zap.Int("frame", index), zap.Error(err))
		return
	}
	a.log.Info("frame captured", zap.Int("frame", index), zap.String("path", path))
}

// Close releases all resources in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing visualizer")

	if a.ui != nil {
		a.ui.Close()
		a.ui = nil
	}
	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

// Package window opens the SDL2 window that hosts the plot and owns its
// OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

func init() {
	// GL calls are only valid on the thread that created the context.
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an SDL2 window with a current OpenGL 4.1 core context.
type Window struct {
	win *sdl.Window
	ctx sdl.GLContext
	log *zap.Logger
}

// glAttributes requests a 4.1 core context, the newest macOS provides.
// Multisampling is done in an offscreen framebuffer, so the default
// framebuffer only needs colour and depth.
var glAttributes = []struct {
	attr  sdl.GLattr
	value int
}{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},
	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
	{sdl.GL_DOUBLEBUFFER, 1},
	{sdl.GL_DEPTH_SIZE, 24},
	{sdl.GL_RED_SIZE, 8},
	{sdl.GL_GREEN_SIZE, 8},
	{sdl.GL_BLUE_SIZE, 8},
}

// New initialises SDL video, creates the window and makes its GL context
// current. On failure everything created so far is released.
func New(cfg Config) (w *Window, err error) {
	log := logger.Named("window")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	defer func() {
		if err != nil {
			sdl.Quit()
		}
	}()

	for _, a := range glAttributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return nil, fmt.Errorf("gl attribute %d: %w", a.attr, err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create gl context: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("swap interval not supported", zap.Int("interval", interval), zap.Error(err))
	}

	w = &Window{win: win, ctx: ctx, log: log}
	dw, dh := w.DrawableSize()
	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Close releases the context and the window and shuts SDL down.
func (w *Window) Close() {
	w.log.Debug("closing window")
	sdl.GLDeleteContext(w.ctx)
	w.win.Destroy()
	sdl.Quit()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.GLSwap()
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	width, height := w.win.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels. It is larger than
// Size on HiDPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

// PixelScale returns drawable pixels per screen coordinate.
func (w *Window) PixelScale() float32 {
	ww, _ := w.Size()
	dw, _ := w.DrawableSize()
	if ww <= 0 || dw <= 0 {
		return 1
	}
	return float32(dw) / float32(ww)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

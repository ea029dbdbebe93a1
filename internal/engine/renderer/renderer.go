// Package renderer owns OpenGL initialization and the default framebuffer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int // drawable size in pixels
	Height     int
	Background [4]float32
}

// Renderer manages global GL state and the backbuffer.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New initializes OpenGL and sets default state.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := CheckError("initial state"); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}

// Size returns the drawable size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin binds and clears the backbuffer.
func (r *Renderer) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels reads the backbuffer as bottom-up RGBA rows. Call it after
// drawing and before the buffers are swapped.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// CheckError drains the GL error queue and reports the first error.
func CheckError(op string) error {
	first := gl.GetError()
	if first == gl.NO_ERROR {
		return nil
	}
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
	}
	return fmt.Errorf("%s: GL error %s", op, errorName(first))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%x", code)
	}
}

package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes rendered frames to PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing to outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// OutputDir returns the directory screenshots are written to.
func (sc *ScreenshotCapture) OutputDir() string {
	return sc.outputDir
}

// GenerateFilename returns the path a capture of the given frame would use.
func (sc *ScreenshotCapture) GenerateFilename(frame int) string {
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_f%04d.png", sc.prefix, timestamp, frame)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// CaptureFromPixels saves bottom-up RGBA pixel rows, as read back from
// OpenGL, flipping them into a top-down image.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height, frame int) (string, error) {
	img, err := FlipPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img, frame)
}

// CaptureFromImage saves img as a PNG and returns the file path.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image, frame int) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// FlipPixels copies bottom-up RGBA rows into a top-down image.
func FlipPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

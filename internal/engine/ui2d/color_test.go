package ui2d

import (
	"image/color"
	"math"
	"testing"
)

func TestFromNRGBA(t *testing.T) {
	tests := []struct {
		in   color.NRGBA
		want Color
	}{
		{color.NRGBA{0, 0, 0, 0}, Color{0, 0, 0, 0}},
		{color.NRGBA{255, 255, 255, 255}, Color{1, 1, 1, 1}},
		{color.NRGBA{255, 0, 0, 255}, Color{1, 0, 0, 1}},
		{color.NRGBA{51, 102, 204, 128}, Color{0.2, 0.4, 0.8, 128.0 / 255}},
	}
	for _, tt := range tests {
		got := FromNRGBA(tt.in)
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
			t.Errorf("FromNRGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 1}
	got := c.WithAlpha(0.5)
	if got != (Color{0.1, 0.2, 0.3, 0.5}) {
		t.Errorf("WithAlpha = %v", got)
	}
	if c.A != 1 {
		t.Error("WithAlpha modified the receiver")
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

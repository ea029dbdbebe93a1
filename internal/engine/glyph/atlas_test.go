package glyph

import (
	"testing"
)

func cellCoverage(a *Atlas, r rune) int {
	x0, y0 := a.cell(r)
	total := 0
	for y := y0; y < y0+a.CellH; y++ {
		for x := x0; x < x0+a.CellW; x++ {
			total += int(a.Image.AlphaAt(x, y).A)
		}
	}
	return total
}

func TestNewAtlas(t *testing.T) {
	a := NewAtlas()

	if a.CellW != 7 || a.CellH != 13 {
		t.Fatalf("expected 7x13 cells, got %dx%d", a.CellW, a.CellH)
	}

	b := a.Image.Bounds()
	if b.Dx() != 16*7 || b.Dy() != 14*13 {
		t.Errorf("unexpected atlas size %v", b)
	}

	for _, r := range []rune{'A', 'q', '%', '|', '°'} {
		if cellCoverage(a, r) == 0 {
			t.Errorf("glyph %q is empty", r)
		}
	}
	if cellCoverage(a, ' ') != 0 {
		t.Error("space glyph should be empty")
	}
}

func TestUV(t *testing.T) {
	a := NewAtlas()

	u0, v0, u1, v1 := a.UV(' ')
	if u0 != 0 || v0 != 0 {
		t.Errorf("space should be the first cell, got %v,%v", u0, v0)
	}
	if u1 <= u0 || v1 <= v0 {
		t.Errorf("degenerate UV rect %v,%v,%v,%v", u0, v0, u1, v1)
	}

	for _, r := range []rune{'A', 'ÿ'} {
		u0, v0, u1, v1 := a.UV(r)
		for _, v := range []float32{u0, v0, u1, v1} {
			if v < 0 || v > 1 {
				t.Errorf("UV for %q out of range: %v", r, v)
			}
		}
	}

	qu0, qv0, _, _ := a.UV('?')
	fu0, fv0, _, _ := a.UV('→')
	if qu0 != fu0 || qv0 != fv0 {
		t.Error("runes outside the atlas should map to '?'")
	}
}

func TestMeasure(t *testing.T) {
	a := NewAtlas()

	tests := []struct {
		text  string
		scale float32
		w, h  float32
	}{
		{"", 1, 0, 0},
		{"abc", 1, 21, 13},
		{"abc", 2, 42, 26},
		{"Roll:  45°", 1, 70, 13},
		{"a\nbcd", 1, 21, 26},
	}
	for _, tt := range tests {
		w, h := a.Measure(tt.text, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("Measure(%q, %v) = %v,%v; want %v,%v", tt.text, tt.scale, w, h, tt.w, tt.h)
		}
	}
}

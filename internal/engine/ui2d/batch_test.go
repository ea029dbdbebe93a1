package ui2d

import (
	"testing"
)

func TestAppendSolid(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 0.4}
	got := appendSolid(nil, Rect{10, 20, 30, 40}, c)

	if len(got) != 6*solidStride {
		t.Fatalf("len = %d, want %d", len(got), 6*solidStride)
	}
	wantPos := [6][2]float32{{10, 20}, {40, 20}, {40, 60}, {10, 20}, {40, 60}, {10, 60}}
	for i, p := range wantPos {
		v := got[i*solidStride : (i+1)*solidStride]
		if v[0] != p[0] || v[1] != p[1] || v[2] != 0 {
			t.Errorf("vertex %d pos = %v, want %v", i, v[:3], p)
		}
		if v[3] != c.R || v[4] != c.G || v[5] != c.B || v[6] != c.A {
			t.Errorf("vertex %d color = %v", i, v[3:])
		}
	}
}

func TestAppendTexturedUV(t *testing.T) {
	got := appendTextured(nil, Rect{0, 0, 8, 13}, [4]float32{0.25, 0.5, 0.375, 0.75}, ColorText)
	if len(got) != 6*textStride {
		t.Fatalf("len = %d, want %d", len(got), 6*textStride)
	}
	// Top-left and bottom-right corners carry (u0, v0) and (u1, v1).
	if u, v := got[3], got[4]; u != 0.25 || v != 0.5 {
		t.Errorf("top-left uv = (%v, %v)", u, v)
	}
	br := got[2*textStride:]
	if br[0] != 8 || br[1] != 13 || br[3] != 0.375 || br[4] != 0.75 {
		t.Errorf("bottom-right = %v", br[:5])
	}
}

func TestAppendBlitFlipsV(t *testing.T) {
	got := appendBlit(nil, Rect{0, 0, 100, 50})
	if len(got) != 6*sceneStride {
		t.Fatalf("len = %d", len(got))
	}
	// The top of the screen samples the top row of the texture (v = 1).
	if got[3] != 0 || got[4] != 1 {
		t.Errorf("top-left uv = (%v, %v), want (0, 1)", got[3], got[4])
	}
	if bl := got[5*sceneStride:]; bl[1] != 50 || bl[4] != 0 {
		t.Errorf("bottom-left = %v", bl)
	}
}

func TestAppendReusesBuffer(t *testing.T) {
	buf := make([]float32, 0, 64)
	buf = appendSolid(buf, Rect{0, 0, 1, 1}, ColorText)
	buf = appendSolid(buf[:0], Rect{0, 0, 2, 2}, ColorText)
	if len(buf) != 6*solidStride || buf[7] != 2 {
		t.Errorf("reused buffer = %v", buf[:solidStride*2])
	}
}

func TestOutline(t *testing.T) {
	r := Rect{0, 0, 10, 6}
	strips := outline(r, 1)

	var area float32
	for _, s := range strips {
		if s.X < r.X || s.Y < r.Y || s.X+s.W > r.X+r.W || s.Y+s.H > r.Y+r.H {
			t.Errorf("strip %v outside %v", s, r)
		}
		area += s.W * s.H
	}
	// Perimeter cells of a 10x6 grid without overlap.
	if area != 2*10+2*4 {
		t.Errorf("border area = %v, want 28", area)
	}
}

func TestLayoutText(t *testing.T) {
	type placed struct {
		cell Rect
		r    rune
	}
	var got []placed
	layoutText(5, 10, "a b\ncd", 7, 13, func(cell Rect, r rune) {
		got = append(got, placed{cell, r})
	})

	want := []placed{
		{Rect{5, 10, 7, 13}, 'a'},
		{Rect{19, 10, 7, 13}, 'b'},
		{Rect{5, 23, 7, 13}, 'c'},
		{Rect{12, 23, 7, 13}, 'd'},
	}
	if len(got) != len(want) {
		t.Fatalf("placed %d runes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d = %v, want %v", i, got[i], want[i])
		}
	}
}

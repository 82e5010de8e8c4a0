package raster

import (
	"testing"

	colorpkg "growthimage/internal/color"
)

func TestSetThenFilledIsTrue(t *testing.T) {
	r := New(4, 4)
	if r.Filled(1, 1) {
		t.Fatalf("expected (1,1) unfilled before Set")
	}
	r.Set(1, 1, colorpkg.New(10, 20, 30))
	if !r.Filled(1, 1) {
		t.Fatalf("expected (1,1) filled after Set")
	}
	got := r.At(1, 1)
	if got != colorpkg.New(10, 20, 30) {
		t.Fatalf("unexpected color at (1,1): %+v", got)
	}
}

func TestSetTwiceOnSameCellPanics(t *testing.T) {
	r := New(2, 2)
	r.Set(0, 0, colorpkg.New(1, 2, 3))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double-Set")
		}
	}()
	r.Set(0, 0, colorpkg.New(4, 5, 6))
}

func TestClearResetsFilledState(t *testing.T) {
	r := New(3, 3)
	r.Set(0, 0, colorpkg.New(1, 1, 1))
	r.Clear()
	if r.Filled(0, 0) {
		t.Fatalf("expected (0,0) unfilled after Clear")
	}
}

func TestRGBALengthMatchesDimensions(t *testing.T) {
	r := New(5, 3)
	rgba := r.RGBA()
	if len(rgba) != 5*3*4 {
		t.Fatalf("expected %d bytes, got %d", 5*3*4, len(rgba))
	}
}

func TestToImageReflectsSetPixels(t *testing.T) {
	r := New(2, 2)
	r.Set(1, 0, colorpkg.New(255, 0, 0))
	img := r.ToImage()
	rr, gg, bb, aa := img.At(1, 0).RGBA()
	if rr>>8 != 255 || gg>>8 != 0 || bb>>8 != 0 || aa>>8 != 255 {
		t.Fatalf("unexpected pixel via image.Image: %d %d %d %d", rr, gg, bb, aa)
	}
}

func TestFilledOutOfBoundsIsFalse(t *testing.T) {
	r := New(2, 2)
	if r.Filled(-1, 0) || r.Filled(0, 5) {
		t.Fatalf("expected out-of-bounds cells to report unfilled")
	}
}

package render

import (
	"image/color"
	"testing"
)

func TestFillFrontierRGBAMarksOnlyGivenPoints(t *testing.T) {
	buf := make([]byte, 4*3*3)
	tint := color.RGBA{R: 10, G: 20, B: 30, A: 128}
	FillFrontierRGBA(buf, 3, 3, [][2]int{{1, 1}}, tint, [2]int{}, false, color.RGBA{})

	base := (1*3 + 1) * 4
	if buf[base] != 10 || buf[base+1] != 20 || buf[base+2] != 30 || buf[base+3] != 128 {
		t.Fatalf("expected tint at (1,1), got %v", buf[base:base+4])
	}
	if buf[0] != 0 || buf[3] != 0 {
		t.Fatalf("expected (0,0) to remain transparent, got %v", buf[0:4])
	}
}

func TestFillFrontierRGBAMarksGoalSeparately(t *testing.T) {
	buf := make([]byte, 4*2*2)
	goalTint := color.RGBA{R: 255, A: 255}
	FillFrontierRGBA(buf, 2, 2, nil, color.RGBA{}, [2]int{1, 0}, true, goalTint)

	base := (0*2 + 1) * 4
	if buf[base] != 255 || buf[base+3] != 255 {
		t.Fatalf("expected goal tint at (1,0), got %v", buf[base:base+4])
	}
}

func TestFillFrontierRGBAIgnoresOutOfBoundsPoints(t *testing.T) {
	buf := make([]byte, 4*2*2)
	FillFrontierRGBA(buf, 2, 2, [][2]int{{5, 5}, {-1, 0}}, color.RGBA{R: 1, A: 1}, [2]int{}, false, color.RGBA{})
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("expected buffer to remain all zero, got %v", buf)
		}
	}
}

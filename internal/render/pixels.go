package render

import "image/color"

// FillFrontierRGBA writes a translucent tint into buf at every (i, j) in
// points and goal (if present), leaving every other pixel fully
// transparent. buf must be sized 4*w*h. It is pure stdlib so the
// overlay's highlight logic can be exercised without an ebiten build.
func FillFrontierRGBA(buf []byte, w, h int, points [][2]int, tint color.RGBA, goal [2]int, hasGoal bool, goalTint color.RGBA) {
	for i := range buf {
		buf[i] = 0
	}
	for _, p := range points {
		setPixel(buf, w, h, p[0], p[1], tint)
	}
	if hasGoal {
		setPixel(buf, w, h, goal[0], goal[1], goalTint)
	}
}

func setPixel(buf []byte, w, h, x, y int, c color.RGBA) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := (y*w + x) * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

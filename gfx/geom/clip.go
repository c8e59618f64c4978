package geom

// TrimLine clips the segment (x1,y1)-(x2,y2) to the viewport [0,width)x[0,height).
//
// Both endpoints of the result lie inside the viewport and the segment keeps
// its slope. A segment with no visible part collapses to (0,0)-(0,0) and ok
// is false. Vertical segments only clamp, so they never collapse.
// Coordinates are truncated toward zero on the way back to integers.
func TrimLine(x1, y1, x2, y2, width, height int) (nx1, ny1, nx2, ny2 int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, 0, 0, false
	}

	if x1 == x2 {
		x1 = clampInt(x1, 0, width-1)
		return x1, clampInt(y1, 0, height-1), x1, clampInt(y2, 0, height-1), true
	}

	// float32 intermediates keep the slope exact enough for the inverse pass.
	w := float32(width)
	h := float32(height)
	fx1, fy1 := float32(x1), float32(y1)
	fx2, fy2 := float32(x2), float32(y2)

	m := (fy2 - fy1) / (fx2 - fx1)
	c := fy1 - m*fx1

	fx1, fy1 = clipX(fx1, fy1, m, c, w)
	fx2, fy2 = clipX(fx2, fy2, m, c, w)
	fx1, fy1 = clipY(fx1, fy1, m, c, h)
	fx2, fy2 = clipY(fx2, fy2, m, c, h)

	if !inside(fx1, fy1, w, h) || !inside(fx2, fy2, w, h) {
		return 0, 0, 0, 0, false
	}
	return int(fx1), int(fy1), int(fx2), int(fy2), true
}

func clipX(x, y, m, c, w float32) (float32, float32) {
	switch {
	case x < 0:
		return 0, c
	case x >= w:
		return w - 1, (w-1)*m + c
	}
	return x, y
}

func clipY(x, y, m, c, h float32) (float32, float32) {
	if y >= 0 && y < h {
		return x, y
	}
	if m == 0 {
		// Horizontal line entirely above or below the viewport.
		return -1, -1
	}
	if y < 0 {
		return -c / m, 0
	}
	return (h - 1 - c) / m, h - 1
}

// inside is written so that NaN coordinates fail.
func inside(x, y, w, h float32) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

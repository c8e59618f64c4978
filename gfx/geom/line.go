package geom

// HorizontalLine plots the run from (x,y) to (x+dx,y), both ends included.
func HorizontalLine(dx, x, y int, plot PlotFunc) {
	step := sign(dx)
	for i := 0; i <= absInt(dx); i++ {
		plot(x+i*step, y)
	}
}

// VerticalLine plots the run from (x,y) to (x,y+dy), both ends included.
func VerticalLine(dy, x, y int, plot PlotFunc) {
	step := sign(dy)
	for i := 0; i <= absInt(dy); i++ {
		plot(x, y+i*step)
	}
}

// DiagonalLine plots the Bresenham line from (x,y) to (x+dx,y+dy).
//
// The dominant axis advances every step; the minor axis accumulates its delta
// and advances once the accumulator reaches the dominant delta.
func DiagonalLine(dx, dy, x, y int, plot PlotFunc) {
	dxabs := absInt(dx)
	dyabs := absInt(dy)
	sdx := sign(dx)
	sdy := sign(dy)
	px, py := x, y

	plot(px, py)
	if dxabs >= dyabs {
		acc := dxabs >> 1
		for i := 0; i < dxabs; i++ {
			acc += dyabs
			if acc >= dxabs {
				acc -= dxabs
				py += sdy
			}
			px += sdx
			plot(px, py)
		}
		return
	}

	acc := dyabs >> 1
	for i := 0; i < dyabs; i++ {
		acc += dxabs
		if acc >= dyabs {
			acc -= dyabs
			px += sdx
		}
		py += sdy
		plot(px, py)
	}
}

// Line dispatches an unclipped segment to the horizontal, vertical or
// diagonal stepper.
func Line(x1, y1, x2, y2 int, plot PlotFunc) {
	dx := x2 - x1
	dy := y2 - y1
	switch {
	case dy == 0:
		HorizontalLine(dx, x1, y1, plot)
	case dx == 0:
		VerticalLine(dy, x1, y1, plot)
	default:
		DiagonalLine(dx, dy, x1, y1, plot)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

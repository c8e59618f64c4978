package geom

import (
	"math"
	"math/bits"
)

// Circle plots the midpoint circle outline of radius r around (xc,yc).
// Each step emits all eight octant reflections.
func Circle(xc, yc, r int, plot PlotFunc) {
	x := r
	y := 0
	e := 0
	for x >= y {
		plot(xc+x, yc+y)
		plot(xc+y, yc+x)
		plot(xc-y, yc+x)
		plot(xc-x, yc+y)
		plot(xc-x, yc-y)
		plot(xc-y, yc-x)
		plot(xc+y, yc-x)
		plot(xc+x, yc-y)

		y++
		if e <= 0 {
			e += 2*y + 1
		}
		if e > 0 {
			x--
			e -= 2*x + 1
		}
	}
}

// FilledCircle emits the horizontal spans of a solid disc of radius r.
// Spans on the same row may repeat; every row in [yc-r, yc+r] is covered.
func FilledCircle(xc, yc, r int, span SpanFunc) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	xChange := 1 - (r << 1)
	yChange := 0
	radiusError := 0

	for x >= y {
		span(xc-x, xc+x, yc+y)
		span(xc-x, xc+x, yc-y)
		span(xc-y, xc+y, yc+x)
		span(xc-y, xc+y, yc-x)

		y++
		radiusError += yChange
		yChange += 2
		if (radiusError<<1)+xChange > 0 {
			x--
			radiusError += xChange
			xChange += 2
		}
	}
}

// Ellipse plots the outline of an axis-aligned ellipse with radii (a,b)
// using four-way symmetric integer stepping. A zero radius degenerates to a
// line along the other axis.
func Ellipse(xc, yc, a, b int, plot PlotFunc) {
	if a < 0 || b < 0 {
		return
	}
	if a == 0 {
		VerticalLine(2*b, xc, yc-b, plot)
		return
	}
	if b == 0 {
		HorizontalLine(2*a, xc-a, yc, plot)
		return
	}

	aa := int64(a) * int64(a)
	bb := int64(b) * int64(b)
	x := int64(-a)
	y := int64(0)
	err := x*(2*bb+x) + bb
	cx, cy := int64(xc), int64(yc)

	for x <= 0 {
		plot(int(cx-x), int(cy+y))
		plot(int(cx+x), int(cy+y))
		plot(int(cx+x), int(cy-y))
		plot(int(cx-x), int(cy-y))
		e2 := 2 * err
		if e2 >= (x*2+1)*bb {
			x++
			err += (x*2 + 1) * bb
		}
		if e2 <= (y*2+1)*aa {
			y++
			err += (y*2 + 1) * aa
		}
	}
	// Flat ellipses stop early; finish the tips.
	for y < int64(b) {
		y++
		plot(xc, int(cy+y))
		plot(xc, int(cy-y))
	}
}

// InEllipse reports whether offset (x,y) from the center lies inside the
// ellipse with radii (a,b): x²·b² + y²·a² <= a²·b².
//
// The products are formed in 128 bits, so radii up to 2³² do not overflow.
func InEllipse(x, y, a, b int) bool {
	xx := square(x)
	yy := square(y)
	aa := square(a)
	bb := square(b)
	h1, l1 := bits.Mul64(xx, bb)
	h2, l2 := bits.Mul64(yy, aa)
	lo, carry := bits.Add64(l1, l2, 0)
	hi, _ := bits.Add64(h1, h2, carry)
	rh, rl := bits.Mul64(aa, bb)
	return hi < rh || hi == rh && lo <= rl
}

func square(v int) uint64 {
	u := uint64(v)
	if v < 0 {
		u = uint64(-v)
	}
	return u * u
}

// FilledEllipse plots every point of the bounding box that passes InEllipse.
func FilledEllipse(xc, yc, a, b int, plot PlotFunc) {
	if a < 0 || b < 0 {
		return
	}
	fillEllipse(xc, yc, a, b, -a, a, -b, b, plot)
}

// FilledEllipseIn is FilledEllipse limited to the w x h surface at the
// origin. Rows and columns off the surface are never visited, so the work is
// bounded by the surface instead of the radii.
func FilledEllipseIn(xc, yc, a, b, w, h int, plot PlotFunc) {
	if a < 0 || b < 0 {
		return
	}
	fillEllipse(xc, yc, a, b, max(-a, -xc), min(a, w-1-xc), max(-b, -yc), min(b, h-1-yc), plot)
}

// fillEllipse scans offsets [x0,x1] x [y0,y1] from the center.
func fillEllipse(xc, yc, a, b, x0, x1, y0, y1 int, plot PlotFunc) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if InEllipse(x, y, a, b) {
				plot(xc+x, yc+y)
			}
		}
	}
}

// ArcStep is the angular increment, in degrees, used by Arc.
const ArcStep = 0.5

// Arc samples (x + w·cos θ, y + h·sin θ) for θ from start up to, but not
// including, end degrees. Nothing is plotted when w or h is zero.
func Arc(x, y, w, h, start, end int, plot PlotFunc) {
	if w == 0 || h == 0 {
		return
	}
	for angle := float64(start); angle < float64(end); angle += ArcStep {
		rad := math.Pi * angle / 180
		ix := int(float64(w) * math.Cos(rad))
		iy := int(float64(h) * math.Sin(rad))
		plot(x+ix, y+iy)
	}
}

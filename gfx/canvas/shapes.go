package canvas

import (
	"fmt"
	"image"

	"sparkgfx/gfx/geom"
)

// DrawLine draws the segment (x1,y1)-(x2,y2), both ends included, after
// trimming it to the surface.
func (c *Canvas) DrawLine(col Color, x1, y1, x2, y2 int) {
	m := c.s.b.Mode()
	w, h := m.Width, m.Height
	if max(x1, x2) < 0 || max(y1, y2) < 0 || min(x1, x2) >= w || min(y1, y2) >= h {
		return
	}
	x1, y1, x2, y2, ok := geom.TrimLine(x1, y1, x2, y2, w, h)
	if !ok {
		return
	}
	geom.Line(x1, y1, x2, y2, c.plotter(col))
}

// DrawHorizontalLine draws from (x,y) to (x+dx,y).
func (c *Canvas) DrawHorizontalLine(col Color, dx, x, y int) {
	geom.HorizontalLine(dx, x, y, c.plotter(col))
}

// DrawVerticalLine draws from (x,y) to (x,y+dy).
func (c *Canvas) DrawVerticalLine(col Color, dy, x, y int) {
	geom.VerticalLine(dy, x, y, c.plotter(col))
}

// DrawDiagonalLine draws from (x,y) to (x+dx,y+dy) with Bresenham stepping.
func (c *Canvas) DrawDiagonalLine(col Color, dx, dy, x, y int) {
	geom.DiagonalLine(dx, dy, x, y, c.plotter(col))
}

// DrawCircle draws a circle outline. The four extreme points must lie on the
// surface.
func (c *Canvas) DrawCircle(col Color, xc, yc, r int) error {
	if err := c.checkExtremes(xc, yc, r, r); err != nil {
		return err
	}
	geom.Circle(xc, yc, r, c.plotter(col))
	return nil
}

// DrawFilledCircle draws a solid disc. Spans are clipped, so the disc may be
// partly off the surface.
func (c *Canvas) DrawFilledCircle(col Color, xc, yc, r int) {
	if r < 0 {
		return
	}
	geom.FilledCircle(xc, yc, r, func(x0, x1, y int) { c.hspan(col, x0, x1, y) })
}

// DrawEllipse draws an ellipse outline with radii xr and yr. The four
// extreme points must lie on the surface.
func (c *Canvas) DrawEllipse(col Color, xc, yc, xr, yr int) error {
	if err := c.checkExtremes(xc, yc, xr, yr); err != nil {
		return err
	}
	geom.Ellipse(xc, yc, xr, yr, c.plotter(col))
	return nil
}

// DrawFilledEllipse fills every point of the bounding box that lies inside
// the ellipse with radii xr and yr. A clipping Canvas only scans the part of
// the box that is on the surface.
func (c *Canvas) DrawFilledEllipse(col Color, xc, yc, xr, yr int) {
	if xr < 0 || yr < 0 {
		return
	}
	if c.clip {
		m := c.s.b.Mode()
		geom.FilledEllipseIn(xc, yc, xr, yr, m.Width, m.Height, c.plotter(col))
		return
	}
	geom.FilledEllipse(xc, yc, xr, yr, c.plotter(col))
}

// DrawArc samples the ellipse of radii (w,h) around (x,y) from start to end
// degrees.
func (c *Canvas) DrawArc(col Color, x, y, w, h, start, end int) {
	geom.Arc(x, y, w, h, start, end, c.plotter(col))
}

// DrawPolygon connects the points in order and closes the loop.
func (c *Canvas) DrawPolygon(col Color, pts ...image.Point) error {
	if len(pts) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidArgument, len(pts))
	}
	for i := 0; i < len(pts)-1; i++ {
		c.DrawLine(col, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
	last := pts[len(pts)-1]
	c.DrawLine(col, last.X, last.Y, pts[0].X, pts[0].Y)
	return nil
}

func (c *Canvas) DrawSquare(col Color, x, y, size int) {
	c.DrawRectangle(col, x, y, size, size)
}

// DrawRectangle draws the outline with corners (x,y) and (x+w,y+h).
func (c *Canvas) DrawRectangle(col Color, x, y, w, h int) {
	c.DrawLine(col, x, y, x+w, y)
	c.DrawLine(col, x, y, x, y+h)
	c.DrawLine(col, x, y+h, x+w, y+h)
	c.DrawLine(col, x+w, y, x+w, y+h)
}

// DrawFilledRectangle fills the w x h rectangle at (x,y). The rectangle is
// trimmed to the surface first; nothing is drawn if it ends up empty.
func (c *Canvas) DrawFilledRectangle(col Color, x, y, w, h int) {
	if c.clip {
		m := c.s.b.Mode()
		dx := max(0, -x)
		dy := max(0, -y)
		w = min(w-dx, m.Width-max(0, x))
		h = min(h-dy, m.Height-max(0, y))
		x = max(0, x)
		y = max(0, y)
	}
	if w <= 0 || h <= 0 {
		return
	}
	if rf, ok := c.s.b.(RectFiller); ok && c.clip {
		rf.FillRect(x, y, w, h, col)
		return
	}
	for row := y; row < y+h; row++ {
		geom.HorizontalLine(w-1, x, row, c.plotter(col))
	}
}

func (c *Canvas) DrawTriangle(col Color, x1, y1, x2, y2, x3, y3 int) {
	c.DrawLine(col, x1, y1, x2, y2)
	c.DrawLine(col, x1, y1, x3, y3)
	c.DrawLine(col, x2, y2, x3, y3)
}

// hspan fills [x0,x1] on row y.
func (c *Canvas) hspan(col Color, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if c.clip {
		m := c.s.b.Mode()
		if y < 0 || y >= m.Height {
			return
		}
		x0 = max(x0, 0)
		x1 = min(x1, m.Width-1)
		if x0 > x1 {
			return
		}
		if rf, ok := c.s.b.(RectFiller); ok {
			rf.FillRect(x0, y, x1-x0+1, 1, col)
			return
		}
	}
	for x := x0; x <= x1; x++ {
		c.DrawPoint(col, x, y)
	}
}

func (c *Canvas) checkExtremes(xc, yc, xr, yr int) error {
	if xr < 0 || yr < 0 {
		return fmt.Errorf("%w: negative radius (%d,%d)", ErrInvalidArgument, xr, yr)
	}
	for _, p := range [...]image.Point{{xc + xr, yc}, {xc - xr, yc}, {xc, yc + yr}, {xc, yc - yr}} {
		if err := c.checkCoord(p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

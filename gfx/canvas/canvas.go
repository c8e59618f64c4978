package canvas

import "fmt"

// Canvas draws shapes, images and text onto a Backend.
type Canvas struct {
	s    *surface
	clip bool
}

// surface is shared by a Canvas and its Unclipped views. The backend owns
// the mode; geo caches the geometry derived for geoMode.
type surface struct {
	b       Backend
	geoMode Mode
	geo     Geometry
}

// New wraps b. The active mode is always read from b, so a mode switch made
// on the backend directly is seen by the Canvas.
func New(b Backend) *Canvas {
	return &Canvas{s: &surface{b: b}, clip: true}
}

// Unclipped returns a view of the same surface that does not drop points
// outside the surface before handing them to the backend.
func (c *Canvas) Unclipped() *Canvas {
	return &Canvas{s: c.s, clip: false}
}

// Clipped returns a view of the same surface with point clipping on.
func (c *Canvas) Clipped() *Canvas {
	return &Canvas{s: c.s, clip: true}
}

func (c *Canvas) Backend() Backend       { return c.s.b }
func (c *Canvas) Name() string           { return c.s.b.Name() }
func (c *Canvas) Mode() Mode             { return c.s.b.Mode() }
func (c *Canvas) Width() int             { return c.s.b.Mode().Width }
func (c *Canvas) Height() int            { return c.s.b.Mode().Height }
func (c *Canvas) AvailableModes() []Mode { return c.s.b.AvailableModes() }
func (c *Canvas) DefaultMode() Mode      { return c.s.b.DefaultMode() }

// Geometry describes the memory layout of the active mode. Backends that
// implement GeometryProvider report their own, which may carry a padded
// pitch; otherwise it is GeometryOf the mode.
func (c *Canvas) Geometry() Geometry {
	if g, ok := c.s.b.(GeometryProvider); ok {
		return g.Geometry()
	}
	m := c.s.b.Mode()
	if m != c.s.geoMode || c.s.geo.BytesPerPixel == 0 {
		c.s.geoMode = m
		c.s.geo = GeometryOf(m)
	}
	return c.s.geo
}

// SetMode switches to m, which must be one of AvailableModes.
func (c *Canvas) SetMode(m Mode) error {
	if !Contains(c.s.b.AvailableModes(), m) {
		return fmt.Errorf("%w: %s is not supported by %s", ErrUnsupportedMode, m, c.s.b.Name())
	}
	return c.s.b.SetMode(m)
}

// PointOffset returns the byte offset of (x,y) in the active geometry.
func (c *Canvas) PointOffset(x, y int) int {
	return c.Geometry().Offset(x, y)
}

// Display flushes the backend.
func (c *Canvas) Display() error { return c.s.b.Display() }

// Disable takes the device out of graphics mode.
func (c *Canvas) Disable() { c.s.b.Disable() }

func (c *Canvas) inBounds(x, y int) bool {
	m := c.s.b.Mode()
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Clear fills the whole surface with col.
func (c *Canvas) Clear(col Color) {
	if f, ok := c.s.b.(Filler); ok {
		f.Fill(col)
		return
	}
	m := c.s.b.Mode()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c.s.b.SetPixel(x, y, col)
		}
	}
}

// Blank clears the surface to black.
func (c *Canvas) Blank() { c.Clear(Black) }

// ClearRaw fills the whole surface with a device-native value.
func (c *Canvas) ClearRaw(raw uint32) {
	if f, ok := c.s.b.(Filler); ok {
		f.FillRaw(raw)
		return
	}
	m := c.s.b.Mode()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c.s.b.SetRawPixel(x, y, raw)
		}
	}
}

// DrawPoint sets one pixel. Every other drawing operation ends here.
func (c *Canvas) DrawPoint(col Color, x, y int) {
	if c.clip && !c.inBounds(x, y) {
		return
	}
	c.s.b.SetPixel(x, y, col)
}

// DrawRawPoint sets one pixel to a device-native value.
func (c *Canvas) DrawRawPoint(raw uint32, x, y int) {
	if c.clip && !c.inBounds(x, y) {
		return
	}
	c.s.b.SetRawPixel(x, y, raw)
}

// PointColor reads back the pixel at (x,y).
func (c *Canvas) PointColor(x, y int) Color {
	if !c.inBounds(x, y) {
		return Color{}
	}
	return c.s.b.Pixel(x, y)
}

// RawPointColor reads back the device-native value at (x,y).
func (c *Canvas) RawPointColor(x, y int) uint32 {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.s.b.RawPixel(x, y)
}

func (c *Canvas) plotter(col Color) func(x, y int) {
	return func(x, y int) { c.DrawPoint(col, x, y) }
}

func (c *Canvas) checkCoord(x, y int) error {
	m := c.s.b.Mode()
	if x < 0 || x >= m.Width {
		return fmt.Errorf("%w: x coordinate (%d) is not between 0 and %d", ErrOutOfRange, x, m.Width)
	}
	if y < 0 || y >= m.Height {
		return fmt.Errorf("%w: y coordinate (%d) is not between 0 and %d", ErrOutOfRange, y, m.Height)
	}
	return nil
}

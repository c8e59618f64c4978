package canvas

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Canvas to the TinyGo display driver interface so
// tinyfont and tinyterm can draw on it.
type Displayer struct {
	c *Canvas
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns a driver view of c. It shares c's clipping setting.
func (c *Canvas) Displayer() *Displayer {
	return &Displayer{c: c}
}

func (d *Displayer) Size() (x, y int16) {
	return int16(d.c.Width()), int16(d.c.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.c.DrawPoint(FromStd(c), int(x), int(y))
}

func (d *Displayer) Display() error { return d.c.Display() }

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.c.DrawFilledRectangle(FromStd(c), int(x), int(y), int(width), int(height))
	return nil
}

// SetScroll is a no-op: there is no hardware scroll register behind a Canvas.
func (d *Displayer) SetScroll(line int16) {
	_ = line
}

// SetRotation only accepts the unrotated orientation.
func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	if rotation != 0 {
		return fmt.Errorf("%w: rotation %d", ErrInvalidArgument, rotation)
	}
	return nil
}

// ScrollUp moves the surface content up by lines rows and fills the exposed
// bottom band with bg. Pixels are moved as device-native values, so indexed
// devices keep their exact palette entries.
func (d *Displayer) ScrollUp(lines int16, bg color.RGBA) error {
	n := int(lines)
	w, h := d.c.Width(), d.c.Height()
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	if n >= h {
		d.c.DrawFilledRectangle(FromStd(bg), 0, 0, w, h)
		return nil
	}
	for y := 0; y < h-n; y++ {
		for x := 0; x < w; x++ {
			d.c.DrawRawPoint(d.c.RawPointColor(x, y+n), x, y)
		}
	}
	d.c.DrawFilledRectangle(FromStd(bg), 0, h-n, w, n)
	return nil
}

package canvas

import (
	"fmt"

	"tinygo.org/x/tinyfont"
)

// DrawString draws s with a fixed-width bitmap font, advancing f.Width
// pixels per character. Characters above 0xFF are drawn as '?'.
func (c *Canvas) DrawString(s string, f *Font, col Color, x, y int) error {
	if err := f.validate(); err != nil {
		return err
	}
	for _, r := range s {
		ch := byte('?')
		if r <= 0xFF {
			ch = byte(r)
		}
		c.drawChar(ch, f, col, x, y)
		x += f.Width
	}
	return nil
}

// DrawChar draws one glyph with its top-left corner at (x,y). Only set bits
// are drawn; the background is left untouched.
func (c *Canvas) DrawChar(ch byte, f *Font, col Color, x, y int) error {
	if err := f.validate(); err != nil {
		return err
	}
	c.drawChar(ch, f, col, x, y)
	return nil
}

func (c *Canvas) drawChar(ch byte, f *Font, col Color, x, y int) {
	g := f.Glyph(ch)
	if g == nil {
		return
	}
	rb := f.RowBytes()
	m := c.s.b.Mode()
	for cy := 0; cy < f.Height; cy++ {
		dy := y + cy
		if c.clip && (dy < 0 || dy >= m.Height) {
			continue
		}
		row := g[cy*rb : (cy+1)*rb]
		for cx := 0; cx < f.Width; cx++ {
			dx := x + cx
			if c.clip && (dx < 0 || dx >= m.Width) {
				continue
			}
			if BitSet(row[cx/8], cx%8) {
				c.DrawPoint(col, dx, dy)
			}
		}
	}
}

// DrawText renders s with a tinyfont font. y is the baseline, as in
// tinyfont.WriteLine.
func (c *Canvas) DrawText(f tinyfont.Fonter, col Color, x, y int, s string) {
	if f == nil {
		return
	}
	tinyfont.WriteLine(c.Displayer(), f, int16(x), int16(y), s, col.Std())
}

func (f *Font) validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil font", ErrInvalidArgument)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: font cell %dx%d", ErrInvalidArgument, f.Width, f.Height)
	}
	return nil
}

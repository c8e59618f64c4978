package canvas

import (
	"fmt"

	"sparkgfx/gfx/geom"
)

// DrawImage copies img to (x,y). A clipping Canvas stops at the right and
// bottom edges of the surface.
func (c *Canvas) DrawImage(img *Image, x, y int) error {
	if err := img.validate(); err != nil {
		return err
	}
	c.blit(img.RawData, img.Width, img.Width, img.Height, x, y)
	return nil
}

// DrawScaledImage draws img resized to w x h with nearest-neighbor sampling.
// A zero or negative target size draws nothing. No scaled copy is built:
// each destination pixel is sampled as it is drawn, and a clipping Canvas
// only samples the part of the target that is on the surface.
func (c *Canvas) DrawScaledImage(img *Image, x, y, w, h int) error {
	if err := img.validate(); err != nil {
		return err
	}
	s, ok := geom.NewSampler(img.Width, img.Height, w, h)
	if !ok {
		return nil
	}
	j0, i0, j1, i1 := 0, 0, w, h
	if c.clip {
		m := c.s.b.Mode()
		j0, i0 = max(0, -x), max(0, -y)
		j1, i1 = min(w, m.Width-x), min(h, m.Height-y)
	}
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			c.DrawPoint(FromARGB(uint32(img.RawData[s.Index(j, i)])), x+j, y+i)
		}
	}
	return nil
}

// DrawCroppedImage draws at most maxW x maxH pixels from the top-left corner
// of img.
func (c *Canvas) DrawCroppedImage(img *Image, x, y, maxW, maxH int) error {
	if err := img.validate(); err != nil {
		return err
	}
	w := min(img.Width, maxW)
	h := min(img.Height, maxH)
	if w <= 0 || h <= 0 {
		return nil
	}
	c.blit(img.RawData, img.Width, w, h, x, y)
	return nil
}

// DrawImageAlpha composites img over the surface using each source pixel's
// alpha: 0 leaves the destination alone, 255 replaces it, anything between
// is mixed with AlphaBlend.
func (c *Canvas) DrawImageAlpha(img *Image, x, y int) error {
	if err := img.validate(); err != nil {
		return err
	}
	w, h := c.extent(img.Width, img.Height, x, y)
	for yi := 0; yi < h; yi++ {
		row := yi * img.Width
		for xi := 0; xi < w; xi++ {
			src := FromARGB(uint32(img.RawData[row+xi]))
			px, py := x+xi, y+yi
			switch src.A {
			case 0:
			case 0xFF:
				c.DrawPoint(src, px, py)
			default:
				c.DrawPoint(AlphaBlend(src, c.PointColor(px, py), src.A), px, py)
			}
		}
	}
	return nil
}

// DrawArray draws a w x h block of colors, row-major, at (x,y).
func (c *Canvas) DrawArray(colors []Color, x, y, w, h int) error {
	if err := checkArray(len(colors), 0, w, h); err != nil {
		return err
	}
	for yi := 0; yi < h; yi++ {
		for xi := 0; xi < w; xi++ {
			c.DrawPoint(colors[yi*w+xi], x+xi, y+yi)
		}
	}
	return nil
}

// DrawArrayARGB draws a w x h block of packed ARGB values at (x,y).
func (c *Canvas) DrawArrayARGB(argb []int32, x, y, w, h int) error {
	return c.DrawArrayARGBFrom(argb, 0, x, y, w, h)
}

// DrawArrayARGBFrom is DrawArrayARGB reading the block from argb[start:].
func (c *Canvas) DrawArrayARGBFrom(argb []int32, start, x, y, w, h int) error {
	if err := checkArray(len(argb), start, w, h); err != nil {
		return err
	}
	for yi := 0; yi < h; yi++ {
		for xi := 0; xi < w; xi++ {
			c.DrawPoint(FromARGB(uint32(argb[start+yi*w+xi])), x+xi, y+yi)
		}
	}
	return nil
}

// Image copies the w x h region at (x,y) into a new Image by reading back
// device-native pixel values. Pixels off the surface read as 0.
func (c *Canvas) Image(x, y, w, h int) (*Image, error) {
	img, err := NewImage(w, h)
	if err != nil {
		return nil, err
	}
	for yi := 0; yi < h; yi++ {
		for xi := 0; xi < w; xi++ {
			img.RawData[yi*w+xi] = int32(c.RawPointColor(x+xi, y+yi))
		}
	}
	return img, nil
}

// Capture is like Image but stores each pixel as ARGB regardless of how the
// device encodes it.
func (c *Canvas) Capture(x, y, w, h int) (*Image, error) {
	img, err := NewImage(w, h)
	if err != nil {
		return nil, err
	}
	for yi := 0; yi < h; yi++ {
		for xi := 0; xi < w; xi++ {
			img.RawData[yi*w+xi] = int32(c.PointColor(x+xi, y+yi).ARGB())
		}
	}
	return img, nil
}

// blit draws the top-left w x h block of a row-major ARGB slice whose rows
// are pitch pixels long.
func (c *Canvas) blit(pixels []int32, pitch, w, h, x, y int) {
	w, h = c.extent(w, h, x, y)
	for yi := 0; yi < h; yi++ {
		row := yi * pitch
		for xi := 0; xi < w; xi++ {
			c.DrawPoint(FromARGB(uint32(pixels[row+xi])), x+xi, y+yi)
		}
	}
}

// extent limits a w x h block at (x,y) to the right and bottom edges when
// clipping is on.
func (c *Canvas) extent(w, h, x, y int) (int, int) {
	if !c.clip {
		return w, h
	}
	m := c.s.b.Mode()
	return min(w, m.Width-x), min(h, m.Height-y)
}

func checkArray(n, start, w, h int) error {
	if w < 0 || h < 0 || start < 0 {
		return fmt.Errorf("%w: array block %dx%d from %d", ErrInvalidArgument, w, h, start)
	}
	if start+w*h > n {
		return fmt.Errorf("%w: array has %d values, block %dx%d from %d needs %d", ErrInvalidArgument, n, w, h, start, start+w*h)
	}
	return nil
}

// Package fonts builds fixed-width canvas fonts from golang.org/x/image faces
// and exposes canvas fonts to tinyfont.
package fonts

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"sparkgfx/gfx/canvas"
)

// Bitmap is a canvas font plus the baseline position tinyfont needs.
type Bitmap struct {
	*canvas.Font
	// Ascent is the number of rows above the baseline.
	Ascent int
}

// FromFace rasterizes the byte range of a monospace face into a canvas font.
// Control characters and runes the face lacks are left blank.
func FromFace(face font.Face) *Bitmap {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	adv, ok := face.GlyphAdvance('M')
	width := adv.Ceil()
	if !ok || width <= 0 {
		width = 8
	}

	f := &canvas.Font{Width: width, Height: height}
	rb := f.RowBytes()
	f.Data = make([]byte, 256*height*rb)

	dot := fixed.P(0, ascent)
	for c := 0; c < 256; c++ {
		if c < 0x20 || (c >= 0x7F && c < 0xA0) {
			continue
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(c))
		if !ok || mask == nil {
			continue
		}
		base := c * height * rb
		for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, height); y++ {
			for x := max(dr.Min.X, 0); x < min(dr.Max.X, width); x++ {
				p := maskp.Add(image.Pt(x-dr.Min.X, y-dr.Min.Y))
				if _, _, _, a := mask.At(p.X, p.Y).RGBA(); a < 0x8000 {
					continue
				}
				f.Data[base+y*rb+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return &Bitmap{Font: f, Ascent: ascent}
}

var (
	defaultOnce sync.Once
	defaultFont *Bitmap
)

// Default is the 7x13 fixed font from basicfont.
func Default() *Bitmap {
	defaultOnce.Do(func() {
		defaultFont = FromFace(basicfont.Face7x13)
	})
	return defaultFont
}

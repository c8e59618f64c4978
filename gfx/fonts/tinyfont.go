package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter exposes b through tinyfont so it can be used with tinyfont.WriteLine
// and tinyterm. Runes above 0xFF render as '?'.
//
// The returned value reuses one glyph; concurrent use is not safe.
func (b *Bitmap) Fonter() tinyfont.Fonter {
	return &fonter{b: b, g: glyph{b: b}}
}

type fonter struct {
	b *Bitmap
	g glyph
}

type glyph struct {
	b *Bitmap
	r rune
}

func (f *fonter) GetYAdvance() uint8 { return uint8(f.b.Height) }

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(g.b.Width),
		Height:   uint8(g.b.Height),
		XAdvance: uint8(g.b.Width),
		XOffset:  0,
		YOffset:  int8(-g.b.Ascent),
	}
}

// Draw paints the set bits with (x,y) on the baseline.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	ch := byte('?')
	if g.r >= 0 && g.r <= 0xFF {
		ch = byte(g.r)
	}
	top := y - int16(g.b.Ascent)
	for row := 0; row < g.b.Height; row++ {
		for col := 0; col < g.b.Width; col++ {
			if g.b.Set(ch, col, row) {
				display.SetPixel(x+int16(col), top+int16(row), c)
			}
		}
	}
}

// Package console is a VT100-style text console drawn on a Canvas.
package console

import (
	"fmt"
	"sync"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"

	"sparkgfx/gfx/canvas"
	"sparkgfx/gfx/fonts"
)

// Console renders text with tinyterm. It scrolls in software by moving
// surface pixels, so it works on every backend.
type Console struct {
	mu     sync.Mutex
	c      *canvas.Canvas
	d      *canvas.Displayer
	font   tinyfont.Fonter
	cellW  int
	cellH  int16
	offset int16
	t      *tinyterm.Terminal
	dirty  bool
}

// New clears c and starts a console at its top-left corner. A nil font means
// fonts.Default.
func New(c *canvas.Canvas, font *fonts.Bitmap) *Console {
	if font == nil {
		font = fonts.Default()
	}
	con := &Console{
		c:      c,
		d:      c.Displayer(),
		font:   font.Fonter(),
		cellW:  font.Width,
		cellH:  int16(font.Height),
		offset: int16(font.Ascent),
	}
	con.Reset()
	return con
}

// NewFonter is New for any monospace tinyfont font. The cell size comes
// from fonts.TerminalMetrics.
func NewFonter(c *canvas.Canvas, font tinyfont.Fonter) (*Console, error) {
	h, off, err := fonts.TerminalMetrics(font)
	if err != nil {
		return nil, err
	}
	_, w := tinyfont.LineWidth(font, "0")
	if w == 0 {
		return nil, fmt.Errorf("%w: font has no '0' glyph", canvas.ErrInvalidArgument)
	}
	con := &Console{c: c, d: c.Displayer(), font: font, cellW: int(w), cellH: h, offset: off}
	con.Reset()
	return con, nil
}

// Reset clears the surface and homes the cursor.
func (con *Console) Reset() {
	con.mu.Lock()
	defer con.mu.Unlock()
	con.c.Clear(canvas.Black)
	con.t = tinyterm.NewTerminal(con.d)
	con.t.Configure(&tinyterm.Config{
		Font:              con.font,
		FontHeight:        con.cellH,
		FontOffset:        con.offset,
		UseSoftwareScroll: true,
	})
	con.dirty = true
}

// Cols and Rows report the text grid size.
func (con *Console) Cols() int { return con.c.Width() / con.cellW }
func (con *Console) Rows() int { return con.c.Height() / int(con.cellH) }

func (con *Console) Write(p []byte) (int, error) {
	con.mu.Lock()
	defer con.mu.Unlock()
	n, err := con.t.Write(p)
	if n > 0 {
		con.dirty = true
	}
	return n, err
}

func (con *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(con, format, args...)
}

// Flush displays the canvas if anything was written since the last flush.
func (con *Console) Flush() error {
	con.mu.Lock()
	defer con.mu.Unlock()
	if !con.dirty {
		return nil
	}
	con.dirty = false
	return con.c.Display()
}

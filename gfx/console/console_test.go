package console

import (
	"testing"

	"sparkgfx/gfx/canvas"
	"sparkgfx/gfx/fb"
	"sparkgfx/gfx/fonts"
	"sparkgfx/hal"
)

func newConsole(t *testing.T, w, h int) (*Console, *canvas.Canvas, *hal.HostFramebuffer) {
	t.Helper()
	dev, err := hal.NewHostFramebuffer(w, h, hal.PixelFormatXRGB8888)
	if err != nil {
		t.Fatalf("NewHostFramebuffer: %v", err)
	}
	c, _, err := fb.NewCanvas(dev)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Clear(canvas.Blue)
	return New(c, nil), c, dev
}

func lit(c *canvas.Canvas, x0, y0, w, h int) int {
	n := 0
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if p := c.PointColor(x, y); p.R > 0x80 && p.G > 0x80 {
				n++
			}
		}
	}
	return n
}

func TestNewClears(t *testing.T) {
	con, c, _ := newConsole(t, 70, 39)
	if got := c.PointColor(69, 38); got != canvas.Black {
		t.Fatalf("corner=%v", got)
	}
	if con.Cols() != 10 || con.Rows() != 3 {
		t.Fatalf("grid %dx%d", con.Cols(), con.Rows())
	}
}

func TestWriteDrawsInCells(t *testing.T) {
	con, c, _ := newConsole(t, 70, 39)
	con.Printf("A")
	if lit(c, 0, 0, 7, 13) == 0 {
		t.Fatalf("first cell is empty")
	}
	if lit(c, 7, 0, 63, 39) != 0 {
		t.Fatalf("pixels outside the first cell")
	}
	con.Printf("\nB")
	if lit(c, 0, 13, 7, 13) == 0 {
		t.Fatalf("second row is empty")
	}
}

func TestScrollMovesRowsUp(t *testing.T) {
	con, c, _ := newConsole(t, 70, 39)
	con.Printf("A\nB\nC")
	bottom := lit(c, 0, 26, 7, 13)
	if bottom == 0 {
		t.Fatalf("third row is empty")
	}
	con.Printf("\n")
	if got := lit(c, 0, 13, 7, 13); got != bottom {
		t.Fatalf("'C' moved up with %d pixels, want %d", got, bottom)
	}
	if got := lit(c, 0, 26, 70, 13); got != 0 {
		t.Fatalf("new row has %d pixels", got)
	}
}

func TestFlushOnlyWhenDirty(t *testing.T) {
	con, _, dev := newConsole(t, 70, 39)
	if err := con.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := con.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if dev.Presents() != 1 {
		t.Fatalf("presents=%d, want 1", dev.Presents())
	}
	con.Printf("x")
	_ = con.Flush()
	if dev.Presents() != 2 {
		t.Fatalf("presents=%d, want 2", dev.Presents())
	}
}

func TestColorEscape(t *testing.T) {
	con, c, _ := newConsole(t, 70, 39)
	con.Printf("\x1b[31mX")
	red := 0
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			if p := c.PointColor(x, y); p.R > 0x80 && p.G == 0 {
				red++
			}
		}
	}
	if red == 0 {
		t.Fatalf("no red pixels")
	}
}

func TestNewFonterUsesMetrics(t *testing.T) {
	dev, err := hal.NewHostFramebuffer(70, 39, hal.PixelFormatRGB565)
	if err != nil {
		t.Fatalf("NewHostFramebuffer: %v", err)
	}
	c, _, err := fb.NewCanvas(dev)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	con, err := NewFonter(c, fonts.Default().Fonter())
	if err != nil {
		t.Fatalf("NewFonter: %v", err)
	}
	if con.Cols() != 10 || con.Rows() != 3 {
		t.Fatalf("grid %dx%d", con.Cols(), con.Rows())
	}
	con.Printf("M")
	if lit(c, 0, 0, 7, 13) == 0 {
		t.Fatalf("nothing drawn")
	}
	if _, err := NewFonter(c, nil); err == nil {
		t.Fatalf("nil font accepted")
	}
}

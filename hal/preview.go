package hal

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"
)

// WritePreview prints img to w as 24-bit ANSI half blocks sized to the
// terminal. Nothing is written when w is not a terminal.
func WritePreview(w io.Writer, img image.Image) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return err
	}
	return RenderPreview(w, img, cols, rows-1)
}

// RenderPreview scales img into at most cols x rows character cells, two
// pixels per cell, keeping its aspect ratio.
func RenderPreview(w io.Writer, img image.Image, cols, rows int) error {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return nil
	}
	outW := cols
	outH := b.Dy() * outW / b.Dx()
	if outH > rows*2 {
		outH = rows * 2
		outW = max(b.Dx()*outH/b.Dy(), 1)
	}
	outH = max(outH&^1, 2)

	sample := func(x, y int) (uint8, uint8, uint8) {
		sx := b.Min.X + x*b.Dx()/outW
		sy := b.Min.Y + y*b.Dy()/outH
		r, g, bb, _ := img.At(sx, sy).RGBA()
		return uint8(r >> 8), uint8(g >> 8), uint8(bb >> 8)
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < outH; y += 2 {
		for x := 0; x < outW; x++ {
			tr, tg, tb := sample(x, y)
			br, bg, bb := sample(x, y+1)
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"sparkgfx/gfx/bitmap"
	"sparkgfx/gfx/canvas"
	"sparkgfx/gfx/fonts"
	"sparkgfx/hal"
)

const spriteSize = 32

type benchTest struct {
	name string
	ops  uint64
	run  func()
}

type testResult struct {
	name  string
	dur   time.Duration
	score uint64
}

// bench draws one test per tick. The first pass over the list is timed and
// logged; later passes only redraw.
type bench struct {
	c    *canvas.Canvas
	log  hal.Logger
	font *fonts.Bitmap

	sprite *canvas.Image
	tests  []benchTest
	next   int

	results    []testResult
	totalScore uint64
	done       bool
}

func newBench(c *canvas.Canvas, log hal.Logger) *bench {
	b := &bench{c: c, log: log, font: fonts.Default(), sprite: makeSprite(spriteSize)}
	b.tests = b.benchmarks()
	return b
}

func (b *bench) step() error {
	if len(b.tests) == 0 {
		return nil
	}
	test := b.tests[b.next]
	start := time.Now()
	test.run()
	dur := time.Since(start)
	if err := b.c.Display(); err != nil {
		return err
	}
	if !b.done {
		score := scoreFromOps(test.ops, dur)
		b.results = append(b.results, testResult{name: test.name, dur: dur, score: score})
		b.totalScore += score
		b.logf("bench: %s %s %d", test.name, dur, score)
	}
	b.advance()
	return nil
}

func (b *bench) skip() { b.advance() }

func (b *bench) advance() {
	b.next++
	if b.next < len(b.tests) {
		return
	}
	b.next = 0
	if !b.done {
		b.done = true
		b.logf("bench: total %d", b.totalScore)
	}
}

func (b *bench) logf(format string, args ...any) {
	if b.log != nil {
		b.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// scoreFromOps is operations per millisecond.
func scoreFromOps(ops uint64, d time.Duration) uint64 {
	us := uint64(d / time.Microsecond)
	if us == 0 {
		us = 1
	}
	return ops * 1000 / us
}

func (b *bench) benchmarks() []benchTest {
	w, h := b.c.Width(), b.c.Height()
	baseOps := uint64(w * h)
	return []benchTest{
		{name: "Fill", ops: baseOps * 5, run: b.testFill},
		{name: "Text", ops: baseOps / 2, run: b.testText},
		{name: "Pixels", ops: baseOps, run: b.testPixels},
		{name: "Lines", ops: baseOps, run: b.testLines},
		{name: "Fast lines", ops: baseOps, run: b.testFastLines},
		{name: "Rects", ops: baseOps, run: b.testRects},
		{name: "Filled rects", ops: baseOps, run: b.testFilledRects},
		{name: "Circles", ops: baseOps, run: b.testCircles},
		{name: "Filled circles", ops: baseOps, run: b.testFilledCircles},
		{name: "Ellipses", ops: baseOps, run: b.testEllipses},
		{name: "Arcs", ops: baseOps / 2, run: b.testArcs},
		{name: "Triangles", ops: baseOps, run: b.testTriangles},
		{name: "Polygons", ops: baseOps / 2, run: b.testPolygons},
		{name: "Images", ops: baseOps, run: b.testImages},
		{name: "Alpha images", ops: baseOps, run: b.testAlphaImages},
		{name: "Scaled images", ops: baseOps, run: b.testScaledImages},
		{name: "Arrays", ops: baseOps, run: b.testArrays},
		{name: "Readback", ops: baseOps, run: b.testReadback},
	}
}

func (b *bench) testFill() {
	for _, col := range []canvas.Color{canvas.White, canvas.Red, canvas.Green, canvas.Blue, canvas.Black} {
		b.c.Clear(col)
	}
}

func (b *bench) testText() {
	b.c.Clear(canvas.Black)
	f := b.font
	_ = b.c.DrawString("Canvas benchmark", f.Font, canvas.White, 10, 10)
	_ = b.c.DrawString("Shapes, fills, lines, text", f.Font, canvas.Gray, 10, 10+f.Height+1)
	b.c.DrawText(f.Fonter(), canvas.Cyan, 10, 10+3*(f.Height+1), "Enter: next  Esc: quit")
	for y := 10 + 4*(f.Height+1); y+f.Height <= b.c.Height(); y += f.Height {
		_ = b.c.DrawString("The quick brown fox jumps over the lazy dog 0123456789", f.Font, canvas.Yellow, 0, y)
	}
}

func (b *bench) testPixels() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.c.DrawPoint(canvas.RGB(uint8(x), uint8(y), uint8(x*y)), x, y)
		}
	}
}

func (b *bench) testLines() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	col := canvas.RGB(0x00, 0x80, 0xFF)
	for x := 0; x < w; x += 6 {
		b.c.DrawLine(col, 0, 0, x, h-1)
	}
	for y := 0; y < h; y += 6 {
		b.c.DrawLine(col, 0, 0, w-1, y)
	}
	// Mostly off-surface lines exercise clipping.
	b.c.DrawLine(canvas.Yellow, -w, h/2, 2*w, h/3)
	b.c.DrawLine(canvas.Yellow, w/2, -h, w/3, 2*h)
}

func (b *bench) testFastLines() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	for y := 0; y < h; y += 5 {
		b.c.DrawHorizontalLine(canvas.Red, w, 0, y)
	}
	for x := 0; x < w; x += 5 {
		b.c.DrawVerticalLine(canvas.Blue, h, x, 0)
	}
	n := min(w, h)
	b.c.DrawDiagonalLine(canvas.White, n-1, n-1, 0, 0)
}

func (b *bench) testRects() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	n := min(w, h)
	cx, cy := w/2, h/2
	for i := 2; i < n; i += 6 {
		half := i / 2
		if i%12 == 2 {
			b.c.DrawSquare(canvas.Green, cx-half, cy-half, i)
			continue
		}
		b.c.DrawRectangle(canvas.Cyan, cx-half, cy-half, i, i)
	}
}

func (b *bench) testFilledRects() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	n := min(w, h)
	cx, cy := w/2-1, h/2-1
	for i := n; i > 0; i -= 6 {
		half := i / 2
		b.c.DrawFilledRectangle(canvas.RGB(0xFF, uint8(i), 0x40), cx-half, cy-half, i, i)
	}
}

func (b *bench) testCircles() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	const r = 10
	for x := r; x+r < w; x += 2 * r {
		for y := r; y+r < h; y += 2 * r {
			_ = b.c.DrawCircle(canvas.White, x, y, r)
		}
	}
}

func (b *bench) testFilledCircles() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	const r = 10
	for x := 0; x < w+r; x += 2 * r {
		for y := 0; y < h+r; y += 2 * r {
			b.c.DrawFilledCircle(canvas.Magenta, x, y, r)
		}
	}
}

func (b *bench) testEllipses() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	cx, cy := w/2, h/2
	b.c.DrawFilledEllipse(canvas.Blue, cx, cy, cx-1, cy/2)
	for i := 4; i < cy; i += 6 {
		_ = b.c.DrawEllipse(canvas.Yellow, cx, cy, min(2*i, cx-1), i)
	}
}

func (b *bench) testArcs() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	for i := 8; i < min(w, h); i += 8 {
		b.c.DrawArc(canvas.RGB(uint8(i), 0xC0, 0x40), w/2, h/2, i, i, i%360, (i*3)%360+45)
	}
}

func (b *bench) testTriangles() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	cx, cy := w/2-1, h/2-1
	for i := 0; i < min(cx, cy); i += 6 {
		b.c.DrawTriangle(canvas.RGB(uint8(i), 0x00, uint8(255-i)), cx, cy-i, cx-i, cy+i, cx+i, cy+i)
	}
}

func (b *bench) testPolygons() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	cx, cy := w/2, h/2
	for r := 6; r < min(cx, cy); r += 8 {
		_ = b.c.DrawPolygon(canvas.Green,
			image.Pt(cx, cy-r), image.Pt(cx+r, cy), image.Pt(cx+r/2, cy+r),
			image.Pt(cx-r/2, cy+r), image.Pt(cx-r, cy),
		)
	}
}

func (b *bench) testImages() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	for y := -spriteSize / 2; y < h; y += spriteSize {
		for x := -spriteSize / 2; x < w; x += spriteSize {
			if (x/spriteSize+y/spriteSize)%2 == 0 {
				_ = b.c.DrawImage(b.sprite, x, y)
				continue
			}
			_ = b.c.DrawCroppedImage(b.sprite, x, y, spriteSize/2, spriteSize/2)
		}
	}
}

func (b *bench) testAlphaImages() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Gray)
	for y := 0; y < h; y += spriteSize / 2 {
		for x := 0; x < w; x += spriteSize / 2 {
			_ = b.c.DrawImageAlpha(b.sprite, x, y)
		}
	}
}

func (b *bench) testScaledImages() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	_ = b.c.DrawScaledImage(b.sprite, 0, 0, w, h)
	_ = b.c.DrawScaledImage(b.sprite, w/4, h/4, spriteSize/2, spriteSize/2)
}

func (b *bench) testArrays() {
	w, h := b.c.Width(), b.c.Height()
	b.c.Clear(canvas.Black)
	row := make([]canvas.Color, w)
	for x := range row {
		row[x] = canvas.RGB(uint8(x), 0x40, uint8(255-x))
	}
	for y := 0; y < h; y += 2 {
		_ = b.c.DrawArray(row, 0, y, w, 1)
	}
	_ = b.c.DrawArrayARGBFrom(b.sprite.RawData, spriteSize, 0, 0, spriteSize, spriteSize-1)
	_ = b.c.DrawArrayARGB(b.sprite.RawData, w-spriteSize, h-spriteSize, spriteSize, spriteSize)
}

func (b *bench) testReadback() {
	w, h := b.c.Width(), b.c.Height()
	src, err := b.c.Image(0, 0, w/2, h/2)
	if err != nil {
		return
	}
	b.c.ClearRaw(0)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			b.c.DrawRawPoint(uint32(src.RawData[y*src.Width+x]), x+w/2, y+h/2)
		}
	}
	if shot, err := b.c.Capture(w/2, h/2, spriteSize, spriteSize); err == nil {
		_ = b.c.DrawImage(shot, 0, 0)
	}
}

// makeSprite is a radial gradient whose alpha falls off towards the edge.
func makeSprite(n int) *canvas.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	c := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := x-c, y-c
			d := dx*dx + dy*dy
			a := 0
			if r2 := c * c; d < r2 {
				a = 255 - 255*d/r2
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / n), G: uint8(y * 255 / n), B: 0xC0, A: uint8(a)})
		}
	}
	return bitmap.FromImage(img)
}

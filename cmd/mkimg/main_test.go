package main

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"sparkgfx/gfx/bitmap"
)

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	src.SetNRGBA(2, 3, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	inPath := filepath.Join(dir, "in.bmp")
	if err := os.WriteFile(inPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rawPath := filepath.Join(dir, "out.cimg")
	if err := encode(inPath, rawPath); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := readRaw(rawPath)
	if err != nil {
		t.Fatalf("readRaw: %v", err)
	}
	if img.Width != 5 || img.Height != 4 {
		t.Fatalf("size %dx%d", img.Width, img.Height)
	}

	pngPath := filepath.Join(dir, "back.png")
	if err := decode(rawPath, pngPath); err != nil {
		t.Fatalf("decode: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	back, err := bitmap.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := back.At(2, 3), img.At(2, 3); got != want {
		t.Fatalf("pixel=%v, want %v", got, want)
	}

	if err := decode(rawPath, filepath.Join(dir, "x.gif")); err == nil {
		t.Fatalf("gif output accepted")
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	img := bitmap.FromImage(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
	path := filepath.Join(dir, "p.cimg")
	if err := writeFile(path, func(w io.Writer) error { return bitmap.WriteRaw(w, img) }); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	var out bytes.Buffer
	if err := preview(&out, path, 4); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("preview=%q", out.String())
	}
}

package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sparkgfx/gfx/bitmap"
	"sparkgfx/gfx/canvas"
	"sparkgfx/hal"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input file (.bmp/.png for encode, .cimg for decode).")
		outPath = flag.String("out", "", "Output file (.cimg for encode, .png/.bmp for decode).")
		mode    = flag.String("mode", "encode", "encode|decode|preview.")
		cols    = flag.Int("cols", 80, "Preview width in terminal columns.")
	)
	flag.Parse()

	if *inPath == "" || (*outPath == "" && *mode != "preview") {
		fatalf("usage: mkimg -mode encode -in in.bmp -out out.cimg\n       mkimg -mode decode -in in.cimg -out out.png\n       mkimg -mode preview -in in.cimg [-cols 80]")
	}

	switch strings.ToLower(*mode) {
	case "encode":
		if err := encode(*inPath, *outPath); err != nil {
			fatalf("encode: %v", err)
		}
	case "decode":
		if err := decode(*inPath, *outPath); err != nil {
			fatalf("decode: %v", err)
		}
	case "preview":
		if err := preview(os.Stdout, *inPath, *cols); err != nil {
			fatalf("preview: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func encode(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := bitmap.Decode(in)
	if err != nil {
		return err
	}
	return writeFile(outPath, func(w io.Writer) error { return bitmap.WriteRaw(w, img) })
}

func decode(inPath, outPath string) error {
	img, err := readRaw(inPath)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".bmp":
		return writeFile(outPath, func(w io.Writer) error { return bitmap.EncodeBMP(w, img) })
	case ".png":
		return writeFile(outPath, func(w io.Writer) error { return png.Encode(w, bitmap.ToImage(img)) })
	}
	return fmt.Errorf("unknown output type: %s", outPath)
}

func preview(w io.Writer, inPath string, cols int) error {
	img, err := readRaw(inPath)
	if err != nil {
		return err
	}
	if cols <= 0 {
		return fmt.Errorf("cols out of range: %d", cols)
	}
	rows := max(1, img.Height*cols/max(img.Width, 1)/2)
	return hal.RenderPreview(w, bitmap.ToImage(img), cols, rows)
}

func readRaw(path string) (*canvas.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bitmap.ReadRaw(f)
}

func writeFile(path string, fn func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

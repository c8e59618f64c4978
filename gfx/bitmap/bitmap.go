// Package bitmap moves pixels between canvas.Image and the image package,
// and stores canvas images in a small raw ARGB container.
package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered with image.Decode.
	_ "image/png"

	"golang.org/x/image/bmp"

	"sparkgfx/gfx/canvas"
)

// Decode reads a BMP or PNG stream.
func Decode(r io.Reader) (*canvas.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}
	return FromImage(src), nil
}

// DecodeBMP reads a Windows bitmap.
func DecodeBMP(r io.Reader) (*canvas.Image, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: bmp: %w", err)
	}
	return FromImage(src), nil
}

// EncodeBMP writes img as a 32-bit bitmap.
func EncodeBMP(w io.Writer, img *canvas.Image) error {
	return bmp.Encode(w, ToImage(img))
}

// FromImage copies src into a new canvas image. The top-left corner of
// src.Bounds() becomes (0,0).
func FromImage(src image.Image) *canvas.Image {
	b := src.Bounds()
	dst := &canvas.Image{Width: b.Dx(), Height: b.Dy(), RawData: make([]int32, b.Dx()*b.Dy())}
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < dst.Height; y++ {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < dst.Width; x++ {
				p := row[x*4 : x*4+4]
				dst.RawData[y*dst.Width+x] = int32(canvas.RGBA(p[0], p[1], p[2], p[3]).ARGB())
			}
		}
		return dst
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			dst.Set(x, y, canvas.FromStd(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return dst
}

// ToImage copies img into a non-premultiplied image.
func ToImage(img *canvas.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out
}

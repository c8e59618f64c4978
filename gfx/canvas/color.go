package canvas

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ARGB packs c as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromStd converts any color.Color.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Std returns the channels as a color.RGBA, the form tinyfont and the
// display drivers take.
func (c Color) Std() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

var (
	Black   = FromStd(colornames.Black)
	White   = FromStd(colornames.White)
	Red     = FromStd(colornames.Red)
	Green   = FromStd(colornames.Lime)
	Blue    = FromStd(colornames.Blue)
	Yellow  = FromStd(colornames.Yellow)
	Cyan    = FromStd(colornames.Cyan)
	Magenta = FromStd(colornames.Magenta)
	Gray    = FromStd(colornames.Gray)
)

// AlphaBlend mixes to over from with weight alpha per channel:
//
//	(to*alpha + from*(255-alpha)) >> 8
//
// The shift (not a division by 255) is intentional, so alpha 255 yields
// slightly less than to. The result is opaque.
func AlphaBlend(to, from Color, alpha uint8) Color {
	a := uint32(alpha)
	na := 255 - a
	return Color{
		R: uint8((uint32(to.R)*a + uint32(from.R)*na) >> 8),
		G: uint8((uint32(to.G)*a + uint32(from.G)*na) >> 8),
		B: uint8((uint32(to.B)*a + uint32(from.B)*na) >> 8),
		A: 0xFF,
	}
}

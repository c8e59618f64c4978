package tinyterm

import "image/color"

// Select Graphic Rendition parameters understood by the terminal.
const (
	SGRReset = 0
	SGRBold  = 1

	SGRFgBlack        = 30
	SGRFgRed          = 31
	SGRFgGreen        = 32
	SGRFgYellow       = 33
	SGRFgBlue         = 34
	SGRFgMagenta      = 35
	SGRFgCyan         = 36
	SGRFgWhite        = 37
	SGRSetFgColor     = 38
	SGRDefaultFgColor = 39

	SGRBgBlack        = 40
	SGRBgRed          = 41
	SGRBgGreen        = 42
	SGRBgYellow       = 43
	SGRBgBlue         = 44
	SGRBgMagenta      = 45
	SGRBgCyan         = 46
	SGRBgWhite        = 47
	SGRSetBgColor     = 48
	SGRDefaultBgColor = 49
)

// Color is an xterm 256-color index.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var basePalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0xAA, 0x00, 0x00, 0xFF},
	{0x00, 0xAA, 0x00, 0xFF},
	{0xAA, 0x55, 0x00, 0xFF},
	{0x00, 0x00, 0xAA, 0xFF},
	{0xAA, 0x00, 0xAA, 0xFF},
	{0x00, 0xAA, 0xAA, 0xFF},
	{0xAA, 0xAA, 0xAA, 0xFF},
	{0x55, 0x55, 0x55, 0xFF},
	{0xFF, 0x55, 0x55, 0xFF},
	{0x55, 0xFF, 0x55, 0xFF},
	{0xFF, 0xFF, 0x55, 0xFF},
	{0x55, 0x55, 0xFF, 0xFF},
	{0xFF, 0x55, 0xFF, 0xFF},
	{0x55, 0xFF, 0xFF, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

// RGBA returns the display color for c: the 16 base colors, the 6x6x6
// cube, then the 24-step gray ramp.
func (c Color) RGBA() color.RGBA {
	switch {
	case c < 16:
		return basePalette[c]
	case c < 232:
		i := int(c) - 16
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		return color.RGBA{level(i / 36), level(i / 6 % 6), level(i % 6), 0xFF}
	default:
		v := uint8(8 + (int(c)-232)*10)
		return color.RGBA{v, v, v, 0xFF}
	}
}

type sgrAttrs struct {
	attrs byte
	fg    Color
	bg    Color
	fgcol color.RGBA
	bgcol color.RGBA
}

func (a *sgrAttrs) reset() {
	a.attrs = 0
	a.setFG(ColorWhite)
	a.setBG(ColorBlack)
}

func (a *sgrAttrs) bold() bool { return a.attrs&SGRBold != 0 }

func (a *sgrAttrs) setFG(c Color) {
	a.fg = c
	// Bold brightens the base colors.
	if a.bold() && c < 8 {
		c += 8
	}
	a.fgcol = c.RGBA()
}

func (a *sgrAttrs) setBG(c Color) {
	a.bg = c
	a.bgcol = c.RGBA()
}

package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorDepth is the number of bits per pixel.
type ColorDepth uint8

const (
	ColorDepth1  ColorDepth = 1
	ColorDepth2  ColorDepth = 2
	ColorDepth4  ColorDepth = 4
	ColorDepth8  ColorDepth = 8
	ColorDepth16 ColorDepth = 16
	ColorDepth24 ColorDepth = 24
	ColorDepth32 ColorDepth = 32
)

// Valid reports whether d is one of the supported depths.
func (d ColorDepth) Valid() bool {
	switch d {
	case ColorDepth1, ColorDepth2, ColorDepth4, ColorDepth8, ColorDepth16, ColorDepth24, ColorDepth32:
		return true
	}
	return false
}

// Mode describes the pixel geometry of a display. Modes are compared by value.
type Mode struct {
	Width  int
	Height int
	Depth  ColorDepth
}

// NewMode returns a validated mode.
func NewMode(width, height int, depth ColorDepth) (Mode, error) {
	if width <= 0 || height <= 0 {
		return Mode{}, fmt.Errorf("%w: mode size %dx%d", ErrInvalidArgument, width, height)
	}
	if !depth.Valid() {
		return Mode{}, fmt.Errorf("%w: color depth %d", ErrInvalidArgument, depth)
	}
	return Mode{Width: width, Height: height, Depth: depth}, nil
}

// ParseMode parses "WIDTHxHEIGHTxDEPTH", for example "640x480x4".
func ParseMode(s string) (Mode, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return Mode{}, fmt.Errorf("%w: mode %q (want WxHxD)", ErrInvalidArgument, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Mode{}, fmt.Errorf("%w: mode %q: %v", ErrInvalidArgument, s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[2] > 255 {
		return Mode{}, fmt.Errorf("%w: color depth %d", ErrInvalidArgument, v[2])
	}
	return NewMode(v[0], v[1], ColorDepth(v[2]))
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%dx%d", m.Width, m.Height, m.Depth)
}

// Contains reports whether mode m is one of modes.
func Contains(modes []Mode, m Mode) bool {
	for _, mm := range modes {
		if mm == m {
			return true
		}
	}
	return false
}

// Geometry is the byte layout derived from a Mode.
//
// Depths below 8 bits have zero bytes per pixel; packed and planar layouts
// are addressed by the device driver, not through Offset.
type Geometry struct {
	BytesPerPixel int
	Stride        int // bytes between horizontally adjacent pixels
	Pitch         int // bytes per row
}

// GeometryOf derives the layout of m.
func GeometryOf(m Mode) Geometry {
	bpp := int(m.Depth) / 8
	return Geometry{
		BytesPerPixel: bpp,
		Stride:        bpp,
		Pitch:         m.Width * bpp,
	}
}

// Offset returns the byte offset of pixel (x,y).
func (g Geometry) Offset(x, y int) int {
	return x*g.Stride + y*g.Pitch
}

package hal

import (
	"errors"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatXRGB8888 is 32bpp little-endian: bytes B, G, R, unused.
	PixelFormatXRGB8888
)

// BytesPerPixel returns the storage size of one pixel, or 0 if f is unknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatXRGB8888:
		return 4
	}
	return 0
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// ModeSetter is implemented by framebuffers that can be resized.
type ModeSetter interface {
	SetMode(width, height int, format PixelFormat) error
}

// ScreenSize is a VGA graphics resolution.
type ScreenSize uint8

const (
	ScreenSize320x200 ScreenSize = iota + 1
	ScreenSize640x480
	ScreenSize720x480
)

// Dimensions returns the pixel size of s, or 0,0 for an unknown size.
func (s ScreenSize) Dimensions() (width, height int) {
	switch s {
	case ScreenSize320x200:
		return 320, 200
	case ScreenSize640x480:
		return 640, 480
	case ScreenSize720x480:
		return 720, 480
	}
	return 0, 0
}

// VGA is an indexed-color display controller.
//
// Pixel values are palette indices. SetPixel and DrawFilledRectangle take
// coordinates the caller has already clipped; implementations still ignore
// anything outside video memory.
type VGA interface {
	SetGraphicsMode(size ScreenSize, depth uint8) error
	SetTextMode() error

	PixelWidth() int
	PixelHeight() int

	SetPixel(x, y uint32, c uint32)
	GetPixel(x, y uint32) uint32
	DrawFilledRectangle(x, y, width, height int, c uint32)

	// ClosestColorInPalette returns the index of the usable palette entry
	// nearest to c.
	ClosestColorInPalette(c color.RGBA) uint32
	PaletteColor(index uint32) color.RGBA
	// PaletteGeneration changes whenever palette contents change, so callers
	// can tell when lookups they remembered are stale.
	PaletteGeneration() uint64
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the video devices.
type Display interface {
	Framebuffer() Framebuffer
	VGA() VGA
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the drawing code and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

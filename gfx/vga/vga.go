// Package vga is a palette-mapped canvas backend for an indexed-color VGA
// controller.
//
// Colors are translated to the nearest palette entry of the active mode;
// raw values are palette indices and reach the device unchanged. The device
// enters graphics mode when the backend is created and leaves it on Disable.
package vga

import (
	"fmt"

	"sparkgfx/gfx/canvas"
	"sparkgfx/hal"
)

// Modes are the resolutions the backend can drive.
var Modes = []canvas.Mode{
	{Width: 640, Height: 480, Depth: canvas.ColorDepth4},
	{Width: 720, Height: 480, Depth: canvas.ColorDepth4},
	{Width: 320, Height: 200, Depth: canvas.ColorDepth8},
}

// DefaultMode is used when no mode is requested.
var DefaultMode = canvas.Mode{Width: 640, Height: 480, Depth: canvas.ColorDepth4}

// ModeToScreenSize maps a mode to the controller resolution that carries it.
func ModeToScreenSize(m canvas.Mode) (hal.ScreenSize, error) {
	switch {
	case m.Width == 320 && m.Height == 200:
		return hal.ScreenSize320x200, nil
	case m.Width == 640 && m.Height == 480:
		return hal.ScreenSize640x480, nil
	case m.Width == 720 && m.Height == 480:
		return hal.ScreenSize720x480, nil
	}
	return 0, fmt.Errorf("%w: no VGA screen size for %s", canvas.ErrUnsupportedMode, m)
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger reports mode changes and disable to l.
func WithLogger(l hal.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// Backend drives a hal.VGA device.
type Backend struct {
	drv     hal.VGA
	log     hal.Logger
	mode    canvas.Mode
	enabled bool

	// closest caches palette lookups for the active mode and the palette
	// generation they were made against.
	closest    map[canvas.Color]uint32
	paletteGen uint64
}

var (
	_ canvas.Backend    = (*Backend)(nil)
	_ canvas.Filler     = (*Backend)(nil)
	_ canvas.RectFiller = (*Backend)(nil)
)

// New validates mode and puts drv into graphics mode. The zero Mode selects
// DefaultMode. An unsupported mode fails before the device is touched.
func New(drv hal.VGA, mode canvas.Mode, opts ...Option) (*Backend, error) {
	if drv == nil {
		return nil, fmt.Errorf("%w: nil VGA driver", canvas.ErrInvalidArgument)
	}
	if mode == (canvas.Mode{}) {
		mode = DefaultMode
	}
	if !canvas.Contains(Modes, mode) {
		return nil, fmt.Errorf("%w: %s", canvas.ErrUnsupportedMode, mode)
	}

	b := &Backend{drv: drv}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.enter(mode); err != nil {
		return nil, err
	}
	b.enabled = true
	return b, nil
}

// NewCanvas is New wrapped in a clipping Canvas.
func NewCanvas(drv hal.VGA, mode canvas.Mode, opts ...Option) (*canvas.Canvas, *Backend, error) {
	b, err := New(drv, mode, opts...)
	if err != nil {
		return nil, nil, err
	}
	return canvas.New(b), b, nil
}

func (b *Backend) enter(m canvas.Mode) error {
	size, err := ModeToScreenSize(m)
	if err != nil {
		return err
	}
	if err := b.drv.SetGraphicsMode(size, uint8(m.Depth)); err != nil {
		return fmt.Errorf("vga: set graphics mode %s: %w", m, err)
	}
	b.mode = m
	b.resetPalette()
	b.logf("vga: graphics mode %s", m)
	return nil
}

func (b *Backend) Name() string                  { return "VGACanvas" }
func (b *Backend) AvailableModes() []canvas.Mode { return Modes }
func (b *Backend) DefaultMode() canvas.Mode      { return DefaultMode }
func (b *Backend) Mode() canvas.Mode             { return b.mode }

// Enabled reports whether the device is still in graphics mode.
func (b *Backend) Enabled() bool { return b.enabled }

// SetMode reprograms the controller. It fails once the backend is disabled.
func (b *Backend) SetMode(m canvas.Mode) error {
	if !canvas.Contains(Modes, m) {
		return fmt.Errorf("%w: %s", canvas.ErrUnsupportedMode, m)
	}
	if !b.enabled {
		return fmt.Errorf("%w: vga backend is disabled", canvas.ErrInvalidArgument)
	}
	return b.enter(m)
}

// Disable returns the controller to text mode. Later calls do nothing.
func (b *Backend) Disable() {
	if !b.enabled {
		return
	}
	b.enabled = false
	if err := b.drv.SetTextMode(); err != nil {
		b.logf("vga: text mode: %v", err)
		return
	}
	b.logf("vga: disabled")
}

// Display is a no-op: writes reach video memory immediately.
func (b *Backend) Display() error { return nil }

func (b *Backend) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.mode.Width && y < b.mode.Height
}

func (b *Backend) resetPalette() {
	b.closest = make(map[canvas.Color]uint32)
	b.paletteGen = b.drv.PaletteGeneration()
}

// index returns the palette entry used for c.
func (b *Backend) index(c canvas.Color) uint32 {
	c.A = 0xFF
	if g := b.drv.PaletteGeneration(); g != b.paletteGen {
		b.resetPalette()
	}
	if idx, ok := b.closest[c]; ok {
		return idx
	}
	idx := b.drv.ClosestColorInPalette(c.Std())
	b.closest[c] = idx
	return idx
}

func (b *Backend) SetPixel(x, y int, c canvas.Color) {
	if !b.in(x, y) {
		return
	}
	b.drv.SetPixel(uint32(x), uint32(y), b.index(c))
}

func (b *Backend) SetRawPixel(x, y int, raw uint32) {
	if !b.in(x, y) {
		return
	}
	b.drv.SetPixel(uint32(x), uint32(y), raw)
}

// Pixel returns the palette color stored at (x,y).
func (b *Backend) Pixel(x, y int) canvas.Color {
	if !b.in(x, y) {
		return canvas.Color{}
	}
	return canvas.FromStd(b.drv.PaletteColor(b.drv.GetPixel(uint32(x), uint32(y))))
}

// RawPixel returns the palette index stored at (x,y).
func (b *Backend) RawPixel(x, y int) uint32 {
	if !b.in(x, y) {
		return 0
	}
	return b.drv.GetPixel(uint32(x), uint32(y))
}

// Fill clears the screen to the palette entry closest to c in one device
// call.
func (b *Backend) Fill(c canvas.Color) {
	b.FillRaw(b.index(c))
}

func (b *Backend) FillRaw(raw uint32) {
	b.drv.DrawFilledRectangle(0, 0, b.drv.PixelWidth(), b.drv.PixelHeight(), raw)
}

// FillRect forwards a rectangle the Canvas has already clipped. It only
// guards against rectangles outside video memory.
func (b *Backend) FillRect(x, y, w, h int, c canvas.Color) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > b.mode.Width || y+h > b.mode.Height {
		return
	}
	b.drv.DrawFilledRectangle(x, y, w, h, b.index(c))
}

func (b *Backend) logf(format string, args ...any) {
	if b.log == nil {
		return
	}
	b.log.WriteLineString(fmt.Sprintf(format, args...))
}

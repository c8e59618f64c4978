// Package fb is a direct-color canvas backend over a linear framebuffer.
package fb

import (
	"encoding/binary"
	"fmt"

	"sparkgfx/gfx/canvas"
	"sparkgfx/hal"
)

// Option configures a Backend.
type Option func(*Backend)

// WithLogger reports mode changes to l.
func WithLogger(l hal.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// WithModes replaces the default mode list. Every mode must have a depth of
// 16 or 32 bits.
func WithModes(modes ...canvas.Mode) Option {
	return func(b *Backend) { b.modes = modes }
}

// Backend writes pixels into a hal.Framebuffer. Raw values are the packed
// device pixel (RGB565 or XRGB8888).
type Backend struct {
	dev   hal.Framebuffer
	log   hal.Logger
	modes []canvas.Mode
	mode  canvas.Mode
	geo   canvas.Geometry
	off   bool
}

var (
	_ canvas.Backend          = (*Backend)(nil)
	_ canvas.Filler           = (*Backend)(nil)
	_ canvas.RectFiller       = (*Backend)(nil)
	_ canvas.GeometryProvider = (*Backend)(nil)
)

// New wraps dev in its current size and format.
func New(dev hal.Framebuffer, opts ...Option) (*Backend, error) {
	if dev == nil {
		return nil, fmt.Errorf("%w: nil framebuffer", canvas.ErrInvalidArgument)
	}
	depth, err := depthOf(dev.Format())
	if err != nil {
		return nil, err
	}
	cur := canvas.Mode{Width: dev.Width(), Height: dev.Height(), Depth: depth}
	b := &Backend{dev: dev}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.modes) == 0 {
		b.modes = []canvas.Mode{cur}
		if _, ok := dev.(hal.ModeSetter); ok {
			b.modes = append(b.modes,
				canvas.Mode{Width: 320, Height: 240, Depth: canvas.ColorDepth16},
				canvas.Mode{Width: 640, Height: 480, Depth: canvas.ColorDepth32},
			)
		}
	}
	b.setCurrent(cur)
	return b, nil
}

// NewCanvas is New wrapped in a clipping Canvas.
func NewCanvas(dev hal.Framebuffer, opts ...Option) (*canvas.Canvas, *Backend, error) {
	b, err := New(dev, opts...)
	if err != nil {
		return nil, nil, err
	}
	return canvas.New(b), b, nil
}

func depthOf(f hal.PixelFormat) (canvas.ColorDepth, error) {
	switch f {
	case hal.PixelFormatRGB565:
		return canvas.ColorDepth16, nil
	case hal.PixelFormatXRGB8888:
		return canvas.ColorDepth32, nil
	}
	return 0, fmt.Errorf("%w: pixel format %d", canvas.ErrUnsupportedMode, f)
}

func formatOf(d canvas.ColorDepth) (hal.PixelFormat, error) {
	switch d {
	case canvas.ColorDepth16:
		return hal.PixelFormatRGB565, nil
	case canvas.ColorDepth32:
		return hal.PixelFormatXRGB8888, nil
	}
	return 0, fmt.Errorf("%w: %d-bit framebuffer", canvas.ErrUnsupportedMode, d)
}

func (b *Backend) setCurrent(m canvas.Mode) {
	b.mode = m
	b.geo = canvas.GeometryOf(m)
	// Devices may pad rows.
	if s := b.dev.StrideBytes(); s > b.geo.Pitch {
		b.geo.Pitch = s
	}
}

func (b *Backend) Name() string                  { return "FramebufferCanvas" }
func (b *Backend) AvailableModes() []canvas.Mode { return b.modes }
func (b *Backend) DefaultMode() canvas.Mode      { return b.modes[0] }
func (b *Backend) Mode() canvas.Mode             { return b.mode }

// Geometry is the layout the backend writes with, including any row padding
// the device reports.
func (b *Backend) Geometry() canvas.Geometry { return b.geo }

// SetMode resizes the framebuffer; the device must implement hal.ModeSetter.
func (b *Backend) SetMode(m canvas.Mode) error {
	if m == b.mode {
		return nil
	}
	ms, ok := b.dev.(hal.ModeSetter)
	if !ok {
		return fmt.Errorf("%w: framebuffer cannot change mode", canvas.ErrUnsupportedMode)
	}
	format, err := formatOf(m.Depth)
	if err != nil {
		return err
	}
	if err := ms.SetMode(m.Width, m.Height, format); err != nil {
		return fmt.Errorf("fb: set mode %s: %w", m, err)
	}
	b.setCurrent(m)
	if b.log != nil {
		b.log.WriteLineString("fb: mode " + m.String())
	}
	return nil
}

// Display presents the framebuffer.
func (b *Backend) Display() error {
	if b.off {
		return nil
	}
	return b.dev.Present()
}

// Disable stops presenting. Later calls do nothing.
func (b *Backend) Disable() {
	if b.off {
		return
	}
	b.off = true
	if b.log != nil {
		b.log.WriteLineString("fb: disabled")
	}
}

// offset returns the byte offset of (x,y), or -1 if the pixel is not fully
// inside the buffer.
func (b *Backend) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.mode.Width || y >= b.mode.Height {
		return -1
	}
	off := b.geo.Offset(x, y)
	if off+b.geo.BytesPerPixel > len(b.dev.Buffer()) {
		return -1
	}
	return off
}

// Pack converts c to the device pixel value.
func (b *Backend) Pack(c canvas.Color) uint32 {
	if b.mode.Depth == canvas.ColorDepth16 {
		return uint32(hal.RGB565(c.R, c.G, c.B))
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack converts a device pixel value to an opaque Color.
func (b *Backend) Unpack(raw uint32) canvas.Color {
	if b.mode.Depth == canvas.ColorDepth16 {
		r, g, bb := hal.RGB888From565(uint16(raw))
		return canvas.RGB(r, g, bb)
	}
	return canvas.RGB(uint8(raw>>16), uint8(raw>>8), uint8(raw))
}

func (b *Backend) SetPixel(x, y int, c canvas.Color) {
	b.SetRawPixel(x, y, b.Pack(c))
}

func (b *Backend) SetRawPixel(x, y int, raw uint32) {
	off := b.offset(x, y)
	if off < 0 {
		return
	}
	b.put(b.dev.Buffer()[off:], raw)
}

func (b *Backend) Pixel(x, y int) canvas.Color {
	if b.offset(x, y) < 0 {
		return canvas.Color{}
	}
	return b.Unpack(b.RawPixel(x, y))
}

func (b *Backend) RawPixel(x, y int) uint32 {
	off := b.offset(x, y)
	if off < 0 {
		return 0
	}
	buf := b.dev.Buffer()[off:]
	if b.geo.BytesPerPixel == 2 {
		return uint32(binary.LittleEndian.Uint16(buf))
	}
	return binary.LittleEndian.Uint32(buf) & 0x00FFFFFF
}

func (b *Backend) put(dst []byte, raw uint32) {
	if b.geo.BytesPerPixel == 2 {
		binary.LittleEndian.PutUint16(dst, uint16(raw))
		return
	}
	binary.LittleEndian.PutUint32(dst, raw&0x00FFFFFF)
}

func (b *Backend) Fill(c canvas.Color) {
	b.dev.ClearRGB(c.R, c.G, c.B)
}

func (b *Backend) FillRaw(raw uint32) {
	b.fill(0, 0, b.mode.Width, b.mode.Height, raw)
}

func (b *Backend) FillRect(x, y, w, h int, c canvas.Color) {
	b.fill(x, y, w, h, b.Pack(c))
}

// fill writes one row and copies it down the rectangle.
func (b *Backend) fill(x, y, w, h int, raw uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.mode.Width), min(y+h, b.mode.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	first := b.offset(x0, y0)
	last := b.offset(x1-1, y0)
	if first < 0 || last < 0 {
		return
	}
	buf := b.dev.Buffer()
	rowEnd := last + b.geo.BytesPerPixel
	for off := first; off < rowEnd; off += b.geo.Stride {
		b.put(buf[off:], raw)
	}
	row := buf[first:rowEnd]
	for yy := y0 + 1; yy < y1; yy++ {
		off := b.offset(x0, yy)
		if off < 0 || off+len(row) > len(buf) {
			return
		}
		copy(buf[off:], row)
	}
}

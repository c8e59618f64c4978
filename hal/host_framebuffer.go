package hal

import (
	"fmt"
	"image"
	"sync"
)

// HostFramebuffer is a linear framebuffer in process memory.
type HostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	format   PixelFormat
	stride   int
	buf      []byte
	presents int
}

// NewHostFramebuffer allocates a width x height buffer in the given format.
func NewHostFramebuffer(width, height int, format PixelFormat) (*HostFramebuffer, error) {
	f := &HostFramebuffer{}
	if err := f.SetMode(width, height, format); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *HostFramebuffer) Width() int          { return f.width }
func (f *HostFramebuffer) Height() int         { return f.height }
func (f *HostFramebuffer) Format() PixelFormat { return f.format }
func (f *HostFramebuffer) StrideBytes() int    { return f.stride }
func (f *HostFramebuffer) Buffer() []byte      { return f.buf }

func (f *HostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

// Presents counts Present calls.
func (f *HostFramebuffer) Presents() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// SetMode reallocates the buffer; the new content is zero.
func (f *HostFramebuffer) SetMode(width, height int, format PixelFormat) error {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("framebuffer: unknown pixel format %d: %w", format, ErrNotImplemented)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("framebuffer: invalid size %dx%d", width, height)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	f.height = height
	f.format = format
	f.stride = width * bpp
	f.buf = make([]byte, f.stride*height)
	return nil
}

func (f *HostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.format {
	case PixelFormatRGB565:
		pixel := RGB565(r, g, b)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(f.buf); i += 2 {
			f.buf[i] = lo
			f.buf[i+1] = hi
		}
	case PixelFormatXRGB8888:
		for i := 0; i+3 < len(f.buf); i += 4 {
			f.buf[i] = b
			f.buf[i+1] = g
			f.buf[i+2] = r
			f.buf[i+3] = 0
		}
	}
}

// SnapshotRGBA converts the buffer into dst, which is reallocated when its
// size does not match.
func (f *HostFramebuffer) SnapshotRGBA(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	bpp := f.format.BytesPerPixel()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			off := y*f.stride + x*bpp
			j := (y*f.width + x) * 4
			var r, g, b uint8
			switch f.format {
			case PixelFormatRGB565:
				r, g, b = RGB888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
			case PixelFormatXRGB8888:
				b, g, r = f.buf[off], f.buf[off+1], f.buf[off+2]
			}
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}

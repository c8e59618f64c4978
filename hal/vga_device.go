package hal

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

const vgaPaletteSize = 256

// VGADevice is an in-memory VGA controller: one palette index per pixel
// behind a 256-entry DAC with 6-bit channels.
type VGADevice struct {
	mu sync.RWMutex

	graphics bool
	width    int
	height   int
	depth    uint8
	mask     uint8

	palette    [vgaPaletteSize * 3]uint8
	paletteGen uint64
	vram       []uint8

	modeSwitches int
}

// NewVGADevice returns a device in text mode with the default palette loaded.
func NewVGADevice() *VGADevice {
	v := &VGADevice{mask: 0xFF}
	v.initDefaultPalette()
	return v
}

// initDefaultPalette loads the 16 standard colors, a 6x6x6 color cube and a
// 24-step gray ramp.
func (v *VGADevice) initDefaultPalette() {
	standard := [][3]uint8{
		{0, 0, 0},    // black
		{0, 0, 42},   // blue
		{0, 42, 0},   // green
		{0, 42, 42},  // cyan
		{42, 0, 0},   // red
		{42, 0, 42},  // magenta
		{42, 21, 0},  // brown
		{42, 42, 42}, // light gray
		{21, 21, 21}, // dark gray
		{21, 21, 63}, // light blue
		{21, 63, 21}, // light green
		{21, 63, 63}, // light cyan
		{63, 21, 21}, // light red
		{63, 21, 63}, // light magenta
		{63, 63, 21}, // yellow
		{63, 63, 63}, // white
	}
	for i, c := range standard {
		copy(v.palette[i*3:], c[:])
	}

	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				v.palette[idx*3+0] = uint8(r * 63 / 5)
				v.palette[idx*3+1] = uint8(g * 63 / 5)
				v.palette[idx*3+2] = uint8(b * 63 / 5)
				idx++
			}
		}
	}

	for i := 0; i < 24; i++ {
		gray := uint8(i * 63 / 23)
		v.palette[idx*3+0] = gray
		v.palette[idx*3+1] = gray
		v.palette[idx*3+2] = gray
		idx++
	}
}

// SetGraphicsMode switches to a graphics mode with 2^depth usable colors.
// Video memory is cleared to index 0.
func (v *VGADevice) SetGraphicsMode(size ScreenSize, depth uint8) error {
	w, h := size.Dimensions()
	if w == 0 {
		return fmt.Errorf("vga: unknown screen size %d", size)
	}
	if depth != 4 && depth != 8 {
		return fmt.Errorf("vga: unsupported color depth %d: %w", depth, ErrNotImplemented)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.graphics = true
	v.width, v.height, v.depth = w, h, depth
	v.mask = uint8(int(1)<<depth - 1)
	if cap(v.vram) >= w*h {
		v.vram = v.vram[:w*h]
		clear(v.vram)
	} else {
		v.vram = make([]uint8, w*h)
	}
	v.modeSwitches++
	return nil
}

// SetTextMode leaves graphics mode. Video memory is kept.
func (v *VGADevice) SetTextMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.graphics = false
	v.modeSwitches++
	return nil
}

// Graphics reports whether the device is in a graphics mode.
func (v *VGADevice) Graphics() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.graphics
}

func (v *VGADevice) PixelWidth() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

func (v *VGADevice) PixelHeight() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

func (v *VGADevice) SetPixel(x, y uint32, c uint32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.graphics || int(x) >= v.width || int(y) >= v.height {
		return
	}
	v.vram[int(y)*v.width+int(x)] = uint8(c) & v.mask
}

func (v *VGADevice) GetPixel(x, y uint32) uint32 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if int(x) >= v.width || int(y) >= v.height || len(v.vram) == 0 {
		return 0
	}
	return uint32(v.vram[int(y)*v.width+int(x)])
}

func (v *VGADevice) DrawFilledRectangle(x, y, width, height int, c uint32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.graphics {
		return
	}
	x0 := clampInt(x, 0, v.width)
	y0 := clampInt(y, 0, v.height)
	x1 := clampInt(x+width, 0, v.width)
	y1 := clampInt(y+height, 0, v.height)
	idx := uint8(c) & v.mask
	for py := y0; py < y1; py++ {
		row := v.vram[py*v.width : (py+1)*v.width]
		for px := x0; px < x1; px++ {
			row[px] = idx
		}
	}
}

// ClosestColorInPalette returns the nearest of the first 2^depth entries by
// squared RGB distance. Ties go to the lower index.
func (v *VGADevice) ClosestColorInPalette(c color.RGBA) uint32 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n := int(v.mask) + 1
	best := 0
	bestDist := -1
	for i := 0; i < n; i++ {
		r, g, b := v.entryRGB(i)
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return uint32(best)
}

// PaletteColor returns palette entry index expanded to 8 bits per channel.
func (v *VGADevice) PaletteColor(index uint32) color.RGBA {
	v.mu.RLock()
	defer v.mu.RUnlock()
	r, g, b := v.entryRGB(int(uint8(index)))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// PaletteEntry returns the raw 6-bit channels of an entry.
func (v *VGADevice) PaletteEntry(index uint8) (r, g, b uint8) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	i := int(index) * 3
	return v.palette[i], v.palette[i+1], v.palette[i+2]
}

// SetPaletteEntry stores 6-bit channels; higher bits are dropped.
func (v *VGADevice) SetPaletteEntry(index uint8, r, g, b uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := int(index) * 3
	v.palette[i] = r & 0x3F
	v.palette[i+1] = g & 0x3F
	v.palette[i+2] = b & 0x3F
	v.paletteGen++
}

// PaletteGeneration counts SetPaletteEntry calls.
func (v *VGADevice) PaletteGeneration() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.paletteGen
}

// SnapshotRGBA renders video memory through the palette into dst, which is
// reallocated when its size does not match the mode.
func (v *VGADevice) SnapshotRGBA(dst *image.RGBA) *image.RGBA {
	v.mu.RLock()
	defer v.mu.RUnlock()

	w, h := max(v.width, 1), max(v.height, 1)
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for i, idx := range v.vram {
		r, g, b := v.entryRGB(int(idx))
		j := i * 4
		dst.Pix[j+0] = r
		dst.Pix[j+1] = g
		dst.Pix[j+2] = b
		dst.Pix[j+3] = 0xFF
	}
	return dst
}

// ModeSwitches counts SetGraphicsMode and SetTextMode calls.
func (v *VGADevice) ModeSwitches() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.modeSwitches
}

func (v *VGADevice) entryRGB(i int) (r, g, b uint8) {
	p := v.palette[i*3 : i*3+3]
	return expand6to8(p[0]), expand6to8(p[1]), expand6to8(p[2])
}

// expand6to8 widens a 6-bit DAC value: (v << 2) | (v >> 4).
func expand6to8(v uint8) uint8 {
	return (v << 2) | (v >> 4)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

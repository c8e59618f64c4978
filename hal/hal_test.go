package hal

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestVGADevicePalette(t *testing.T) {
	v := NewVGADevice()
	if got := v.PaletteColor(15); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("white=%v", got)
	}
	if got := v.PaletteColor(4); got != (color.RGBA{R: 170, G: 0, B: 0, A: 255}) {
		t.Fatalf("red=%v", got)
	}
	r, g, b := v.PaletteEntry(255)
	if r != 63 || g != 63 || b != 63 {
		t.Fatalf("last gray=%d,%d,%d, want 63", r, g, b)
	}
	v.SetPaletteEntry(1, 0xFF, 0x40, 0x01)
	r, g, b = v.PaletteEntry(1)
	if r != 0x3F || g != 0 || b != 1 {
		t.Fatalf("SetPaletteEntry kept high bits: %d,%d,%d", r, g, b)
	}
}

func TestExpand6to8(t *testing.T) {
	for _, tc := range []struct{ in, want uint8 }{{0, 0}, {63, 255}, {42, 170}, {21, 85}} {
		if got := expand6to8(tc.in); got != tc.want {
			t.Fatalf("expand6to8(%d)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestVGADeviceModes(t *testing.T) {
	v := NewVGADevice()
	if err := v.SetGraphicsMode(ScreenSize640x480, 4); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	if v.PixelWidth() != 640 || v.PixelHeight() != 480 || !v.Graphics() {
		t.Fatalf("mode not applied")
	}
	if err := v.SetGraphicsMode(ScreenSize(99), 4); err == nil {
		t.Fatalf("unknown size accepted")
	}
	if err := v.SetGraphicsMode(ScreenSize320x200, 32); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("depth 32 err=%v", err)
	}
	if err := v.SetTextMode(); err != nil {
		t.Fatalf("SetTextMode: %v", err)
	}
	if v.Graphics() {
		t.Fatalf("still in graphics mode")
	}
	v.SetPixel(1, 1, 3)
	if v.GetPixel(1, 1) != 0 {
		t.Fatalf("text mode accepted a pixel write")
	}
}

func TestVGADeviceMasksIndexByDepth(t *testing.T) {
	v := NewVGADevice()
	if err := v.SetGraphicsMode(ScreenSize640x480, 4); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	v.SetPixel(10, 10, 0x1F)
	if got := v.GetPixel(10, 10); got != 0x0F {
		t.Fatalf("pixel=%#x, want 0x0f", got)
	}
	v.SetPixel(640, 0, 1)
	v.SetPixel(0, 480, 1)
	if got := v.GetPixel(640, 0); got != 0 {
		t.Fatalf("off-screen read=%d", got)
	}
}

func TestVGADeviceFillClips(t *testing.T) {
	v := NewVGADevice()
	if err := v.SetGraphicsMode(ScreenSize320x200, 8); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	v.DrawFilledRectangle(-10, -10, 20, 20, 200)
	if v.GetPixel(9, 9) != 200 || v.GetPixel(10, 10) != 0 {
		t.Fatalf("fill bounds wrong")
	}
	v.DrawFilledRectangle(310, 190, 100, 100, 7)
	if v.GetPixel(319, 199) != 7 {
		t.Fatalf("edge fill missing")
	}
}

func TestVGADeviceClosestColor(t *testing.T) {
	v := NewVGADevice()
	if err := v.SetGraphicsMode(ScreenSize640x480, 4); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	if got := v.ClosestColorInPalette(color.RGBA{R: 250, G: 250, B: 250, A: 255}); got != 15 {
		t.Fatalf("near white=%d, want 15", got)
	}
	if got := v.ClosestColorInPalette(color.RGBA{R: 0, G: 0, B: 160, A: 255}); got != 1 {
		t.Fatalf("near blue=%d, want 1", got)
	}

	if err := v.SetGraphicsMode(ScreenSize320x200, 8); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	// Pure red only exists in the color cube once all 256 entries are usable.
	if got := v.ClosestColorInPalette(color.RGBA{R: 255, A: 255}); got < 16 {
		t.Fatalf("8-bit red=%d, want a cube entry", got)
	}
}

func TestVGADeviceSnapshot(t *testing.T) {
	v := NewVGADevice()
	if err := v.SetGraphicsMode(ScreenSize320x200, 8); err != nil {
		t.Fatalf("SetGraphicsMode: %v", err)
	}
	v.SetPixel(3, 4, 15)
	img := v.SnapshotRGBA(nil)
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 200 {
		t.Fatalf("snapshot bounds=%v", img.Bounds())
	}
	if got := img.RGBAAt(3, 4); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("snapshot pixel=%v", got)
	}
	if again := v.SnapshotRGBA(img); again != img {
		t.Fatalf("snapshot did not reuse destination")
	}
}

func TestHostFramebufferFormats(t *testing.T) {
	fb, err := NewHostFramebuffer(4, 2, PixelFormatRGB565)
	if err != nil {
		t.Fatalf("NewHostFramebuffer: %v", err)
	}
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 16 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(255, 0, 0)
	if got := fb.SnapshotRGBA(nil).RGBAAt(3, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("rgb565 red=%v", got)
	}

	if err := fb.SetMode(3, 3, PixelFormatXRGB8888); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	fb.ClearRGB(1, 2, 3)
	if b := fb.Buffer(); b[0] != 3 || b[1] != 2 || b[2] != 1 {
		t.Fatalf("xrgb layout=%v", b[:4])
	}
	if got := fb.SnapshotRGBA(nil).RGBAAt(2, 2); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("xrgb snapshot=%v", got)
	}
	if err := fb.SetMode(3, 3, PixelFormat(9)); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("unknown format err=%v", err)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	r, g, b := RGB888From565(RGB565(255, 255, 255))
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white=%d,%d,%d", r, g, b)
	}
}

func TestRenderPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := RenderPreview(&buf, img, 4, 10); err != nil {
		t.Fatalf("RenderPreview: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("lines=%d, want 2", strings.Count(out, "\n"))
	}
	if !strings.HasPrefix(out, "\x1b[38;2;255;0;0m") {
		t.Fatalf("first cell=%q", out[:20])
	}
	buf.Reset()
	if err := WritePreview(&buf, img); err != nil || buf.Len() != 0 {
		t.Fatalf("non-terminal preview wrote %d bytes, err=%v", buf.Len(), err)
	}
}

func TestHostLoggerAndConfig(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHost(HostConfig{Backend: "fb"}, &buf)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("bytes"))
	if buf.String() != "hello\nbytes\n" {
		t.Fatalf("log=%q", buf.String())
	}
	if h.Display().Framebuffer().Width() != 320 {
		t.Fatalf("default framebuffer width=%d", h.Display().Framebuffer().Width())
	}
	if img := h.snapshot(nil); img.Bounds().Dx() != 320 {
		t.Fatalf("fb snapshot width=%d", img.Bounds().Dx())
	}
	if _, err := newHost(HostConfig{Backend: "cga"}, &buf); err == nil {
		t.Fatalf("unknown backend accepted")
	}
}

//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"
)

// HostConfig selects the devices of the host HAL.
type HostConfig struct {
	// Backend names the device the window and snapshots show: "vga" or "fb".
	Backend string
	// FBWidth and FBHeight size the initial linear framebuffer.
	FBWidth  int
	FBHeight int
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *HostFramebuffer
	vga    *VGADevice
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	return newHost(cfg, os.Stdout)
}

func newHost(cfg HostConfig, logOut io.Writer) (*hostHAL, error) {
	if cfg.Backend == "" {
		cfg.Backend = "vga"
	}
	if cfg.Backend != "vga" && cfg.Backend != "fb" {
		return nil, fmt.Errorf("hal: unknown backend %q", cfg.Backend)
	}
	if cfg.FBWidth <= 0 || cfg.FBHeight <= 0 {
		cfg.FBWidth, cfg.FBHeight = 320, 240
	}
	fb, err := NewHostFramebuffer(cfg.FBWidth, cfg.FBHeight, PixelFormatRGB565)
	if err != nil {
		return nil, err
	}
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: logOut},
		fb:     fb,
		vga:    NewVGADevice(),
		kbd:    newHostKeyboard(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, vga: h.vga} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

// snapshot renders the selected device into dst.
func (h *hostHAL) snapshot(dst *image.RGBA) *image.RGBA {
	if h.cfg.Backend == "fb" {
		return h.fb.SnapshotRGBA(dst)
	}
	return h.vga.SnapshotRGBA(dst)
}

type hostDisplay struct {
	fb  *HostFramebuffer
	vga *VGADevice
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) VGA() VGA                 { return d.vga }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

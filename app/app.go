package app

import (
	"fmt"

	"sparkgfx/gfx/canvas"
	"sparkgfx/gfx/console"
	"sparkgfx/gfx/fb"
	"sparkgfx/gfx/vga"
	"sparkgfx/hal"
)

type Config struct {
	// Backend is "vga" (default) or "fb".
	Backend string
	// Mode is the video mode to start in; zero means the backend default.
	Mode canvas.Mode
	// TermDemo runs the VT100 console demo instead of the benchmark.
	TermDemo bool
}

type system struct {
	h   hal.HAL
	log hal.Logger
	c   *canvas.Canvas
	kbd hal.Keyboard

	bench *bench
	demo  *termDemo

	off bool
}

// New starts the benchmark on the default VGA canvas.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the canvas and returns the per-tick step function.
// Setup errors are returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	c, err := openCanvas(h, cfg)
	if err != nil {
		return nil, err
	}
	s := &system{h: h, log: h.Logger(), c: c}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}
	if cfg.TermDemo {
		s.demo = newTermDemo(console.New(c, nil))
	} else {
		s.bench = newBench(c, s.log)
	}
	s.logf("app: %s %s", c.Name(), c.Mode())
	return s, nil
}

func openCanvas(h hal.HAL, cfg Config) (*canvas.Canvas, error) {
	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: no display")
	}
	switch cfg.Backend {
	case "", "vga":
		drv := disp.VGA()
		if drv == nil {
			return nil, fmt.Errorf("app: no VGA device")
		}
		c, _, err := vga.NewCanvas(drv, cfg.Mode, vga.WithLogger(h.Logger()))
		return c, err
	case "fb":
		dev := disp.Framebuffer()
		if dev == nil {
			return nil, fmt.Errorf("app: no framebuffer")
		}
		c, _, err := fb.NewCanvas(dev, fb.WithLogger(h.Logger()))
		if err != nil {
			return nil, err
		}
		if cfg.Mode != (canvas.Mode{}) {
			if err := c.SetMode(cfg.Mode); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
	return nil, fmt.Errorf("app: unknown backend %q", cfg.Backend)
}

func (s *system) step() error {
	s.pollKeys()
	if s.off {
		return nil
	}
	if s.demo != nil {
		return s.guard(s.demo.step)
	}
	return s.guard(s.bench.step)
}

func (s *system) pollKeys() {
	if s.kbd == nil {
		return
	}
	for {
		select {
		case ev := <-s.kbd.Events():
			if ev.Press {
				s.key(ev)
			}
		default:
			return
		}
	}
}

func (s *system) key(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyEscape:
		if !s.off {
			s.off = true
			s.c.Disable()
		}
	case hal.KeyEnter, hal.KeySpace:
		if s.bench != nil && !s.off {
			s.bench.skip()
		}
	}
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

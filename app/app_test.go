package app

import (
	"strings"
	"testing"

	"sparkgfx/gfx/canvas"
	"sparkgfx/hal"
)

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func (l *lines) find(prefix string) int {
	for i, s := range *l {
		if strings.HasPrefix(s, prefix) {
			return i
		}
	}
	return -1
}

type keys chan hal.KeyEvent

func (k keys) Events() <-chan hal.KeyEvent { return k }

type testHAL struct {
	log  lines
	fb   *hal.HostFramebuffer
	vga  *hal.VGADevice
	keys keys
}

func newTestHAL(t *testing.T) *testHAL {
	t.Helper()
	fb, err := hal.NewHostFramebuffer(80, 60, hal.PixelFormatRGB565)
	if err != nil {
		t.Fatalf("NewHostFramebuffer: %v", err)
	}
	return &testHAL{fb: fb, vga: hal.NewVGADevice(), keys: make(keys, 8)}
}

func (h *testHAL) Logger() hal.Logger           { return &h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) VGA() hal.VGA                 { return h.vga }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.keys }

var smallVGA = canvas.Mode{Width: 320, Height: 200, Depth: canvas.ColorDepth8}

func TestBenchLogsEveryTestOnce(t *testing.T) {
	h := newTestHAL(t)
	s, err := newSystem(h, Config{Backend: "vga", Mode: smallVGA})
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	if h.log.find("vga: graphics mode 320x200x8") < 0 || h.log.find("app: VGACanvas 320x200x8") < 0 {
		t.Fatalf("log=%q", h.log)
	}

	n := len(s.bench.tests)
	for i := 0; i < 2*n; i++ {
		if err := s.step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	count := 0
	for _, line := range h.log {
		if strings.HasPrefix(line, "bench: ") && !strings.HasPrefix(line, "bench: total") {
			count++
		}
	}
	if count != n {
		t.Fatalf("bench lines=%d, want %d", count, n)
	}
	if h.log.find("bench: Fill ") < 0 || h.log.find("bench: Readback ") < 0 {
		t.Fatalf("log=%q", h.log)
	}
	if i := h.log.find("bench: total "); i != len(h.log)-1 {
		t.Fatalf("total at %d of %d", i, len(h.log))
	}
}

func TestEnterSkipsTest(t *testing.T) {
	h := newTestHAL(t)
	step := NewWithConfig(h, Config{Mode: smallVGA})
	_ = step()
	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: false}
	_ = step()
	last := h.log[len(h.log)-1]
	if !strings.HasPrefix(last, "bench: Pixels ") {
		t.Fatalf("after skip: %q", last)
	}
}

func TestEscapeDisables(t *testing.T) {
	h := newTestHAL(t)
	step := NewWithConfig(h, Config{Mode: smallVGA})
	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.vga.Graphics() {
		t.Fatalf("still in graphics mode")
	}
	if h.log.find("vga: disabled") < 0 {
		t.Fatalf("log=%q", h.log)
	}
	before := len(h.log)
	_ = step()
	if len(h.log) != before {
		t.Fatalf("step after disable logged %q", h.log[before:])
	}
}

func TestFramebufferBackend(t *testing.T) {
	h := newTestHAL(t)
	step := NewWithConfig(h, Config{Backend: "fb"})
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.Presents() != 1 {
		t.Fatalf("presents=%d", h.fb.Presents())
	}
	if h.log.find("app: FramebufferCanvas 80x60x16") < 0 {
		t.Fatalf("log=%q", h.log)
	}
}

func TestFramebufferModeSwitch(t *testing.T) {
	h := newTestHAL(t)
	_ = NewWithConfig(h, Config{Backend: "fb", Mode: canvas.Mode{Width: 320, Height: 240, Depth: canvas.ColorDepth16}})
	if h.fb.Width() != 320 || h.fb.Height() != 240 {
		t.Fatalf("framebuffer %dx%d", h.fb.Width(), h.fb.Height())
	}
}

func TestSetupErrors(t *testing.T) {
	h := newTestHAL(t)
	if err := NewWithConfig(h, Config{Backend: "gpu"})(); err == nil {
		t.Fatalf("unknown backend accepted")
	}
	bad := canvas.Mode{Width: 800, Height: 600, Depth: canvas.ColorDepth32}
	if err := NewWithConfig(h, Config{Mode: bad})(); err == nil {
		t.Fatalf("unsupported VGA mode accepted")
	}
	if h.vga.ModeSwitches() != 0 {
		t.Fatalf("device touched by a rejected mode")
	}
}

func TestTermDemo(t *testing.T) {
	h := newTestHAL(t)
	step := NewWithConfig(h, Config{Backend: "fb", TermDemo: true})
	for i := 0; i < 50; i++ {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if h.fb.Presents() == 0 {
		t.Fatalf("nothing presented")
	}
	img := h.fb.SnapshotRGBA(nil)
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0x40 || img.Pix[i+1] > 0x40 || img.Pix[i+2] > 0x40 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("console drew nothing")
	}
}

func TestGuardRecovers(t *testing.T) {
	h := newTestHAL(t)
	s, err := newSystem(h, Config{Backend: "fb"})
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	err = s.guard(func() error { panic("boom") })
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v", err)
	}
	if h.log.find("app panic: boom") < 0 {
		t.Fatalf("log=%q", h.log)
	}
	if got := s.c.PointColor(79, 59); got != canvas.White {
		t.Fatalf("panic screen background=%v", got)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("got %q %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("got %q %q", p, r)
	}
}

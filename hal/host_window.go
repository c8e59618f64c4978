//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"

	"sparkgfx/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the selected device and
// forwards keyboard input. It blocks until the window closes or step fails.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h, err := newHost(cfg, os.Stdout)
	if err != nil {
		return err
	}
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	g.img = h.snapshot(nil)
	w, hh := g.img.Bounds().Dx(), g.img.Bounds().Dy()
	ebiten.SetWindowTitle("sparkgfx " + cfg.Backend + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*2, hh*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.img = g.h.snapshot(g.img)
	b := g.img.Bounds()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != b.Dx() || g.fbImg.Bounds().Dy() != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout follows the device resolution, so mode switches resize the
// logical screen.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.img == nil {
		return outsideWidth, outsideHeight
	}
	return g.img.Bounds().Dx(), g.img.Bounds().Dy()
}

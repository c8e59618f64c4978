//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Snapshot, when set, names a PNG file that receives the selected
	// device's content after the last tick.
	Snapshot string
	// Preview prints the final frame to Out as ANSI half-block art when Out
	// is a terminal.
	Preview bool
	Out     io.Writer
}

// RunHeadless drives newApp's step function from a ticker without opening a
// window.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	if hc.Out == nil {
		hc.Out = os.Stdout
	}

	h, err := newHost(cfg, hc.Out)
	if err != nil {
		return err
	}
	step := newApp(h)

	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				return finishHeadless(h, hc)
			}
		}
	}
}

func finishHeadless(h *hostHAL, hc HeadlessConfig) error {
	img := h.snapshot(nil)
	if hc.Snapshot != "" {
		f, err := os.Create(hc.Snapshot)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("snapshot %s: %w", hc.Snapshot, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		h.logger.WriteLineString("snapshot: wrote " + hc.Snapshot)
	}
	if hc.Preview {
		return WritePreview(hc.Out, img)
	}
	return nil
}

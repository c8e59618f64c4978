//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkgfx/app"
	"sparkgfx/gfx/canvas"
	"sparkgfx/hal"
	"sparkgfx/internal/buildinfo"
)

func main() {
	var hc hal.HeadlessConfig
	var (
		cfg      app.Config
		mode     string
		version  bool
		fbWidth  int
		fbHeight int
	)
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hc.Snapshot, "snapshot", "", "Write the final frame to this PNG file (headless mode).")
	flag.BoolVar(&hc.Preview, "preview", false, "Print the final frame to the terminal (headless mode).")
	flag.StringVar(&cfg.Backend, "backend", "vga", "Canvas backend: vga|fb.")
	flag.StringVar(&mode, "mode", "", "Video mode WxHxD (empty = backend default).")
	flag.IntVar(&fbWidth, "fb-width", 320, "Initial framebuffer width.")
	flag.IntVar(&fbHeight, "fb-height", 240, "Initial framebuffer height.")
	flag.BoolVar(&cfg.TermDemo, "term-demo", false, "Run VT100 terminal demo.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if mode != "" {
		m, err := canvas.ParseMode(mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Mode = m
	}

	host := hal.HostConfig{Backend: cfg.Backend, FBWidth: fbWidth, FBHeight: fbHeight}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, newApp, hc); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

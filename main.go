package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Nery2004/Proyecto-3-Space-Travel/app"
	"github.com/Nery2004/Proyecto-3-Space-Travel/config"
	"github.com/Nery2004/Proyecto-3-Space-Travel/hal"
)

func main() {
	var (
		configPath string
		headless   hal.HeadlessConfig
		stream     bool
		workers    int
	)
	flag.StringVar(&configPath, "config", "settings.json", "Path to the settings file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&stream, "stream", false, "Serve PNG frames to websocket clients.")
	flag.IntVar(&workers, "workers", 0, "Rasterizer worker count (overrides settings).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	if workers > 0 {
		cfg.Render.Workers = workers
	}

	h := hal.New(cfg.Video.Width, cfg.Video.Height)
	step := app.New(h, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if stream {
		s, err := hal.NewStreamer(h, hal.StreamConfig{
			Addr:     cfg.Stream.Addr,
			Interval: time.Duration(cfg.Stream.IntervalMs) * time.Millisecond,
		})
		if err != nil {
			fatal(err)
		}
		go func() {
			if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	if headless.Enabled {
		err := hal.RunHeadless(ctx, h, step, headless)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(h, step); err != nil && !errors.Is(err, app.ErrQuit) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

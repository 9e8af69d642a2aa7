package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/rocket-range/audio"
	"github.com/lixenwraith/rocket-range/config"
	"github.com/lixenwraith/rocket-range/core"
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/logging"
	"github.com/lixenwraith/rocket-range/narration"
	"github.com/lixenwraith/rocket-range/network"
	"github.com/lixenwraith/rocket-range/pages"
	"github.com/lixenwraith/rocket-range/render"
)

var (
	pageFlag     = flag.Int("page", 1, "First page to present (1-6)")
	configFlag   = flag.String("config", "", "Config file (default: rockets.toml in . or ~/.config/rocket-range)")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	headlessFlag = flag.Bool("headless", false, "Run pages on a virtual clock without a terminal")
	streamFlag   = flag.String("stream", "", "Stream frames to websocket viewers on this address instead of the terminal")
	listFlag     = flag.Bool("list", false, "List pages and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the view crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *listFlag {
		listPages(os.Stdout)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rockets: %v\n", err)
		os.Exit(1)
	}
}

func listPages(w io.Writer) {
	for _, p := range pages.All() {
		fmt.Fprintf(w, "%d  %s\n", p.Number, p.Title)
	}
}

func run() error {
	if _, err := pages.Get(*pageFlag); err != nil {
		return err
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *colorFlag != "" {
		cfg.View.ColorMode = *colorFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *streamFlag != "" {
		cfg.Stream.Addr = *streamFlag
	}
	interactive := !*headlessFlag && cfg.Stream.Addr == ""

	log, closeLog, err := setupLogging(cfg, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "starting",
		logging.String("config", cfg.File),
		logging.Int("page", *pageFlag),
		logging.Any("interactive", interactive),
	)

	// Audio is optional, the pages run silently without it
	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Warn(ctx, "audio unavailable, continuing without sound", logging.String("error", err.Error()))
	}
	defer sounds.Cleanup()

	collector, err := startMetrics(ctx, cfg.Metrics.Addr, prometheus.NewRegistry(), log)
	if err != nil {
		return err
	}

	transcript := narration.NewTranscript(log)
	host, cleanup, err := newHost(ctx, cfg, transcript, log)
	if err != nil {
		return err
	}
	defer cleanup()

	runner := pages.NewRunner(host, transcript, log)
	runner.Setup = func(lv *engine.LiveView, _ pages.Page) {
		lv.Register(audio.NewEventSounds(sounds))
		if collector != nil {
			collector.Attach(lv)
		}
	}

	err = runner.RunFrom(ctx, *pageFlag)
	switch {
	case err == nil:
		log.Info(ctx, "all pages presented")
		return nil
	case errors.Is(err, render.ErrQuit), errors.Is(err, context.Canceled):
		log.Info(ctx, "stopped", logging.String("reason", err.Error()))
		return nil
	default:
		return err
	}
}

// newHost picks the stream, headless or terminal host
func newHost(ctx context.Context, cfg *config.Config, transcript *narration.Transcript, log logging.Logger) (engine.Host, func(), error) {
	switch {
	case cfg.Stream.Addr != "":
		scfg := network.DebugConfig(cfg.Stream.Addr)
		scfg.TimeScale = cfg.View.TimeScale
		host := network.NewStreamHost(scfg, log)
		core.Go(func() {
			if err := host.ListenAndServe(ctx); err != nil {
				log.Error(ctx, "stream host stopped", logging.String("error", err.Error()))
			}
		})
		return host, func() {}, nil

	case *headlessFlag:
		return engine.NewHeadlessHost(), func() {}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)

	mode, err := render.ResolveColorMode(cfg.View.ColorMode, screen)
	if err != nil {
		screen.Fini()
		return nil, nil, err
	}

	host := render.NewTerminalHost(screen, mode, render.HostConfig{
		FrameInterval: cfg.View.FrameInterval(),
		TimeScale:     cfg.View.TimeScale,
		IdleAdvance:   cfg.View.IdleAdvance,
	}, transcript, log)
	host.Start()

	return host, func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}, nil
}

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/logger"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/tui"
	"github.com/plus3/blockfall/store"
)

func main() {
	cfg, err := config.Load("blockfall-tui", os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The screen belongs to the renderer, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "blockfall-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	lg := logger.NewWithWriters(logFile, logFile)

	scores, closeStore, err := store.Open(cfg.StoreKind, cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreKind, err)
	}
	defer closeStore()

	opts := engine.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Store:     scores,
		Observers: []engine.Observer{engine.LogObserver{Logger: lg}},
		Logger:    lg,
	}
	if cfg.Seed != 0 {
		opts.Rand = engine.SeededRand(cfg.Seed)
	}
	e, err := engine.New(opts)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	terminal, err := input.OpenTerminal()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer terminal.Close()

	locale := render.MustLoadLocale(cfg.Locale)
	screen := tui.New(os.Stdout, locale)
	if err := screen.Init(); err != nil {
		terminal.Close()
		log.Fatalf("Failed to initialise screen: %v", err)
	}
	defer screen.Close()
	render.Attach(e, screen, render.NewCallouts(locale))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	actions := make(chan input.Action, 32)
	go func() {
		if err := terminal.Run(ctx, actions); err != nil && !errors.Is(err, context.Canceled) {
			lg.Warnf("terminal input stopped: %v", err)
		}
	}()

	driver := &engine.Driver{
		Engine:   e,
		Interval: cfg.TickInterval,
		Before: func() {
			for {
				select {
				case act, ok := <-actions:
					if !ok || input.Apply(e, act) {
						cancel()
						return
					}
				default:
					return
				}
			}
		},
	}

	lg.Infof("starting %dx%d board, store=%s locale=%s", cfg.Width, cfg.Height, cfg.StoreKind, locale.Lang())
	driver.Run(ctx)
	lg.Infof("final score %d, high score %d", e.Stats().Score, e.HighScore())
}

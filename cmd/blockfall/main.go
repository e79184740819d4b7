package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/logger"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/window"
	"github.com/plus3/blockfall/store"
)

const debugPanelWidth = 420

func main() {
	cfg, err := config.Load("blockfall", os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.New()
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

	locale := render.MustLoadLocale(cfg.Locale)
	renderer := window.New(locale)
	render.Attach(e, renderer, render.NewCallouts(locale))

	game := &Game{engine: e, renderer: renderer}
	w, h := window.ScreenSize(cfg.Width, cfg.Height)
	if cfg.Debug {
		game.imgui = debugui_ebiten.NewImguiBackend("Blockfall", w+debugPanelWidth, h)
		inspector := debugui.NewInspector(e, 12, 10)
		e.AddObserver(inspector)
		game.debug = debugui.Install(e,
			debugui.NewPerformanceStats(e, 120).Item(),
			inspector.Item(),
		)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Blockfall")
	}

	lg.Infof("starting %dx%d board, store=%s locale=%s debug=%t",
		cfg.Width, cfg.Height, cfg.StoreKind, locale.Lang(), cfg.Debug)
	if err := ebiten.RunGame(game); err != nil {
		lg.Errorf("game loop: %v", err)
	}
	lg.Infof("final score %d, high score %d", e.Stats().Score, e.HighScore())
}

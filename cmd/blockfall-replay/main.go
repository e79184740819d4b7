package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/logger"
	"github.com/plus3/blockfall/store"
)

// maxPieces stops a game the policy would otherwise play forever.
const maxPieces = 2000

func main() {
	cfg, err := config.Load("blockfall-replay", os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.New()
	scores, closeStore, err := store.Open(cfg.StoreKind, cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreKind, err)
	}
	defer closeStore()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	report, err := replay(cfg, seed, scores, lg)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	fmt.Println("\n\n--- Replay Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// replay plays cfg.Games headless games on one seeded engine, steering
// every piece with the placement policy.
func replay(cfg config.Config, seed uint64, scores store.Store, lg *logger.Logger) (*Report, error) {
	e, err := engine.New(engine.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Rand:      engine.SeededRand(seed),
		Store:     scores,
		Headless:  true,
		Observers: []engine.Observer{engine.LogObserver{Logger: lg}},
		Logger:    lg,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Seed:      seed,
		MaxPieces: maxPieces,
	}
	counts := make(map[engine.Kind]int, engine.BagSize)

	lg.Infof("replaying %d game(s) with seed %d", cfg.Games, seed)
	startTime := time.Now()
	for game := 0; game < cfg.Games; game++ {
		if game == 0 {
			e.Start()
		} else {
			e.Reset(true)
		}

		gameStart := time.Now()
		var spawned []engine.Kind
		for e.State() == engine.StateRunning && len(spawned) < maxPieces {
			active, _ := e.Active()
			target, ok := bestPlacement(e)
			if !ok {
				break
			}
			spawned = append(spawned, active.Kind)
			play(e, target)
			e.Tick(cfg.TickInterval)
		}
		report.GameTime.Samples = append(report.GameTime.Samples, time.Since(gameStart))

		result := GameResult{
			Stats:  e.Stats(),
			Pieces: len(spawned),
			Capped: e.State() == engine.StateRunning,
		}
		report.Games = append(report.Games, result)
		report.BestScore = max(report.BestScore, result.Stats.Score)
		report.Bags.Add(spawned)
		for _, kind := range engine.Kinds {
			counts[kind] += e.PieceCount(kind)
		}
		lg.Infof("game %d: score=%d lines=%d pieces=%d", game+1, result.Stats.Score, result.Stats.Lines, result.Pieces)
	}

	report.TotalTime = time.Since(startTime)
	report.GameTime.Finalize()
	report.HighScore = e.HighScore()
	report.Systems = e.SchedulerStats()
	for _, kind := range engine.Kinds {
		report.PieceCounts = append(report.PieceCounts, PieceCount{Kind: kind, Count: counts[kind]})
	}
	return report, nil
}

package engine

import (
	"fmt"

	"github.com/plus3/blockfall/logger"
)

// Stats is the player's progress snapshot.
type Stats struct {
	Score int
	Level int
	Lines int
}

func initialStats() Stats {
	return Stats{Level: 1}
}

// Event is a notification pushed to observers. The concrete types are
// StatsUpdated, GameOver, HighScore, LineCleared, LevelUp and GameReset.
type Event interface {
	event()
}

// StatsUpdated fires on every spawn, score change and level change.
type StatsUpdated struct {
	Stats Stats
}

// GameOver fires once when a spawn collides.
type GameOver struct {
	Stats     Stats
	HighScore int
}

// HighScore fires before GameOver when the final score beats the stored one.
type HighScore struct {
	Score    int
	Previous int
}

// LineCleared fires after one or more rows are removed. Rows holds the
// board indices the cleared rows occupied, bottom first. Points is what the
// clear itself scored, tetris bonus included and drop points excluded.
type LineCleared struct {
	Cleared      int
	Rows         []int
	Points       int
	Stats        Stats
	LevelChanged bool
}

// LevelUp fires when the line total moves the player to a new level.
type LevelUp struct {
	Level int
	Stats Stats
}

// GameReset fires when Reset wipes the game.
type GameReset struct{}

func (StatsUpdated) event() {}
func (GameOver) event()     {}
func (HighScore) event()    {}
func (LineCleared) event()  {}
func (LevelUp) event()      {}
func (GameReset) event()    {}

// Observer receives engine notifications synchronously.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) { f(e) }

// LogObserver writes notable events to a logger. StatsUpdated is skipped
// since it fires on every spawn.
type LogObserver struct {
	Logger *logger.Logger
}

func (o LogObserver) Notify(e Event) {
	switch ev := e.(type) {
	case GameOver:
		o.Logger.Event("game-over", fmt.Sprintf("score=%d level=%d lines=%d high=%d",
			ev.Stats.Score, ev.Stats.Level, ev.Stats.Lines, ev.HighScore))
	case HighScore:
		o.Logger.Event("high-score", fmt.Sprintf("score=%d previous=%d", ev.Score, ev.Previous))
	case LineCleared:
		o.Logger.Event("line-clear", fmt.Sprintf("cleared=%d rows=%v lines=%d level-changed=%t",
			ev.Cleared, ev.Rows, ev.Stats.Lines, ev.LevelChanged))
	case LevelUp:
		o.Logger.Event("level-up", fmt.Sprintf("level=%d lines=%d score=%d",
			ev.Level, ev.Stats.Lines, ev.Stats.Score))
	}
}

package engine

import (
	"time"

	"github.com/plus3/blockfall/logger"
	"github.com/plus3/blockfall/store"
)

// Timing and scoring constants.
const (
	BaseDropInterval       = 1000 * time.Millisecond
	MinDropInterval        = 100 * time.Millisecond
	DropIntervalStep       = 75 * time.Millisecond
	SoftDropRepeatInterval = 50 * time.Millisecond

	LinesPerLevel = 10
	TetrisBonus   = 400

	// HighScoreKey is the store key the high score is kept under.
	HighScoreKey = "tetris_high_score"
)

// lineScores maps a simultaneous clear count to its base score.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock. time.Time carries a monotonic reading,
// so differences are safe across wall-clock adjustments.
var SystemClock Clock = systemClock{}

// Options configures a new Engine.
type Options struct {
	// Board size in columns and rows.
	Width  int
	Height int

	// Rand drives bag shuffles. Defaults to math/rand/v2's Float64.
	Rand RandFunc

	// Clock is read by Start and Frame. Defaults to SystemClock.
	Clock Clock

	// Store persists the high score. Defaults to an in-memory store.
	Store store.Store

	// Headless skips render systems entirely.
	Headless bool

	Observers []Observer

	// Logger receives warnings for swallowed store failures. Optional.
	Logger *logger.Logger
}

// DropIntervalForLevel returns the gravity period at the given level.
func DropIntervalForLevel(level int) time.Duration {
	return max(MinDropInterval, BaseDropInterval-time.Duration(level-1)*DropIntervalStep)
}

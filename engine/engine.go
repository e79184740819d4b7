// Package engine implements the falling-block puzzle simulation: the board,
// the 7-bag randomizer, movement and rotation with wall kicks, line clears,
// scoring and levels, the hold slot, and a tick-driven update loop.
//
// The engine owns no goroutine or timer. A host calls Tick (or Frame) once
// per displayed frame and forwards input through the exported operations;
// all state changes happen synchronously inside those calls. Per-frame work
// runs as ecs systems: the built-in gravity systems first, then any added
// effect systems, then render systems. An Engine is not safe for concurrent
// use.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/logger"
	"github.com/plus3/blockfall/store"
)

// State is the lifecycle phase of an engine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Engine is a single game of falling blocks.
type Engine struct {
	board   *Board
	current *Piece
	queue   *queue

	held         Kind
	holdUsedTurn bool

	stats     Stats
	highScore int
	counts    *intmap.Map[Kind, int]

	state   State
	running bool

	timing    *ecs.Singleton[Timing]
	lastFrame time.Time

	clock     Clock
	store     store.Store
	log       *logger.Logger
	observers []Observer

	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	headless  bool
}

// New builds an idle engine with an empty board and a filled next queue.
// The high score is read from the store; read failures count as no score.
func New(opts Options) (*Engine, error) {
	if opts.Width < 4 || opts.Height < 4 {
		return nil, fmt.Errorf("engine: board %dx%d too small, need at least 4x4", opts.Width, opts.Height)
	}

	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	e := &Engine{
		board:     NewBoard(opts.Width, opts.Height),
		queue:     newQueue(opts.Rand),
		stats:     initialStats(),
		counts:    intmap.New[Kind, int](BagSize),
		timing:    ecs.NewSingleton(storage, initialTiming()),
		clock:     opts.Clock,
		store:     opts.Store,
		log:       opts.Logger,
		observers: append([]Observer(nil), opts.Observers...),
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		headless:  opts.Headless,
	}
	if e.clock == nil {
		e.clock = SystemClock
	}
	if e.store == nil {
		e.store = store.NewMemory()
	}
	if e.log == nil {
		e.log = logger.Discard()
	}

	e.scheduler.Register(&GravitySystem{engine: e})
	e.scheduler.Register(&SoftDropRepeatSystem{engine: e})
	e.scheduler.Register(&InterpolationSystem{engine: e})

	e.queue.refill()
	e.loadHighScore()
	return e, nil
}

// AddObserver registers o to receive every subsequent notification.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// AddSystem appends an update-phase system (effects, metrics). It runs
// after the built-in gravity systems, and only while the game is running.
func (e *Engine) AddSystem(system ecs.System) {
	e.scheduler.Register(system)
}

// AddRenderSystem appends a system that draws. Render systems run after
// every update system, keep running while the game is paused or over, and
// are skipped entirely when the engine is headless.
func (e *Engine) AddRenderSystem(system ecs.System) {
	e.scheduler.RegisterPhase(ecs.PhaseRender, system)
}

// Storage returns the entity storage the engine's systems share. Hosts
// register their own components on its registry and spawn entities there.
func (e *Engine) Storage() *ecs.Storage {
	return e.storage
}

// SchedulerStats reports per-system execution timings.
func (e *Engine) SchedulerStats() *ecs.SchedulerStats {
	return e.scheduler.CollectStats()
}

// Width returns the number of board columns.
func (e *Engine) Width() int { return e.board.width }

// Height returns the number of board rows.
func (e *Engine) Height() int { return e.board.height }

// State returns the lifecycle phase.
func (e *Engine) State() State { return e.state }

// Running reports whether gravity and input are live.
func (e *Engine) Running() bool { return e.running }

// Stats returns score, level and cleared lines.
func (e *Engine) Stats() Stats { return e.stats }

// HighScore returns the best score seen, including the current game once it ends.
func (e *Engine) HighScore() int { return e.highScore }

// DropInterval returns the current gravity period.
func (e *Engine) DropInterval() time.Duration { return e.timing.Get().DropInterval }

// FallProgress returns how far the active piece is towards its next
// gravity step, from 0 to 1.
func (e *Engine) FallProgress() float64 { return e.timing.Get().FallProgress }

// SoftDropHeld reports whether the down input is held.
func (e *Engine) SoftDropHeld() bool { return e.timing.Get().SoftDropHeld }

// Held returns the kind in the hold slot, if any.
func (e *Engine) Held() (Kind, bool) {
	return e.held, e.held != Empty
}

// Active returns a copy of the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	if e.current == nil {
		return Piece{}, false
	}
	return *e.current, true
}

// Next returns up to n upcoming kinds, front first.
func (e *Engine) Next(n int) []Kind {
	return e.queue.peek(n)
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() [][]Kind {
	return e.board.Rows()
}

// PieceCount returns how many pieces of kind have spawned from the queue
// since the last reset.
func (e *Engine) PieceCount(kind Kind) int {
	n, _ := e.counts.Get(kind)
	return n
}

// Collides reports whether p would overlap walls, floor or locked cells.
func (e *Engine) Collides(p Piece, x, y int) bool {
	return e.board.Collides(shapeOf(p.Kind, p.Rotation), x, y)
}

// Start begins or resumes play. It spawns a piece when none is active and
// captures the clock so the next Frame measures from now. A finished game
// stays finished until Reset.
func (e *Engine) Start() {
	if e.running || e.state == StateGameOver {
		return
	}
	e.running = true
	e.state = StateRunning
	if e.current == nil {
		e.spawn()
	}
	e.lastFrame = e.clock.Now()
}

// TogglePause pauses a running engine, or starts one that is not running.
func (e *Engine) TogglePause() {
	if !e.running {
		e.Start()
		return
	}
	e.running = false
	e.state = StatePaused
}

// Reset clears the board, stats, queue, hold slot and timers. With
// startImmediately the game starts at once, otherwise it waits idle.
func (e *Engine) Reset(startImmediately bool) {
	e.board.Clear()
	e.stats = initialStats()
	*e.timing.Get() = initialTiming()
	e.current = nil
	e.queue.reset()
	e.held = Empty
	e.holdUsedTurn = false
	e.counts = intmap.New[Kind, int](BagSize)
	e.queue.refill()

	e.running = false
	e.state = StateIdle
	e.emit(GameReset{})
	if startImmediately {
		e.Start()
	}
}

// Tick advances the simulation by elapsed time. Unless the engine is
// running, only the render systems execute, with a zero elapsed time, so
// hosts can keep drawing the idle, paused and game-over screens.
func (e *Engine) Tick(elapsed time.Duration) {
	if !e.running {
		if !e.headless {
			e.scheduler.Once(0, ecs.PhaseRender)
		}
		return
	}
	elapsed = max(elapsed, 0)
	if e.headless {
		e.scheduler.Once(elapsed, ecs.PhaseUpdate)
		return
	}
	e.scheduler.Once(elapsed)
}

// Frame ticks by the clock time elapsed since the previous Frame or Start.
func (e *Engine) Frame() {
	now := e.clock.Now()
	elapsed := now.Sub(e.lastFrame)
	e.lastFrame = now
	e.Tick(elapsed)
}

// spawn pops the next kind and places it at the top. A spawn that collides
// ends the game.
func (e *Engine) spawn() {
	kind := e.queue.pop()
	piece := spawnPiece(kind, e.board.width)
	if e.Collides(piece, piece.X, piece.Y) {
		e.gameOver()
		return
	}
	e.current = &piece
	e.holdUsedTurn = false
	n, _ := e.counts.Get(kind)
	e.counts.Put(kind, n+1)
	e.emitStats()
}

func (e *Engine) gameOver() {
	e.running = false
	e.state = StateGameOver
	e.current = nil
	e.timing.Get().SoftDropHeld = false

	if e.stats.Score > e.highScore {
		previous := e.highScore
		e.highScore = e.stats.Score
		if err := store.SetInt(e.store, HighScoreKey, e.highScore); err != nil {
			e.log.Warnf("saving high score: %v", err)
		}
		e.emit(HighScore{Score: e.highScore, Previous: previous})
	}
	e.emit(GameOver{Stats: e.stats, HighScore: e.highScore})
}

func (e *Engine) loadHighScore() {
	n, err := store.GetInt(e.store, HighScoreKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err != nil:
		e.log.Warnf("loading high score: %v", err)
		return
	case n > 0:
		e.highScore = n
	}
}

func (e *Engine) emit(ev Event) {
	for _, o := range e.observers {
		o.Notify(ev)
	}
}

func (e *Engine) emitStats() {
	e.emit(StatsUpdated{Stats: e.stats})
}

package engine

import (
	"time"

	"github.com/plus3/blockfall/ecs"
)

// Timing is the gravity clock. It lives in the engine's storage as a
// singleton so the gravity systems and the debug inspector share it.
type Timing struct {
	DropInterval    time.Duration
	DropAccumulator time.Duration
	SoftDropHeld    bool
	SoftDropRepeat  time.Duration
	// FallProgress is how far the piece is towards its next gravity step, 0..1.
	FallProgress float64
}

func initialTiming() Timing {
	return Timing{DropInterval: BaseDropInterval}
}

// restartDrop starts a fresh gravity interval, used whenever the piece
// moves down for another reason or a new piece arrives.
func (t *Timing) restartDrop() {
	t.DropAccumulator = 0
	t.FallProgress = 0
}

// GravitySystem advances the gravity accumulator and steps the piece down
// once per drop interval, locking it when blocked.
type GravitySystem struct {
	Timing ecs.Singleton[Timing]
	engine *Engine
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	e, t := s.engine, s.Timing.Get()
	if !e.running {
		return
	}
	t.DropAccumulator += frame.Elapsed
	if t.DropAccumulator >= t.DropInterval {
		t.DropAccumulator = 0
		if !e.stepDown() {
			e.lockPiece()
		}
	}
}

// SoftDropRepeatSystem forces an extra step every SoftDropRepeatInterval
// while the down input is held, scoring like a manual soft drop.
type SoftDropRepeatSystem struct {
	Timing ecs.Singleton[Timing]
	engine *Engine
}

func (s *SoftDropRepeatSystem) Execute(frame *ecs.UpdateFrame) {
	e, t := s.engine, s.Timing.Get()
	if !e.running || !t.SoftDropHeld || e.current == nil {
		t.SoftDropRepeat = 0
		return
	}
	t.SoftDropRepeat += frame.Elapsed
	for t.SoftDropRepeat >= SoftDropRepeatInterval {
		t.SoftDropRepeat -= SoftDropRepeatInterval
		if !e.stepDown() {
			e.lockPiece()
			break
		}
		e.awardSoftDrop()
	}
}

// InterpolationSystem computes how far the piece has travelled towards its
// next gravity step, for smooth rendering.
type InterpolationSystem struct {
	Timing ecs.Singleton[Timing]
	engine *Engine
}

func (s *InterpolationSystem) Execute(*ecs.UpdateFrame) {
	e, t := s.engine, s.Timing.Get()
	if e.current == nil || t.DropInterval <= 0 {
		t.FallProgress = 0
		return
	}
	if e.board.Collides(shapeOf(e.current.Kind, e.current.Rotation), e.current.X, e.current.Y+1) {
		t.FallProgress = 0
		return
	}
	t.FallProgress = min(1, float64(t.DropAccumulator)/float64(t.DropInterval))
}

package engine

// PreviewSize is how many upcoming kinds a snapshot carries.
const PreviewSize = 3

// Snapshot is an immutable copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height int
	Cells         [][]Kind

	Active    *Piece
	ActiveAt  []Point
	GhostY    int
	FallRatio float64

	Next []Kind
	Held Kind

	Stats     Stats
	HighScore int
	State     State
}

// Snapshot copies the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Width:     e.board.width,
		Height:    e.board.height,
		Cells:     e.board.Rows(),
		FallRatio: e.timing.Get().FallProgress,
		Next:      e.queue.peek(PreviewSize),
		Held:      e.held,
		Stats:     e.stats,
		HighScore: e.highScore,
		State:     e.state,
	}
	if e.current != nil {
		active := *e.current
		snap.Active = &active
		snap.ActiveAt = active.Cells()
		snap.GhostY, _ = e.GhostY()
	}
	return snap
}

// GhostCells returns the board cells the active piece would occupy after a
// hard drop, or nil without an active piece.
func (s Snapshot) GhostCells() []Point {
	if s.Active == nil {
		return nil
	}
	ghost := *s.Active
	ghost.Y = s.GhostY
	return ghost.Cells()
}

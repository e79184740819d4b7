package engine

// Input operations. Each one is ignored unless the engine is running, and
// an illegal move simply leaves the piece where it is.

func (e *Engine) MoveLeft()  { e.move(-1) }
func (e *Engine) MoveRight() { e.move(1) }
func (e *Engine) RotateCW()  { e.rotate() }
func (e *Engine) DropSoft()  { e.softDrop() }
func (e *Engine) DropHard()  { e.hardDrop() }

func (e *Engine) acceptsInput() bool {
	return e.running && e.current != nil
}

func (e *Engine) move(dir int) {
	if !e.acceptsInput() {
		return
	}
	nx := e.current.X + dir
	if !e.Collides(*e.current, nx, e.current.Y) {
		e.current.X = nx
	}
}

// rotate turns the piece clockwise, trying the kick offsets in order when
// the rotated shape does not fit in place.
func (e *Engine) rotate() {
	if !e.acceptsInput() {
		return
	}
	next := (e.current.Rotation + 1) % 4
	shape := shapeOf(e.current.Kind, next)
	x, y := e.current.X, e.current.Y
	if !e.board.Collides(shape, x, y) {
		e.current.Rotation = next
		return
	}
	for _, shift := range kicks {
		if !e.board.Collides(shape, x+shift, y) {
			e.current.Rotation = next
			e.current.X = x + shift
			return
		}
	}
}

// stepDown moves the piece one row down if it fits.
func (e *Engine) stepDown() bool {
	if e.current == nil {
		return false
	}
	ny := e.current.Y + 1
	if e.Collides(*e.current, e.current.X, ny) {
		return false
	}
	e.current.Y = ny
	return true
}

func (e *Engine) awardSoftDrop() {
	e.stats.Score++
	e.emitStats()
	e.timing.Get().restartDrop()
}

func (e *Engine) softDrop() {
	if !e.acceptsInput() {
		return
	}
	if !e.stepDown() {
		e.lockPiece()
		return
	}
	e.awardSoftDrop()
}

func (e *Engine) hardDrop() {
	if !e.acceptsInput() {
		return
	}
	distance := 0
	for e.stepDown() {
		distance++
	}
	e.stats.Score += distance * 2
	e.lockPiece()
	e.timing.Get().restartDrop()
}

// SetSoftDropHeld records the down input state. Pressing performs one soft
// drop straight away; while held, SoftDropRepeatSystem repeats it every
// SoftDropRepeatInterval. Releasing stops the repeat.
func (e *Engine) SetSoftDropHeld(held bool) {
	t := e.timing.Get()
	if !held {
		t.SoftDropHeld = false
		return
	}
	if !e.running || t.SoftDropHeld {
		return
	}
	t.SoftDropHeld = true
	e.softDrop()
}

// GhostY returns the row the active piece would land on if hard dropped.
func (e *Engine) GhostY() (int, bool) {
	if e.current == nil {
		return 0, false
	}
	shape := shapeOf(e.current.Kind, e.current.Rotation)
	y := e.current.Y
	for !e.board.Collides(shape, e.current.X, y+1) {
		y++
	}
	return y, true
}

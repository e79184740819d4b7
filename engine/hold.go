package engine

// Hold swaps the active piece into the hold slot. If the slot already held
// a kind, that kind spawns fresh at the top; otherwise the next queued piece
// spawns. Only one hold is allowed per piece until the next lock.
func (e *Engine) Hold() {
	if !e.acceptsInput() || e.holdUsedTurn {
		return
	}
	swap := e.held
	e.held = e.current.Kind
	if swap.Valid() {
		piece := spawnPiece(swap, e.board.width)
		e.current = &piece
		if e.Collides(piece, piece.X, piece.Y) {
			e.gameOver()
			return
		}
	} else {
		e.spawn()
	}
	e.holdUsedTurn = true
}

// HoldUsed reports whether the current piece came from a hold.
func (e *Engine) HoldUsed() bool {
	return e.holdUsedTurn
}

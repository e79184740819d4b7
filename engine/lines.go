package engine

// lockPiece writes the active piece into the board, resolves full rows and
// spawns the next piece. Cells still above the top row are dropped; a board
// that has overflowed is only detected by the following spawn.
func (e *Engine) lockPiece() {
	if e.current == nil {
		return
	}
	for _, cell := range e.current.Cells() {
		if cell.Y >= 0 {
			e.board.Set(cell.X, cell.Y, e.current.Kind)
		}
	}
	e.current = nil
	e.clearLines()
	e.spawn()
	e.timing.Get().restartDrop()
}

// clearLines removes every full row, collapsing the rows above it, and
// applies scoring and level progression.
func (e *Engine) clearLines() {
	var rows []int
	// rowOffset maps the scan index back to the row's position before any
	// removal in this pass.
	rowOffset := 0
	for r := e.board.height - 1; r >= 0; r-- {
		if !e.board.RowFull(r) {
			continue
		}
		rows = append(rows, r-rowOffset)
		e.board.removeRow(r)
		rowOffset++
		// The row above has slid into r; test it again.
		r++
	}

	cleared := len(rows)
	if cleared == 0 {
		return
	}

	level := e.stats.Level
	points := lineScores[min(cleared, 4)] * level
	if cleared >= 4 {
		points += TetrisBonus * level
	}
	e.stats.Score += points
	e.stats.Lines += cleared

	newLevel := e.stats.Lines/LinesPerLevel + 1
	levelChanged := newLevel != e.stats.Level
	if levelChanged {
		e.stats.Level = newLevel
		e.timing.Get().DropInterval = DropIntervalForLevel(newLevel)
		e.emit(LevelUp{Level: newLevel, Stats: e.stats})
	}
	e.emitStats()
	e.emit(LineCleared{
		Cleared:      cleared,
		Rows:         rows,
		Points:       points,
		Stats:        e.stats,
		LevelChanged: levelChanged,
	})
}

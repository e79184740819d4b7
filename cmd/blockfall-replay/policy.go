package main

import (
	"github.com/plus3/blockfall/engine"
)

// Weights for the placement heuristic.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

type placement struct {
	rotation int
	x        int
	score    float64
}

// bestPlacement tries every rotation and column for the active piece and
// returns the one whose resting board scores highest.
func bestPlacement(e *engine.Engine) (placement, bool) {
	active, ok := e.Active()
	if !ok {
		return placement{}, false
	}
	cells := e.Board()

	var best placement
	found := false
	for rot := 0; rot < 4; rot++ {
		cand := engine.Piece{Kind: active.Kind, Rotation: rot}
		for x := -engine.ShapeOf(active.Kind, rot).Size(); x < e.Width(); x++ {
			if e.Collides(cand, x, active.Y) {
				continue
			}
			y := active.Y
			for !e.Collides(cand, x, y+1) {
				y++
			}
			cand.X, cand.Y = x, y
			score := evaluate(cells, cand)
			if !found || score > best.score {
				best = placement{rotation: rot, x: x, score: score}
				found = true
			}
		}
	}
	return best, found
}

// evaluate scores the board that results from locking p onto cells.
func evaluate(cells [][]engine.Kind, p engine.Piece) float64 {
	height := len(cells)
	width := len(cells[0])
	board := engine.NewBoard(width, height)
	for y, row := range cells {
		for x, kind := range row {
			board.Set(x, y, kind)
		}
	}
	for _, c := range p.Cells() {
		board.Set(c.X, c.Y, p.Kind)
	}

	lines := 0
	for y := 0; y < height; y++ {
		if board.RowFull(y) {
			lines++
		}
	}

	heights := make([]int, width)
	holes := 0
	for x := 0; x < width; x++ {
		seen := false
		for y := 0; y < height; y++ {
			filled := board.At(x, y) != engine.Empty && !board.RowFull(y)
			switch {
			case filled && !seen:
				seen = true
				heights[x] = height - y
			case !filled && seen && !board.RowFull(y):
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(lines) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

// play steers the active piece towards target with the player's own moves
// and hard drops it. Kicks may leave it short of the target column.
func play(e *engine.Engine, target placement) {
	for i := 0; i < target.rotation; i++ {
		e.RotateCW()
	}
	for range e.Width() {
		p, ok := e.Active()
		if !ok || p.X == target.x {
			break
		}
		if p.X > target.x {
			e.MoveLeft()
		} else {
			e.MoveRight()
		}
	}
	e.DropHard()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

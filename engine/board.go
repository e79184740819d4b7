package engine

// Board is the playfield grid. Row 0 is the top row; gravity moves pieces
// towards higher row indices. Dimensions are fixed at construction.
type Board struct {
	width  int
	height int
	cells  [][]Kind
}

// NewBoard returns an empty board of the given size.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([][]Kind, height),
	}
	for r := range b.cells {
		b.cells[r] = make([]Kind, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// At returns the cell at column x, row y. Out of range cells read as Empty.
func (b *Board) At(x, y int) Kind {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Out of range writes are ignored.
func (b *Board) Set(x, y int, kind Kind) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y][x] = kind
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear empties every cell.
func (b *Board) Clear() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Empty reports whether no cell is filled.
func (b *Board) Empty() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell != Empty {
				return false
			}
		}
	}
	return true
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, cell := range b.cells[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// removeRow deletes row y and inserts an empty row at the top, shifting the
// rows above y down by one.
func (b *Board) removeRow(y int) {
	row := b.cells[y]
	copy(b.cells[1:y+1], b.cells[:y])
	clear(row)
	b.cells[0] = row
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Kind {
	out := make([][]Kind, b.height)
	for r, row := range b.cells {
		out[r] = append([]Kind(nil), row...)
	}
	return out
}

// Collides reports whether shape anchored at (x, y) overlaps a wall, the
// floor, or a filled cell. Cells above the top row never collide.
func (b *Board) Collides(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			bx := x + c
			by := y + r
			if bx < 0 || bx >= b.width || by >= b.height {
				return true
			}
			if by >= 0 && b.cells[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}

// String renders the board one line per row, '.' for empty cells.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for _, row := range b.cells {
		for _, cell := range row {
			buf = append(buf, cell.String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

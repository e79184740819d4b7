package engine

// Piece is the falling piece: kind, rotation index, and the top-left anchor
// of its shape matrix in board coordinates.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Shape returns the matrix for the piece's current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Cells returns the board coordinates of the occupied cells.
func (p Piece) Cells() []Point {
	cells := shapeOf(p.Kind, p.Rotation).Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// spawnPiece builds kind at rotation 0, horizontally centred on row 0.
func spawnPiece(kind Kind, boardWidth int) Piece {
	shape := shapeOf(kind, 0)
	// floor((width - shapeWidth) / 2), rounding down for narrow boards too.
	d := boardWidth - shape.Width()
	x := d / 2
	if d < 0 && d%2 != 0 {
		x--
	}
	return Piece{Kind: kind, X: x}
}

// kicks is the ordered list of horizontal offsets tried when a rotation
// collides in place.
var kicks = [...]int{-1, 1, -2, 2}

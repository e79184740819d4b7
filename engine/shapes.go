package engine

// Kind identifies one of the seven tetromino shapes. The zero value is
// reserved for empty board cells.
type Kind uint8

const (
	Empty Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every piece kind in canonical bag order.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

// BagSize is the number of kinds in one bag.
const BagSize = len(Kinds)

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	return "."
}

// Valid reports whether k names a piece rather than an empty cell.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

// Shape is a square occupancy matrix indexed [row][col].
type Shape [][]bool

// Size returns the side length of the shape's bounding box.
func (s Shape) Size() int {
	return len(s)
}

// Width returns the column count of the shape's first row.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Cells returns the occupied offsets in row-major order, X being the column.
func (s Shape) Cells() []Point {
	cells := make([]Point, 0, 4)
	for r, row := range s {
		for c, filled := range row {
			if filled {
				cells = append(cells, Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Bottom returns the lowest occupied row offset, or -1 for an empty shape.
func (s Shape) Bottom() int {
	for r := len(s) - 1; r >= 0; r-- {
		for _, filled := range s[r] {
			if filled {
				return r
			}
		}
	}
	return -1
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = append([]bool(nil), s[i]...)
	}
	return out
}

// Point is a column/row pair in board or shape coordinates.
type Point struct {
	X, Y int
}

func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for r, row := range rows {
		shape[r] = make([]bool, len(row))
		for c, ch := range row {
			shape[r][c] = ch == '#'
		}
	}
	return shape
}

// shapeTable holds the four rotation states (0, 90, 180, 270 degrees) of
// every kind. It is never mutated; ShapeOf hands out copies.
var shapeTable = map[Kind][4]Shape{
	I: {
		parseShape("....", "####", "....", "...."),
		parseShape("..#.", "..#.", "..#.", "..#."),
		parseShape("....", "....", "####", "...."),
		parseShape(".#..", ".#..", ".#..", ".#.."),
	},
	J: {
		parseShape("#..", "###", "..."),
		parseShape(".##", ".#.", ".#."),
		parseShape("...", "###", "..#"),
		parseShape(".#.", ".#.", "##."),
	},
	L: {
		parseShape("..#", "###", "..."),
		parseShape(".#.", ".#.", ".##"),
		parseShape("...", "###", "#.."),
		parseShape("##.", ".#.", ".#."),
	},
	O: {
		parseShape("##", "##"),
		parseShape("##", "##"),
		parseShape("##", "##"),
		parseShape("##", "##"),
	},
	S: {
		parseShape(".##", "##.", "..."),
		parseShape(".#.", ".##", "..#"),
		parseShape("...", ".##", "##."),
		parseShape("#..", "##.", ".#."),
	},
	T: {
		parseShape(".#.", "###", "..."),
		parseShape(".#.", ".##", ".#."),
		parseShape("...", "###", ".#."),
		parseShape(".#.", "##.", ".#."),
	},
	Z: {
		parseShape("##.", ".##", "..."),
		parseShape("..#", ".##", ".#."),
		parseShape("...", "##.", ".##"),
		parseShape(".#.", "##.", "#.."),
	},
}

// shapeOf returns the shared matrix for kind at rotation. Callers inside the
// package must not modify it.
func shapeOf(kind Kind, rotation int) Shape {
	return shapeTable[kind][rotation&3]
}

// ShapeOf returns a copy of the matrix for kind at the given rotation index.
// Rotation is taken modulo 4.
func ShapeOf(kind Kind, rotation int) Shape {
	if !kind.Valid() {
		return nil
	}
	return shapeOf(kind, ((rotation%4)+4)%4).clone()
}

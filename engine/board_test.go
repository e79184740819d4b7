package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollidesOutOfBounds(t *testing.T) {
	dot := Shape{{true}}

	for _, size := range [][2]int{{4, 4}, {10, 20}, {7, 13}} {
		b := NewBoard(size[0], size[1])
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			for y := -2; y < b.Height(); y++ {
				assert.True(t, b.Collides(dot, -1, y), "column -1 row %d", y)
				assert.True(t, b.Collides(dot, b.Width(), y), "column %d row %d", b.Width(), y)
			}
			for x := 0; x < b.Width(); x++ {
				assert.True(t, b.Collides(dot, x, b.Height()), "row %d column %d", b.Height(), x)
				assert.False(t, b.Collides(dot, x, b.Height()-1))
				assert.False(t, b.Collides(dot, x, -1), "rows above the board are open")
			}
		})
	}
}

func TestCollidesEveryShapeAgainstWalls(t *testing.T) {
	b := NewBoard(10, 20)
	for _, kind := range Kinds {
		for rot := 0; rot < 4; rot++ {
			shape := shapeOf(kind, rot)
			minCol, maxCol := shape.Width(), -1
			for _, c := range shape.Cells() {
				minCol = min(minCol, c.X)
				maxCol = max(maxCol, c.X)
			}
			// Exactly flush with each wall fits, one further does not.
			assert.False(t, b.Collides(shape, -minCol, 0), "%s/%d left flush", kind, rot)
			assert.True(t, b.Collides(shape, -minCol-1, 0), "%s/%d past left wall", kind, rot)
			assert.False(t, b.Collides(shape, b.Width()-1-maxCol, 0), "%s/%d right flush", kind, rot)
			assert.True(t, b.Collides(shape, b.Width()-maxCol, 0), "%s/%d past right wall", kind, rot)

			bottom := shape.Bottom()
			assert.False(t, b.Collides(shape, 3, b.Height()-1-bottom))
			assert.True(t, b.Collides(shape, 3, b.Height()-bottom))
		}
	}
}

func TestCollidesWithFilledCell(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(4, 10, T)

	assert.True(t, b.Collides(Shape{{true}}, 4, 10))
	assert.False(t, b.Collides(Shape{{true}}, 5, 10))
	assert.False(t, b.Collides(Shape{{false}}, 4, 10), "empty shape cells never collide")
}

func TestRemoveRowCollapses(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(0, 0, I)
	b.Set(1, 1, J)
	b.Set(2, 2, L)

	b.removeRow(2)

	assert.Equal(t, "....\nI...\n.J..\n....\n", b.String())
}

func TestShapeTableIsFourCellsAndCopiesAreIndependent(t *testing.T) {
	for _, kind := range Kinds {
		for rot := 0; rot < 4; rot++ {
			shape := ShapeOf(kind, rot)
			assert.Len(t, shape.Cells(), 4, "%s rotation %d", kind, rot)
			assert.Equal(t, shape.Size(), shape.Width(), "square matrix")
		}
	}

	copied := ShapeOf(T, 0)
	copied[0][0] = true
	assert.False(t, shapeOf(T, 0)[0][0])
	assert.Equal(t, ShapeOf(T, 1), ShapeOf(T, -3))
	assert.Nil(t, ShapeOf(Empty, 0))
}

func TestSpawnColumnIsCentred(t *testing.T) {
	cases := []struct {
		kind  Kind
		width int
		want  int
	}{
		{I, 10, 3},
		{O, 10, 4},
		{T, 10, 3},
		{T, 9, 3},
		{I, 7, 1},
		{O, 5, 1},
	}
	for _, tc := range cases {
		p := spawnPiece(tc.kind, tc.width)
		assert.Equal(t, tc.want, p.X, "%s on width %d", tc.kind, tc.width)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, 0, p.Rotation)
	}
}

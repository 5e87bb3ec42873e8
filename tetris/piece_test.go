package tetris_test

import (
	"testing"

	"github.com/Valerolactone/Tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPiece(shape tetris.Shape, x, y int) *tetris.Piece {
	return tetris.NewPiece(shape, tetris.Shapes[shape], tetris.Point{X: x, Y: y})
}

func positions(p *tetris.Piece) []tetris.Point {
	var out []tetris.Point
	for _, b := range p.Blocks() {
		out = append(out, b.Point)
	}
	return out
}

func TestNewPiece(t *testing.T) {
	p := newPiece(tetris.ShapeT, 5, -1)

	assert.Equal(t, tetris.ShapeT, p.Shape())
	assert.Equal(t, []tetris.Point{{5, -1}, {4, -1}, {6, -1}, {5, -2}}, positions(p))
	for _, b := range p.Blocks() {
		assert.Equal(t, tetris.Shapes[tetris.ShapeT].Color, b.Color)
	}
}

func TestShapeTable(t *testing.T) {
	require.Len(t, tetris.Shapes, len(tetris.AllShapes))
	for _, shape := range tetris.AllShapes {
		def, ok := tetris.Shapes[shape]
		require.True(t, ok, shape.String())
		assert.Equal(t, tetris.Point{}, def.Offsets[0], "%s pivot", shape)
	}
}

func TestMoveHorizontal(t *testing.T) {
	t.Run("moves every block", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeT, 5, 5)

		assert.True(t, p.MoveHorizontal(1, g))
		assert.Equal(t, []tetris.Point{{6, 5}, {5, 5}, {7, 5}, {6, 4}}, positions(p))

		assert.True(t, p.MoveHorizontal(-1, g))
		assert.Equal(t, []tetris.Point{{5, 5}, {4, 5}, {6, 5}, {5, 4}}, positions(p))
	})

	t.Run("left wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeT, 1, 5)
		before := positions(p)

		assert.False(t, p.MoveHorizontal(-1, g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("right wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeO, 8, 5)
		before := positions(p)

		assert.False(t, p.MoveHorizontal(1, g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("occupied cell blocks one block and so all", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		g.Set(5, 7, tetris.OccupiedCell(red))
		p := newPiece(tetris.ShapeT, 5, 5)
		before := positions(p)

		assert.False(t, p.MoveHorizontal(1, g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("checks the current row only", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		g.Set(6, 7, tetris.OccupiedCell(red))
		p := newPiece(tetris.ShapeT, 5, 5)

		assert.True(t, p.MoveHorizontal(1, g))
	})

	t.Run("above the board", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeI, 5, -1)

		assert.True(t, p.MoveHorizontal(-1, g))
		assert.Equal(t, []tetris.Point{{4, -1}, {4, -2}, {4, -3}, {4, 0}}, positions(p))
	})
}

func TestMoveDown(t *testing.T) {
	t.Run("floor", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeT, 5, 18)

		assert.True(t, p.MoveDown(g))
		assert.Equal(t, []tetris.Point{{5, 19}, {4, 19}, {6, 19}, {5, 18}}, positions(p))

		assert.False(t, p.MoveDown(g))
		assert.Equal(t, []tetris.Point{{5, 19}, {4, 19}, {6, 19}, {5, 18}}, positions(p))
	})

	t.Run("locked cell below one block", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		g.Set(11, 6, tetris.OccupiedCell(red))
		p := newPiece(tetris.ShapeT, 5, 10)
		before := positions(p)

		assert.False(t, p.MoveDown(g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("from above the board", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeO, 5, -1)

		assert.True(t, p.MoveDown(g))
		assert.Equal(t, []tetris.Point{{5, 0}, {5, -1}, {6, 0}, {6, -1}}, positions(p))
	})
}

func TestRotate(t *testing.T) {
	t.Run("quarter turn around the pivot", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeT, 5, 5)

		assert.True(t, p.Rotate(g))
		assert.Equal(t, []tetris.Point{{5, 5}, {5, 6}, {5, 4}, {4, 5}}, positions(p))
	})

	t.Run("four turns return to the start", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		for _, shape := range tetris.AllShapes {
			p := newPiece(shape, 5, 10)
			before := positions(p)
			for range 4 {
				p.Rotate(g)
			}
			assert.Equal(t, before, positions(p), shape.String())
		}
	})

	t.Run("square never rotates", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeO, 5, 5)
		before := positions(p)

		for range 3 {
			assert.False(t, p.Rotate(g))
			assert.Equal(t, before, positions(p))
		}
	})

	t.Run("rejected on occupied cell", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		g.Set(6, 5, tetris.OccupiedCell(red))
		p := newPiece(tetris.ShapeT, 5, 5)
		before := positions(p)

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("rejected past the left wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeI, 0, 5)
		before := positions(p)

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("rejected below the floor", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeT, 5, 19)
		before := positions(p)

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, positions(p))
	})

	t.Run("allowed above the board", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := newPiece(tetris.ShapeI, 5, 0)

		require.True(t, p.Rotate(g))
		assert.Equal(t, []tetris.Point{{5, 0}, {4, 0}, {3, 0}, {6, 0}}, positions(p))

		require.True(t, p.Rotate(g))
		assert.Equal(t, []tetris.Point{{5, 0}, {5, 1}, {5, 2}, {5, -1}}, positions(p))
	})
}

package tetris

import (
	"iter"
	"time"
)

// Peeker is implemented by shape sources that can show upcoming shapes.
type Peeker interface {
	Peek() []Shape
}

// View is a read-only window onto a Board for renderers and debug tools.
// It stays valid across ticks and always reflects the current board.
type View struct {
	board *Board
}

// Columns returns the playfield width.
func (v View) Columns() int {
	return v.board.grid.Columns()
}

// Rows returns the playfield height.
func (v View) Rows() int {
	return v.board.grid.Rows()
}

// Cell returns the locked cell at (row, col).
func (v View) Cell(row, col int) Cell {
	return v.board.grid.Get(row, col)
}

// Blocks yields every locked block followed by the blocks of the active piece.
// Active blocks above the board are included; renderers clip them.
func (v View) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		stopped := false
		v.board.locked.each(func(_ uint32, b Block) bool {
			if !yield(b) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}

		blocks, ok := v.Active()
		if !ok {
			return
		}
		for _, b := range blocks {
			if !yield(b) {
				return
			}
		}
	}
}

// LockedCount returns the number of locked blocks.
func (v View) LockedCount() int {
	return v.board.locked.len()
}

// Active returns the falling piece's blocks, or false when there is none.
func (v View) Active() ([4]Block, bool) {
	if v.board.piece == nil {
		return [4]Block{}, false
	}
	return v.board.piece.Blocks(), true
}

// ActiveShape returns the falling piece's shape, or false when there is none.
func (v View) ActiveShape() (Shape, bool) {
	if v.board.piece == nil {
		return 0, false
	}
	return v.board.piece.Shape(), true
}

// Progress returns lines, score and level.
func (v View) Progress() Progress {
	return v.board.progression.Progress()
}

// State returns the board's lifecycle phase.
func (v View) State() State {
	return v.board.state
}

// Gravity returns the interval currently used by the gravity timer.
func (v View) Gravity() time.Duration {
	return v.board.gravity.Duration()
}

// SoftDropping reports whether soft drop is held.
func (v View) SoftDropping() bool {
	return v.board.softDrop
}

// Preview returns the upcoming shapes when the board's source can peek, nil otherwise.
func (v View) Preview() []Shape {
	if p, ok := v.board.shapes.(Peeker); ok {
		return p.Peek()
	}
	return nil
}

package tetris

// Place locks blocks straight into the playfield, bypassing the active piece.
func (b *Board) Place(blocks ...Block) {
	for _, blk := range blocks {
		if b.grid.Set(blk.Y, blk.X, OccupiedCell(blk.Color)) {
			b.locked.add(blk)
		}
	}
}

// ClearRows runs one clearing step on the current playfield.
func (b *Board) ClearRows() {
	b.clearRows()
	b.state = StateFalling
}

// Grid exposes the board's grid to tests.
func (b *Board) Grid() *Grid {
	return b.grid
}

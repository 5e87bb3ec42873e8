package tetris

// Piece is the falling tetromino. Its first block is the rotation pivot.
// All moves are all-or-nothing: either every block moves or none does.
type Piece struct {
	shape  Shape
	blocks [4]Block
}

// NewPiece places the blocks of def at anchor.
func NewPiece(shape Shape, def ShapeDef, anchor Point) *Piece {
	p := &Piece{shape: shape}
	for i, offset := range def.Offsets {
		p.blocks[i] = Block{Point: anchor.Add(offset), Color: def.Color}
	}
	return p
}

// Shape returns the shape identifier the piece was created from.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Blocks returns a copy of the four blocks, pivot first.
func (p *Piece) Blocks() [4]Block {
	return p.blocks
}

// MoveHorizontal shifts the piece by delta columns. The move is rejected if any
// block would leave [0, columns) or land on a locked cell in its current row.
func (p *Piece) MoveHorizontal(delta int, g *Grid) bool {
	if p.collidesHorizontal(delta, g) {
		return false
	}

	for i := range p.blocks {
		p.blocks[i].X += delta
	}
	return true
}

// MoveDown drops the piece one row. It returns false without moving when any
// block would pass the bottom row or hit a locked cell; the caller locks the piece then.
func (p *Piece) MoveDown(g *Grid) bool {
	if p.collidesVertical(1, g) {
		return false
	}

	for i := range p.blocks {
		p.blocks[i].Y++
	}
	return true
}

// Rotate turns the piece 90 degrees around its pivot. The O piece never rotates.
// The rotation is rejected as a whole if any resulting block is outside the
// columns, at or below the bottom edge, or on a locked cell.
// Blocks may end up above the board.
func (p *Piece) Rotate(g *Grid) bool {
	if p.shape == ShapeO {
		return false
	}

	candidates, ok := p.rotated(g)
	if !ok {
		return false
	}

	for i := range p.blocks {
		p.blocks[i].Point = candidates[i]
	}
	return true
}

func (p *Piece) rotated(g *Grid) ([4]Point, bool) {
	var candidates [4]Point
	pivot := p.blocks[0].Point

	for i, b := range p.blocks {
		dx, dy := b.X-pivot.X, b.Y-pivot.Y
		pos := Point{X: pivot.X + dy, Y: pivot.Y - dx}

		if pos.X < 0 || pos.X >= g.Columns() {
			return candidates, false
		}
		if pos.Y >= g.Rows() {
			return candidates, false
		}
		if g.occupied(pos.Y, pos.X) {
			return candidates, false
		}
		candidates[i] = pos
	}

	return candidates, true
}

func (p *Piece) collidesHorizontal(delta int, g *Grid) bool {
	for _, b := range p.blocks {
		x := b.X + delta
		if x < 0 || x >= g.Columns() {
			return true
		}
		if g.occupied(b.Y, x) {
			return true
		}
	}
	return false
}

func (p *Piece) collidesVertical(delta int, g *Grid) bool {
	for _, b := range p.blocks {
		y := b.Y + delta
		if y >= g.Rows() {
			return true
		}
		if g.occupied(y, b.X) {
			return true
		}
	}
	return false
}

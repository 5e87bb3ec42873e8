package tetris

// Grid stores the locked cells of the playfield, row-major.
// Only rows in [0, Rows) exist; a piece above row 0 has no cells here yet.
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

// NewGrid creates an empty grid. Both dimensions must be positive.
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic("grid dimensions must be positive")
	}

	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// IsInside reports whether (row, col) addresses a stored cell.
func (g *Grid) IsInside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Get returns the cell at (row, col), or an empty cell when the index is outside the grid.
func (g *Grid) Get(row, col int) Cell {
	if !g.IsInside(row, col) {
		return EmptyCell()
	}
	return g.cells[row*g.columns+col]
}

// Set stores cell at (row, col). It returns false and leaves the grid untouched
// when the index is outside the grid.
func (g *Grid) Set(row, col int, cell Cell) bool {
	if !g.IsInside(row, col) {
		return false
	}
	g.cells[row*g.columns+col] = cell
	return true
}

// IsFullRow reports whether every cell of row is occupied.
func (g *Grid) IsFullRow(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}

	for _, cell := range g.cells[row*g.columns : (row+1)*g.columns] {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// occupied reports whether a block at (row, col) would collide with a locked cell.
// Rows above the board never collide.
func (g *Grid) occupied(row, col int) bool {
	return !g.Get(row, col).IsEmpty()
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

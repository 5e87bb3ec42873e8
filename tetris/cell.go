package tetris

// Color is the render tag carried by occupied cells and blocks.
// The simulation never looks at it.
type Color struct {
	R, G, B uint8
}

// Cell is one slot of the Grid: either empty or occupied by a block of some color.
// The zero value is an empty cell.
type Cell struct {
	occupied bool
	color    Color
}

// EmptyCell returns an unoccupied cell.
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedCell returns a cell holding a locked block of the given color.
func OccupiedCell(c Color) Cell {
	return Cell{occupied: true, color: c}
}

// IsEmpty reports whether no block occupies the cell.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Color returns the tag of the occupying block and false for empty cells.
func (c Cell) Color() (Color, bool) {
	return c.color, c.occupied
}

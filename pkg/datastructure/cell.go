package datastructure

import "fmt"

// Cell is one location on the city grid, 0-indexed, row-major.
// Value type, comparable, usable as a map key.
type Cell struct {
	row int
	col int
}

func NewCell(row, col int) Cell {
	return Cell{row: row, col: col}
}

func (c Cell) GetRow() int {
	return c.row
}

func (c Cell) GetCol() int {
	return c.col
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}

// IsAdjacent reports whether other is exactly one cardinal step away from c.
func (c Cell) IsAdjacent(other Cell) bool {
	dr := c.row - other.row
	if dr < 0 {
		dr = -dr
	}
	dc := c.col - other.col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

var INVALID_CELL = Cell{row: -1, col: -1}

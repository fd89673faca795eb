package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid       = errors.New("grid has no rows or no columns")
	ErrNonRectangular  = errors.New("grid rows have different lengths")
	ErrCellOutOfBounds = errors.New("cell is outside the grid")
	ErrCellBlocked     = errors.New("cell is blocked by an obstacle")
)

// cardinal neighbor enumeration order: up, down, left, right.
// every traversal must use this order so repeated searches expand cells
// in the same sequence.
var cardinalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is the city map: a rectangular field of free/blocked cells.
// Built once, read-only afterwards.
type Grid struct {
	blocked [][]bool
	rows    int
	cols    int
}

// NewGrid builds a Grid from a blocked-cell matrix. The input is deep-copied
// so later mutation of the caller's slice cannot change the grid.
func NewGrid(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(blocked), len(blocked[0])
	cells := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		if len(blocked[r]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrNonRectangular, r, len(blocked[r]), cols)
		}
		cells[r] = make([]bool, cols)
		copy(cells[r], blocked[r])
	}

	return &Grid{blocked: cells, rows: rows, cols: cols}, nil
}

func (g *Grid) NumberOfRows() int {
	return g.rows
}

func (g *Grid) NumberOfCols() int {
	return g.cols
}

// NumberOfCells is the upper bound on cells any search can expand.
func (g *Grid) NumberOfCells() int {
	return g.rows * g.cols
}

func (g *Grid) IsValid(c Cell) bool {
	return c.GetRow() >= 0 && c.GetRow() < g.rows &&
		c.GetCol() >= 0 && c.GetCol() < g.cols
}

func (g *Grid) IsBlocked(c Cell) bool {
	return g.blocked[c.GetRow()][c.GetCol()]
}

// IsTraversable reports whether c is in bounds and not an obstacle.
func (g *Grid) IsTraversable(c Cell) bool {
	return g.IsValid(c) && !g.IsBlocked(c)
}

// ValidateEndpoint checks a start/goal cell before any search runs.
func (g *Grid) ValidateEndpoint(c Cell) error {
	if !g.IsValid(c) {
		return fmt.Errorf("%w: %s not in [0,%d)x[0,%d)", ErrCellOutOfBounds,
			c, g.rows, g.cols)
	}
	if g.IsBlocked(c) {
		return fmt.Errorf("%w: %s", ErrCellBlocked, c)
	}
	return nil
}

// ForNeighborsOf calls fn for every traversable cardinal neighbor of c, in
// the fixed up, down, left, right order.
func (g *Grid) ForNeighborsOf(c Cell, fn func(neighbor Cell)) {
	for _, d := range cardinalOffsets {
		n := NewCell(c.GetRow()+d[0], c.GetCol()+d[1])
		if !g.IsTraversable(n) {
			continue
		}
		fn(n)
	}
}

// Neighbors returns the traversable cardinal neighbors of c in the fixed
// enumeration order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	g.ForNeighborsOf(c, func(n Cell) {
		out = append(out, n)
	})
	return out
}

// ForFreeCells calls fn for every traversable cell, row-major.
func (g *Grid) ForFreeCells(fn func(c Cell)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[r][c] {
				continue
			}
			fn(NewCell(r, c))
		}
	}
}

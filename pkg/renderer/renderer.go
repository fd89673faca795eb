package renderer

import (
	"strings"

	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// Render draws the city grid with the route overlaid:
// S start, G goal, # obstacle, * route, space free.
// Symbols in one row are separated by single spaces, rows by newlines.
func Render(grid *datastructure.Grid, route datastructure.Route, start, goal datastructure.Cell) string {
	rows := make([][]byte, grid.NumberOfRows())
	for r := 0; r < grid.NumberOfRows(); r++ {
		rows[r] = make([]byte, grid.NumberOfCols())
		for c := 0; c < grid.NumberOfCols(); c++ {
			if grid.IsBlocked(datastructure.NewCell(r, c)) {
				rows[r][c] = pkg.RENDERED_BLOCKED
			} else {
				rows[r][c] = pkg.RENDERED_FREE
			}
		}
	}

	for _, cell := range route.GetCells() {
		rows[cell.GetRow()][cell.GetCol()] = pkg.ROUTE_SYMBOL
	}
	if grid.IsValid(start) {
		rows[start.GetRow()][start.GetCol()] = pkg.START_SYMBOL
	}
	if grid.IsValid(goal) {
		rows[goal.GetRow()][goal.GetCol()] = pkg.GOAL_SYMBOL
	}

	var sb strings.Builder
	for r := 0; r < len(rows); r++ {
		for c := 0; c < len(rows[r]); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(rows[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

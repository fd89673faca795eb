package datastructure

// Route is the outcome of one search invocation: the ordered cells from
// start to goal inclusive, the total fuel cost, and how many cells the
// algorithm expanded. Immutable once returned.
type Route struct {
	cells    []Cell
	cost     int
	expanded int
}

func NewRoute(cells []Cell, cost, expanded int) Route {
	return Route{cells: cells, cost: cost, expanded: expanded}
}

func (r Route) GetCells() []Cell {
	return r.cells
}

// GetCost total fuel consumed, one unit per step.
func (r Route) GetCost() int {
	return r.cost
}

// GetNumExpandedCells how many cells the search expanded before terminating.
func (r Route) GetNumExpandedCells() int {
	return r.expanded
}

// GetNumSteps number of moves in the route (cells - 1).
func (r Route) GetNumSteps() int {
	if len(r.cells) == 0 {
		return 0
	}
	return len(r.cells) - 1
}

package routing

import (
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// DFS iterative depth-first search with an explicit stack, no recursion, so
// memory stays bounded by the grid size on any input. The route it returns
// is valid (connected, in-bounds, obstacle-free) but carries no optimality
// guarantee: its shape depends entirely on the neighbor enumeration order
// and the grid topology.
type DFS struct {
	grid         *da.Grid
	costFunction costfunction.CostFunction

	forwardInfo map[da.Cell]*cellInfo

	stack *da.Stack[da.Cell]

	observer ExpansionObserver

	numSettledCells int
}

func NewDFS(grid *da.Grid, costFunction costfunction.CostFunction) *DFS {
	return &DFS{
		grid:            grid,
		costFunction:    costFunction,
		forwardInfo:     make(map[da.Cell]*cellInfo),
		stack:           da.NewStack[da.Cell](),
		numSettledCells: 0,
	}
}

func (us *DFS) SetExpansionObserver(obs ExpansionObserver) {
	us.observer = obs
}

func (us *DFS) Route(start, goal da.Cell) (da.Route, bool, error) {
	// visited is marked at push time (presence in forwardInfo) to avoid
	// cycles and duplicate pushes.
	us.forwardInfo[start] = newCellInfo(0, da.INVALID_CELL, false, nil)
	us.stack.Push(start)

	for {
		u, ok := us.stack.Pop()
		if !ok {
			break
		}

		if u == goal {
			cells, err := reconstructRoute(us.grid.NumberOfCells(), us.forwardInfo, start, goal)
			if err != nil {
				return da.Route{}, false, err
			}
			cost := int(us.forwardInfo[u].getTravelCost())
			return da.NewRoute(cells, cost, us.numSettledCells), true, nil
		}

		us.numSettledCells++
		if us.observer != nil {
			us.observer(u, us.stack.Size())
		}

		uCost := us.forwardInfo[u].getTravelCost()

		// push in reverse enumeration order so cells pop in the fixed
		// up, down, left, right order.
		neighbors := us.grid.Neighbors(u)
		for i := len(neighbors) - 1; i >= 0; i-- {
			v := neighbors[i]
			if _, visited := us.forwardInfo[v]; visited {
				continue
			}
			us.forwardInfo[v] = newCellInfo(uCost+us.costFunction.StepCost(u, v), u, true, nil)
			us.stack.Push(v)
		}
	}

	// frontier exhausted, the goal is unreachable. normal outcome, and the
	// expansion count still feeds the comparison statistics.
	return da.NewRoute(nil, 0, us.numSettledCells), false, nil
}

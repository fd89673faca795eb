package routing

import (
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// BFS breadth-first search with a FIFO frontier. Every step costs one unit
// of fuel, so the first time the goal is dequeued the route has the minimum
// number of steps: the same length A* finds, in a different expansion order.
type BFS struct {
	grid         *da.Grid
	costFunction costfunction.CostFunction

	forwardInfo map[da.Cell]*cellInfo

	queue *da.Queue[da.Cell]

	observer ExpansionObserver

	numSettledCells int
}

func NewBFS(grid *da.Grid, costFunction costfunction.CostFunction) *BFS {
	return &BFS{
		grid:            grid,
		costFunction:    costFunction,
		forwardInfo:     make(map[da.Cell]*cellInfo),
		queue:           da.NewQueue[da.Cell](),
		numSettledCells: 0,
	}
}

func (us *BFS) SetExpansionObserver(obs ExpansionObserver) {
	us.observer = obs
}

func (us *BFS) Route(start, goal da.Cell) (da.Route, bool, error) {
	// cells are marked visited at enqueue time (presence in forwardInfo)
	// so a cell can never be enqueued twice.
	us.forwardInfo[start] = newCellInfo(0, da.INVALID_CELL, false, nil)
	us.queue.PushBack(start)

	for {
		u, ok := us.queue.PopFront()
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
			us.observer(u, us.queue.Size())
		}

		uCost := us.forwardInfo[u].getTravelCost()

		us.grid.ForNeighborsOf(u, func(v da.Cell) {
			if _, visited := us.forwardInfo[v]; visited {
				return
			}
			us.forwardInfo[v] = newCellInfo(uCost+us.costFunction.StepCost(u, v), u, true, nil)
			us.queue.PushBack(v)
		})
	}

	// frontier exhausted, the goal is unreachable. normal outcome, and the
	// expansion count still feeds the comparison statistics.
	return da.NewRoute(nil, 0, us.numSettledCells), false, nil
}

package routing

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// AStar best-first search over the open set keyed by f = g + h, where g is
// the fuel consumed from the start cell and h the Manhattan estimate to the
// goal. With the admissible, consistent heuristic of UniformCostFunction the
// returned route is fuel-optimal.
type AStar struct {
	grid         *da.Grid
	costFunction costfunction.CostFunction

	forwardInfo map[da.Cell]*cellInfo
	closed      map[da.Cell]struct{}

	pq *da.MinHeap[da.Cell]

	observer ExpansionObserver

	numSettledCells int
}

func NewAStar(grid *da.Grid, costFunction costfunction.CostFunction) *AStar {
	return &AStar{
		grid:            grid,
		costFunction:    costFunction,
		forwardInfo:     make(map[da.Cell]*cellInfo),
		closed:          make(map[da.Cell]struct{}),
		pq:              da.NewFourAryHeap[da.Cell](),
		numSettledCells: 0,
	}
}

func (us *AStar) SetExpansionObserver(obs ExpansionObserver) {
	us.observer = obs
}

func (us *AStar) Route(start, goal da.Cell) (da.Route, bool, error) {
	us.pq.Preallocate(us.grid.NumberOfCells())

	sNode := da.NewPriorityQueueNode(us.costFunction.Heuristic(start, goal), start)
	us.forwardInfo[start] = newCellInfo(0, da.INVALID_CELL, false, sNode)
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		node, err := us.pq.ExtractMin()
		if err != nil {
			return da.Route{}, false, err
		}
		u := node.GetItem()

		if u == goal {
			cells, err := reconstructRoute(us.grid.NumberOfCells(), us.forwardInfo, start, goal)
			if err != nil {
				return da.Route{}, false, err
			}
			cost := int(us.forwardInfo[u].getTravelCost())
			return da.NewRoute(cells, cost, us.numSettledCells), true, nil
		}

		// settle u. every cell enters the closed set at most once since
		// DecreaseKey keeps a single open entry per cell.
		us.closed[u] = struct{}{}
		us.numSettledCells++
		if us.observer != nil {
			us.observer(u, us.pq.Size())
		}

		uCost := us.forwardInfo[u].getTravelCost()

		us.grid.ForNeighborsOf(u, func(v da.Cell) {
			if _, settled := us.closed[v]; settled {
				return
			}

			newCost := uCost + us.costFunction.StepCost(u, v)
			if newCost >= pkg.INF_WEIGHT {
				return
			}

			vInfo, vAlreadyLabelled := us.forwardInfo[v]
			if vAlreadyLabelled && newCost >= vInfo.getTravelCost() {
				// newCost is not better, do nothing
				return
			}

			priority := newCost + us.costFunction.Heuristic(v, goal)

			if vAlreadyLabelled {
				vInfo.updateTravelCost(newCost)
				vInfo.updateParent(u)
				// key already in the priority queue, decrease its key
				us.pq.DecreaseKey(vInfo.getHeapNode(), priority)
			} else {
				vNode := da.NewPriorityQueueNode(priority, v)
				us.forwardInfo[v] = newCellInfo(newCost, u, true, vNode)
				// key not in the priority queue, insert it
				us.pq.Insert(vNode)
			}
		})
	}

	// open set exhausted, the goal is unreachable. normal outcome, and the
	// expansion count still feeds the comparison statistics.
	return da.NewRoute(nil, 0, us.numSettledCells), false, nil
}

package routing

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// ExpansionObserver is called once per expanded cell, in expansion order,
// with the frontier size at that moment. Feeds the websocket expansion
// stream and the simulator statistics.
type ExpansionObserver func(cell da.Cell, frontierSize int)

// SearchAlgorithm is the contract shared by the three searches. The three
// differ only in frontier ordering policy: min-f heap (A*), FIFO (BFS),
// LIFO (DFS). A Route invocation owns its whole search state; construct a
// fresh instance per query and never share one across goroutines.
//
// The bool result distinguishes Unreachable (false, nil error) from an
// internal failure. Unreachable is a normal outcome, not an error.
type SearchAlgorithm interface {
	Route(start, goal da.Cell) (da.Route, bool, error)
	SetExpansionObserver(obs ExpansionObserver)
}

// New builds a fresh search for one invocation of the given algorithm.
func New(algorithm pkg.Algorithm, grid *da.Grid, costFunction costfunction.CostFunction) SearchAlgorithm {
	switch algorithm {
	case pkg.ASTAR:
		return NewAStar(grid, costFunction)
	case pkg.BFS:
		return NewBFS(grid, costFunction)
	default:
		return NewDFS(grid, costFunction)
	}
}

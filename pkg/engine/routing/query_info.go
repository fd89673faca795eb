package routing

import (
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
)

// cellInfo carries the per-cell search bookkeeping: accumulated fuel from
// the start cell, the predecessor it was reached from, and (for A*) the
// open-set heap node so DecreaseKey can find it.
type cellInfo struct {
	travelCost float64
	parent     da.Cell
	hasParent  bool
	heapNode   *da.PriorityQueueNode[da.Cell]
}

func newCellInfo(travelCost float64, parent da.Cell, hasParent bool,
	hnode *da.PriorityQueueNode[da.Cell]) *cellInfo {
	return &cellInfo{
		travelCost: travelCost,
		parent:     parent,
		hasParent:  hasParent,
		heapNode:   hnode,
	}
}

func (ci *cellInfo) getTravelCost() float64 {
	return ci.travelCost
}

func (ci *cellInfo) updateTravelCost(cost float64) {
	ci.travelCost = cost
}

func (ci *cellInfo) updateParent(parent da.Cell) {
	ci.parent = parent
	ci.hasParent = true
}

func (ci *cellInfo) getParent() da.Cell {
	return ci.parent
}

func (ci *cellInfo) isStartOfChain() bool {
	return !ci.hasParent
}

func (ci *cellInfo) getHeapNode() *da.PriorityQueueNode[da.Cell] {
	return ci.heapNode
}

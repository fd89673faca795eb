package usecases

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/engine"
	"github.com/lintang-b-s/gridroute/pkg/engine/routing"
)

type RoutingEngine interface {
	GetGrid() *datastructure.Grid
	RunSearch(algorithm pkg.Algorithm, start, goal datastructure.Cell) (datastructure.Route, bool, error)
	RunSearchWithObserver(algorithm pkg.Algorithm, start, goal datastructure.Cell,
		obs routing.ExpansionObserver) (datastructure.Route, bool, error)
	CompareAll(start, goal datastructure.Cell) ([]engine.ComparisonEntry, error)
}

type SpatialIndex interface {
	SnapToFreeCell(row, col, radius int) (datastructure.Cell, bool)
}

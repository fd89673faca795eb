package usecases

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/engine/routing"
	"github.com/lintang-b-s/gridroute/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	snapRadius   int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	snapRadius int) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		snapRadius:   snapRadius,
	}
}

// Route plans one delivery route. snap=true snaps blocked or off-map
// endpoints to the nearest free cell before searching; snap=false surfaces
// them as bad-parameter errors. found=false means the goal is unreachable
// under the current obstacles, a normal outcome.
func (rs *RoutingService) Route(algorithm pkg.Algorithm, startRow, startCol, goalRow, goalCol int,
	snap bool) (datastructure.Route, string, bool, error) {

	start, goal, err := rs.resolveEndpoints(startRow, startCol, goalRow, goalCol, snap)
	if err != nil {
		return datastructure.Route{}, "", false, err
	}

	route, found, err := rs.engine.RunSearch(algorithm, start, goal)
	if err != nil {
		return datastructure.Route{}, "", false, err
	}
	if !found {
		return route, "", false, nil
	}

	return route, encodeCellPolyline(route.GetCells()), true, nil
}

// RouteWithExpansions is Route with a callback invoked for every expanded
// cell, in expansion order. Used by the websocket stream.
func (rs *RoutingService) RouteWithExpansions(algorithm pkg.Algorithm, startRow, startCol,
	goalRow, goalCol int, snap bool, onExpand routing.ExpansionObserver) (datastructure.Route, string, bool, error) {

	start, goal, err := rs.resolveEndpoints(startRow, startCol, goalRow, goalCol, snap)
	if err != nil {
		return datastructure.Route{}, "", false, err
	}

	route, found, err := rs.engine.RunSearchWithObserver(algorithm, start, goal, onExpand)
	if err != nil {
		return datastructure.Route{}, "", false, err
	}
	if !found {
		return route, "", false, nil
	}

	return route, encodeCellPolyline(route.GetCells()), true, nil
}

// AlgorithmComparison is one algorithm's outcome in a side-by-side run.
type AlgorithmComparison struct {
	Algorithm pkg.Algorithm
	Route     datastructure.Route
	Polyline  string
	Found     bool
}

// CompareRoutes runs A*, BFS and DFS on the same query and returns the
// results in algorithm order, so callers can compare fuel cost and the
// number of expanded cells across strategies uniformly, including the case
// where none of them succeeds.
func (rs *RoutingService) CompareRoutes(startRow, startCol, goalRow, goalCol int,
	snap bool) ([]AlgorithmComparison, error) {

	start, goal, err := rs.resolveEndpoints(startRow, startCol, goalRow, goalCol, snap)
	if err != nil {
		return nil, err
	}

	entries, err := rs.engine.CompareAll(start, goal)
	if err != nil {
		return nil, err
	}

	comparisons := make([]AlgorithmComparison, 0, len(entries))
	for _, entry := range entries {
		if entry.Err != nil {
			return nil, entry.Err
		}
		comparison := AlgorithmComparison{
			Algorithm: entry.Algorithm,
			Route:     entry.Route,
			Found:     entry.Found,
		}
		if entry.Found {
			comparison.Polyline = encodeCellPolyline(entry.Route.GetCells())
		}
		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}

func (rs *RoutingService) resolveEndpoints(startRow, startCol, goalRow, goalCol int,
	snap bool) (datastructure.Cell, datastructure.Cell, error) {

	start := datastructure.NewCell(startRow, startCol)
	goal := datastructure.NewCell(goalRow, goalCol)

	if !snap {
		return start, goal, nil
	}

	grid := rs.engine.GetGrid()

	if !grid.IsTraversable(start) {
		snapped, ok := rs.spatialIndex.SnapToFreeCell(startRow, startCol, rs.snapRadius)
		if !ok {
			return start, goal, util.WrapErrorf(datastructure.ErrCellBlocked, util.ErrNotFound,
				"no free cell within %d cells of start %s", rs.snapRadius, start)
		}
		rs.log.Debug("snapped start cell", zap.String("requested", start.String()),
			zap.String("snapped", snapped.String()))
		start = snapped
	}
	if !grid.IsTraversable(goal) {
		snapped, ok := rs.spatialIndex.SnapToFreeCell(goalRow, goalCol, rs.snapRadius)
		if !ok {
			return start, goal, util.WrapErrorf(datastructure.ErrCellBlocked, util.ErrNotFound,
				"no free cell within %d cells of goal %s", rs.snapRadius, goal)
		}
		rs.log.Debug("snapped goal cell", zap.String("requested", goal.String()),
			zap.String("snapped", snapped.String()))
		goal = snapped
	}

	return start, goal, nil
}

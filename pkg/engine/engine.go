package engine

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/concurrent"
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/engine/routing"
	"github.com/lintang-b-s/gridroute/pkg/util"
	"go.uber.org/zap"
)

// RouteCacheKey identifies one routing query in the LRU result cache. The
// grid never changes after startup, so a cached result stays valid for the
// process lifetime.
type RouteCacheKey struct {
	Algorithm pkg.Algorithm
	Start     datastructure.Cell
	Goal      datastructure.Cell
}

type cachedRoute struct {
	route datastructure.Route
	found bool
}

// Engine owns the read-only city grid and the shared cost model, and runs
// one search per request. Each search invocation builds its own state, so
// concurrent RunSearch calls are safe.
type Engine struct {
	grid         *datastructure.Grid
	costFunction costfunction.CostFunction
	log          *zap.Logger

	routeCache *lru.Cache[RouteCacheKey, cachedRoute]
}

// NewEngine loads the city map from disk and builds the engine with the
// uniform fuel cost model.
func NewEngine(gridFilePath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting grid routing engine...")

	logger.Info("Reading city map", zap.String("gridFilePath", gridFilePath))
	grid, err := datastructure.ReadGridFile(gridFilePath)
	if err != nil {
		return nil, err
	}

	return NewEngineDirect(grid, costfunction.NewUniformCostFunction(), logger)
}

func NewEngineDirect(grid *datastructure.Grid, costFunction costfunction.CostFunction,
	logger *zap.Logger) (*Engine, error) {

	routeCache, err := lru.New[RouteCacheKey, cachedRoute](1 << 12)
	if err != nil {
		return nil, err
	}

	return &Engine{
		grid:         grid,
		costFunction: costFunction,
		log:          logger,
		routeCache:   routeCache,
	}, nil
}

func (e *Engine) GetGrid() *datastructure.Grid {
	return e.grid
}

// RunSearch runs the selected algorithm from start to goal. Endpoint
// validation fails fast before any search state is built. found=false
// reports an unreachable goal, a normal outcome the caller must distinguish
// from an error.
func (e *Engine) RunSearch(algorithm pkg.Algorithm, start, goal datastructure.Cell) (datastructure.Route, bool, error) {
	return e.runSearch(algorithm, start, goal, nil, true)
}

// RunSearchWithObserver is RunSearch with a per-expansion callback. The
// cache is bypassed so the observer sees every expansion.
func (e *Engine) RunSearchWithObserver(algorithm pkg.Algorithm, start, goal datastructure.Cell,
	obs routing.ExpansionObserver) (datastructure.Route, bool, error) {
	return e.runSearch(algorithm, start, goal, obs, false)
}

func (e *Engine) runSearch(algorithm pkg.Algorithm, start, goal datastructure.Cell,
	obs routing.ExpansionObserver, useCache bool) (datastructure.Route, bool, error) {

	if err := e.grid.ValidateEndpoint(start); err != nil {
		return datastructure.Route{}, false, util.WrapErrorf(err, util.ErrBadParamInput,
			"invalid start cell %s", start)
	}
	if err := e.grid.ValidateEndpoint(goal); err != nil {
		return datastructure.Route{}, false, util.WrapErrorf(err, util.ErrBadParamInput,
			"invalid goal cell %s", goal)
	}

	cacheKey := RouteCacheKey{Algorithm: algorithm, Start: start, Goal: goal}
	if useCache {
		if cached, ok := e.routeCache.Get(cacheKey); ok {
			return cached.route, cached.found, nil
		}
	}

	search := routing.New(algorithm, e.grid, e.costFunction)
	if obs != nil {
		search.SetExpansionObserver(obs)
	}

	route, found, err := search.Route(start, goal)
	if err != nil {
		return datastructure.Route{}, false, util.WrapErrorf(err, util.ErrInternalServerError,
			"%s search failed", algorithm)
	}

	if e.log != nil {
		e.log.Debug("search finished",
			zap.String("algorithm", algorithm.String()),
			zap.String("start", start.String()),
			zap.String("goal", goal.String()),
			zap.Bool("found", found),
			zap.Int("cost", route.GetCost()),
			zap.Int("expanded", route.GetNumExpandedCells()))
	}

	e.routeCache.Add(cacheKey, cachedRoute{route: route, found: found})

	return route, found, nil
}

// ComparisonEntry is one algorithm's outcome in a side-by-side run.
type ComparisonEntry struct {
	Algorithm pkg.Algorithm
	Route     datastructure.Route
	Found     bool
	Err       error
}

// CompareAll runs every algorithm on the same query concurrently through
// the worker pool. Each invocation owns its entire search state, so the
// three searches share nothing mutable.
func (e *Engine) CompareAll(start, goal datastructure.Cell) ([]ComparisonEntry, error) {
	if err := e.grid.ValidateEndpoint(start); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid start cell %s", start)
	}
	if err := e.grid.ValidateEndpoint(goal); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid goal cell %s", goal)
	}

	algorithms := []pkg.Algorithm{pkg.ASTAR, pkg.BFS, pkg.DFS}

	pool := concurrent.NewWorkerPool[pkg.Algorithm, ComparisonEntry](len(algorithms), len(algorithms))
	pool.Start(func(algorithm pkg.Algorithm) ComparisonEntry {
		route, found, err := e.runSearch(algorithm, start, goal, nil, true)
		return ComparisonEntry{Algorithm: algorithm, Route: route, Found: found, Err: err}
	})

	for _, algorithm := range algorithms {
		pool.AddJob(algorithm)
	}
	pool.Close()
	pool.Wait()

	entries := make([]ComparisonEntry, 0, len(algorithms))
	for entry := range pool.CollectResults() {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Algorithm < entries[j].Algorithm
	})

	return entries, nil
}

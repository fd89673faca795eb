package controllers

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/engine/routing"
	"github.com/lintang-b-s/gridroute/pkg/http/usecases"
)

type RoutingService interface {
	Route(algorithm pkg.Algorithm, startRow, startCol, goalRow, goalCol int,
		snap bool) (datastructure.Route, string, bool, error)
	RouteWithExpansions(algorithm pkg.Algorithm, startRow, startCol, goalRow, goalCol int,
		snap bool, onExpand routing.ExpansionObserver) (datastructure.Route, string, bool, error)
	CompareRoutes(startRow, startCol, goalRow, goalCol int,
		snap bool) ([]usecases.AlgorithmComparison, error)
}

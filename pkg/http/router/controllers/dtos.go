package controllers

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/http/usecases"
)

type routeRequest struct {
	StartRow  int    `json:"start_row" validate:"min=0"`
	StartCol  int    `json:"start_col" validate:"min=0"`
	GoalRow   int    `json:"goal_row" validate:"min=0"`
	GoalCol   int    `json:"goal_col" validate:"min=0"`
	Algorithm string `json:"algorithm" validate:"required,oneof=astar a* bfs dfs"`
}

type compareRoutesRequest struct {
	StartRow int `json:"start_row" validate:"min=0"`
	StartCol int `json:"start_col" validate:"min=0"`
	GoalRow  int `json:"goal_row" validate:"min=0"`
	GoalCol  int `json:"goal_col" validate:"min=0"`
}

type cellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func newCellDTO(c datastructure.Cell) cellDTO {
	return cellDTO{Row: c.GetRow(), Col: c.GetCol()}
}

type routeResponse struct {
	Algorithm     string    `json:"algorithm"`
	Found         bool      `json:"found"`
	Path          []cellDTO `json:"path"`
	Polyline      string    `json:"polyline"`
	FuelCost      int       `json:"fuel_cost"`
	Steps         int       `json:"steps"`
	ExpandedCells int       `json:"expanded_cells"`
}

func NewRouteResponse(algorithm pkg.Algorithm, route datastructure.Route, pathPolyline string,
	found bool) routeResponse {
	path := make([]cellDTO, 0, len(route.GetCells()))
	for _, c := range route.GetCells() {
		path = append(path, newCellDTO(c))
	}
	return routeResponse{
		Algorithm:     algorithm.String(),
		Found:         found,
		Path:          path,
		Polyline:      pathPolyline,
		FuelCost:      route.GetCost(),
		Steps:         route.GetNumSteps(),
		ExpandedCells: route.GetNumExpandedCells(),
	}
}

type compareRoutesResponse struct {
	Routes []routeResponse `json:"routes"`
}

func NewCompareRoutesResponse(comparisons []usecases.AlgorithmComparison) compareRoutesResponse {
	routes := make([]routeResponse, 0, len(comparisons))
	for _, cmp := range comparisons {
		routes = append(routes, NewRouteResponse(cmp.Algorithm, cmp.Route, cmp.Polyline, cmp.Found))
	}
	return compareRoutesResponse{Routes: routes}
}

// expansionFrame is one websocket message of the expansion stream: either a
// single expanded cell ("expansion") or the terminal result ("result").
type expansionFrame struct {
	Type         string  `json:"type"`
	Cell         cellDTO `json:"cell,omitempty"`
	FrontierSize int     `json:"frontier_size,omitempty"`
	Sequence     int     `json:"sequence,omitempty"`
}

func newExpansionFrame(cell datastructure.Cell, frontierSize, sequence int) expansionFrame {
	return expansionFrame{
		Type:         "expansion",
		Cell:         newCellDTO(cell),
		FrontierSize: frontierSize,
		Sequence:     sequence,
	}
}

type resultFrame struct {
	Type  string        `json:"type"`
	Route routeResponse `json:"route"`
}

func newResultFrame(route routeResponse) resultFrame {
	return resultFrame{Type: "result", Route: route}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

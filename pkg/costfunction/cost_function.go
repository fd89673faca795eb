package costfunction

import (
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/util"
)

// CostFunction prices one move between adjacent cells and estimates the
// remaining cost from a cell to the goal. Implementations must be pure:
// the searches share one instance across invocations.
type CostFunction interface {
	StepCost(from, to datastructure.Cell) float64
	Heuristic(from, to datastructure.Cell) float64
}

// UniformCostFunction charges pkg.UNIFORM_STEP_COST fuel per cardinal move
// and uses Manhattan distance as the heuristic. Manhattan distance is
// admissible and consistent for 4-directional uniform-cost movement, which
// A* needs for its optimality guarantee.
type UniformCostFunction struct{}

func NewUniformCostFunction() *UniformCostFunction {
	return &UniformCostFunction{}
}

func (cf *UniformCostFunction) StepCost(from, to datastructure.Cell) float64 {
	return pkg.UNIFORM_STEP_COST
}

func (cf *UniformCostFunction) Heuristic(from, to datastructure.Cell) float64 {
	return float64(util.Abs(from.GetRow()-to.GetRow()) +
		util.Abs(from.GetCol()-to.GetCol()))
}

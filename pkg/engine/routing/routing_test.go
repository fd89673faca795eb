package routing

import (
	"testing"

	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allAlgorithms = []pkg.Algorithm{pkg.ASTAR, pkg.BFS, pkg.DFS}

func mustGrid(t *testing.T, lines []string) *da.Grid {
	t.Helper()
	grid, err := da.NewGridFromSymbols(lines)
	require.NoError(t, err)
	return grid
}

// cityMap is a delivery scenario with two obstacle belts forcing a detour.
var cityMap = []string{
	"....#...",
	".##.#.#.",
	"........",
	"##.###..",
	"........",
}

func requireValidRoute(t *testing.T, grid *da.Grid, route da.Route, start, goal da.Cell) {
	t.Helper()
	cells := route.GetCells()
	require.NotEmpty(t, cells)
	assert.Equal(t, start, cells[0])
	assert.Equal(t, goal, cells[len(cells)-1])
	for i, c := range cells {
		assert.True(t, grid.IsTraversable(c), "route visits non-traversable cell %s", c)
		if i > 0 {
			assert.True(t, cells[i-1].IsAdjacent(c),
				"route jumps from %s to %s", cells[i-1], c)
		}
	}
	assert.Equal(t, route.GetNumSteps(), len(cells)-1)
}

func TestOpenGridOptimalCost(t *testing.T) {
	grid := mustGrid(t, []string{
		".....",
		".....",
		".....",
		".....",
		".....",
	})
	start, goal := da.NewCell(0, 0), da.NewCell(4, 4)

	for _, algorithm := range []pkg.Algorithm{pkg.ASTAR, pkg.BFS} {
		t.Run(algorithm.String(), func(t *testing.T) {
			route, found, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, goal)
			require.NoError(t, err)
			require.True(t, found)

			requireValidRoute(t, grid, route, start, goal)
			assert.Equal(t, 8, route.GetCost())
			assert.Len(t, route.GetCells(), 9)
		})
	}
}

func TestCityMapDetour(t *testing.T) {
	grid := mustGrid(t, cityMap)
	start, goal := da.NewCell(0, 0), da.NewCell(4, 7)

	var astarCost, bfsSteps int
	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			route, found, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, goal)
			require.NoError(t, err)
			require.True(t, found)
			requireValidRoute(t, grid, route, start, goal)

			switch algorithm {
			case pkg.ASTAR:
				astarCost = route.GetCost()
				// the obstacle belts still admit a monotone route, so the
				// optimum equals the Manhattan distance
				assert.Equal(t, 11, route.GetCost())
			case pkg.BFS:
				bfsSteps = route.GetNumSteps()
			case pkg.DFS:
				// valid but not necessarily short
				assert.GreaterOrEqual(t, route.GetNumSteps(), 11)
			}
		})
	}
	assert.Equal(t, astarCost, bfsSteps,
		"with uniform step cost the BFS step count must equal the A* fuel cost")
}

func TestStartEqualsGoal(t *testing.T) {
	grid := mustGrid(t, cityMap)
	start := da.NewCell(2, 2)

	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			route, found, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, start)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, []da.Cell{start}, route.GetCells())
			assert.Equal(t, 0, route.GetCost())
			assert.Equal(t, 0, route.GetNumSteps())
		})
	}
}

func TestUnreachableGoal(t *testing.T) {
	// a full obstacle wall separates the left and right halves
	grid := mustGrid(t, []string{
		"..#..",
		"..#..",
		"..#..",
	})
	start, goal := da.NewCell(0, 0), da.NewCell(0, 4)

	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			route, found, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, goal)
			require.NoError(t, err, "unreachable is a normal outcome, not an error")
			assert.False(t, found)
			assert.Empty(t, route.GetCells())
			assert.Equal(t, 0, route.GetCost())
			// the whole 6-cell component left of the wall gets expanded
			// before the frontier runs dry
			assert.Equal(t, 6, route.GetNumExpandedCells(),
				"the expansion count must survive an unreachable outcome")
		})
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	grid := mustGrid(t, cityMap)
	start, goal := da.NewCell(0, 0), da.NewCell(4, 7)

	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			first, foundFirst, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, goal)
			require.NoError(t, err)
			second, foundSecond, err := New(algorithm, grid, costfunction.NewUniformCostFunction()).Route(start, goal)
			require.NoError(t, err)

			assert.Equal(t, foundFirst, foundSecond)
			assert.Equal(t, first.GetCells(), second.GetCells())
			assert.Equal(t, first.GetNumExpandedCells(), second.GetNumExpandedCells())
		})
	}
}

func TestExpansionObserver(t *testing.T) {
	grid := mustGrid(t, cityMap)
	start, goal := da.NewCell(0, 0), da.NewCell(4, 7)

	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			search := New(algorithm, grid, costfunction.NewUniformCostFunction())

			expanded := make([]da.Cell, 0)
			search.SetExpansionObserver(func(cell da.Cell, frontierSize int) {
				expanded = append(expanded, cell)
				assert.GreaterOrEqual(t, frontierSize, 0)
			})

			route, found, err := search.Route(start, goal)
			require.NoError(t, err)
			require.True(t, found)

			assert.Len(t, expanded, route.GetNumExpandedCells())
			assert.Equal(t, start, expanded[0], "the start cell is expanded first")

			seen := make(map[da.Cell]struct{}, len(expanded))
			for _, c := range expanded {
				_, dup := seen[c]
				assert.False(t, dup, "cell %s expanded twice", c)
				seen[c] = struct{}{}
			}
		})
	}
}

func TestBFSExpansionOrderFollowsEnumeration(t *testing.T) {
	grid := mustGrid(t, []string{
		"...",
		"...",
		"...",
	})

	search := NewBFS(grid, costfunction.NewUniformCostFunction())
	expanded := make([]da.Cell, 0)
	search.SetExpansionObserver(func(cell da.Cell, _ int) {
		expanded = append(expanded, cell)
	})

	_, found, err := search.Route(da.NewCell(1, 1), da.NewCell(2, 2))
	require.NoError(t, err)
	require.True(t, found)

	// start first, then its neighbors in up, down, left, right order
	require.GreaterOrEqual(t, len(expanded), 5)
	assert.Equal(t, []da.Cell{
		da.NewCell(1, 1),
		da.NewCell(0, 1),
		da.NewCell(2, 1),
		da.NewCell(1, 0),
		da.NewCell(1, 2),
	}, expanded[:5])
}

func TestDFSFollowsEnumerationOrderDepthFirst(t *testing.T) {
	grid := mustGrid(t, []string{
		"...",
		"...",
		"...",
	})

	search := NewDFS(grid, costfunction.NewUniformCostFunction())
	expanded := make([]da.Cell, 0)
	search.SetExpansionObserver(func(cell da.Cell, _ int) {
		expanded = append(expanded, cell)
	})

	_, found, err := search.Route(da.NewCell(2, 0), da.NewCell(2, 2))
	require.NoError(t, err)
	require.True(t, found)

	// from (2,0) the first enumerated neighbor is up, so the search walks
	// the left column to the top before anything else
	require.GreaterOrEqual(t, len(expanded), 3)
	assert.Equal(t, []da.Cell{
		da.NewCell(2, 0),
		da.NewCell(1, 0),
		da.NewCell(0, 0),
	}, expanded[:3])
}

func TestAStarNeverExpandsSettledCellTwice(t *testing.T) {
	grid := mustGrid(t, cityMap)

	search := NewAStar(grid, costfunction.NewUniformCostFunction())
	counts := make(map[da.Cell]int)
	search.SetExpansionObserver(func(cell da.Cell, _ int) {
		counts[cell]++
	})

	_, found, err := search.Route(da.NewCell(0, 0), da.NewCell(4, 7))
	require.NoError(t, err)
	require.True(t, found)

	for cell, n := range counts {
		assert.Equal(t, 1, n, "cell %s settled %d times", cell, n)
	}
}

func TestReconstructRouteDetectsBrokenChain(t *testing.T) {
	start, goal := da.NewCell(0, 0), da.NewCell(0, 3)

	t.Run("cyclic predecessors", func(t *testing.T) {
		a, b := da.NewCell(0, 1), da.NewCell(0, 2)
		info := map[da.Cell]*cellInfo{
			start: newCellInfo(0, da.INVALID_CELL, false, nil),
			a:     newCellInfo(1, b, true, nil),
			b:     newCellInfo(2, a, true, nil),
			goal:  newCellInfo(3, b, true, nil),
		}
		_, err := reconstructRoute(4, info, start, goal)
		assert.ErrorIs(t, err, ErrPredecessorCycle)
	})

	t.Run("chain never reaches start", func(t *testing.T) {
		orphan := da.NewCell(0, 2)
		info := map[da.Cell]*cellInfo{
			start:  newCellInfo(0, da.INVALID_CELL, false, nil),
			orphan: newCellInfo(2, da.NewCell(9, 9), true, nil),
			goal:   newCellInfo(3, orphan, true, nil),
		}
		_, err := reconstructRoute(16, info, start, goal)
		assert.ErrorIs(t, err, ErrPredecessorCycle)
	})
}

package pkg

import "fmt"

// Algorithm selects which search strategy the engine runs.
type Algorithm uint8

const (
	ASTAR Algorithm = iota
	BFS
	DFS
)

func (a Algorithm) String() string {
	switch a {
	case ASTAR:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return "unknown"
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "astar", "a*":
		return ASTAR, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return ASTAR, fmt.Errorf("unknown algorithm: %q", s)
}

const (
	INF_WEIGHT float64 = 1e15

	// fuel consumed by one cardinal move on the grid
	UNIFORM_STEP_COST = 1.0
)

// symbols used by the city map file format and the route renderer
const (
	FREE_SYMBOL      byte = '.'
	BLOCKED_SYMBOL   byte = '#'
	START_SYMBOL     byte = 'S'
	GOAL_SYMBOL      byte = 'G'
	ROUTE_SYMBOL     byte = '*'
	RENDERED_FREE    byte = ' '
	RENDERED_BLOCKED byte = '#'
)

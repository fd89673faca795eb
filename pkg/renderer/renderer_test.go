package renderer

import (
	"testing"

	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRouteOverlay(t *testing.T) {
	grid, err := datastructure.NewGridFromSymbols([]string{
		"..#",
		"...",
	})
	require.NoError(t, err)

	start := datastructure.NewCell(0, 0)
	goal := datastructure.NewCell(1, 2)
	route := datastructure.NewRoute([]datastructure.Cell{
		start,
		datastructure.NewCell(1, 0),
		datastructure.NewCell(1, 1),
		goal,
	}, 3, 5)

	want := "" +
		"S   #\n" +
		"* * G\n"
	assert.Equal(t, want, Render(grid, route, start, goal))
}

func TestRenderWithoutRoute(t *testing.T) {
	grid, err := datastructure.NewGridFromSymbols([]string{
		".#",
		"..",
	})
	require.NoError(t, err)

	start := datastructure.NewCell(0, 0)
	goal := datastructure.NewCell(1, 1)

	want := "" +
		"S #\n" +
		"  G\n"
	assert.Equal(t, want, Render(grid, datastructure.Route{}, start, goal))
}

package datastructure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridValidation(t *testing.T) {
	testCases := []struct {
		name    string
		blocked [][]bool
		wantErr error
	}{
		{
			name:    "empty grid",
			blocked: [][]bool{},
			wantErr: ErrEmptyGrid,
		},
		{
			name:    "empty rows",
			blocked: [][]bool{{}, {}},
			wantErr: ErrEmptyGrid,
		},
		{
			name: "ragged rows",
			blocked: [][]bool{
				{false, false, false},
				{false, false},
			},
			wantErr: ErrNonRectangular,
		},
		{
			name: "valid grid",
			blocked: [][]bool{
				{false, true},
				{false, false},
			},
			wantErr: nil,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.blocked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.blocked), grid.NumberOfRows())
			assert.Equal(t, len(tt.blocked[0]), grid.NumberOfCols())
		})
	}
}

func TestNewGridDeepCopiesInput(t *testing.T) {
	blocked := [][]bool{
		{false, false},
		{false, false},
	}
	grid, err := NewGrid(blocked)
	require.NoError(t, err)

	blocked[0][1] = true
	assert.False(t, grid.IsBlocked(NewCell(0, 1)))
}

func TestValidateEndpoint(t *testing.T) {
	grid, err := NewGrid([][]bool{
		{false, true},
		{false, false},
	})
	require.NoError(t, err)

	assert.NoError(t, grid.ValidateEndpoint(NewCell(0, 0)))
	assert.ErrorIs(t, grid.ValidateEndpoint(NewCell(0, 1)), ErrCellBlocked)
	assert.ErrorIs(t, grid.ValidateEndpoint(NewCell(-1, 0)), ErrCellOutOfBounds)
	assert.ErrorIs(t, grid.ValidateEndpoint(NewCell(2, 0)), ErrCellOutOfBounds)
	assert.ErrorIs(t, grid.ValidateEndpoint(NewCell(0, 2)), ErrCellOutOfBounds)
}

func TestNeighborEnumerationOrder(t *testing.T) {
	grid, err := NewGrid([][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	})
	require.NoError(t, err)

	// up, down, left, right
	assert.Equal(t,
		[]Cell{NewCell(0, 1), NewCell(2, 1), NewCell(1, 0), NewCell(1, 2)},
		grid.Neighbors(NewCell(1, 1)))

	// corner cells keep the same relative order, missing directions skipped
	assert.Equal(t,
		[]Cell{NewCell(1, 0), NewCell(0, 1)},
		grid.Neighbors(NewCell(0, 0)))
	assert.Equal(t,
		[]Cell{NewCell(1, 2), NewCell(2, 1)},
		grid.Neighbors(NewCell(2, 2)))
}

func TestNeighborsSkipBlockedAndOutOfBounds(t *testing.T) {
	grid, err := NewGrid([][]bool{
		{false, true, false},
		{false, false, false},
	})
	require.NoError(t, err)

	// from (0,0): up and left are out of bounds, right (0,1) is blocked,
	// only down survives
	assert.Equal(t, []Cell{NewCell(1, 0)}, grid.Neighbors(NewCell(0, 0)))

	// from (1,1): up (0,1) is blocked
	assert.Equal(t,
		[]Cell{NewCell(1, 0), NewCell(1, 2)},
		grid.Neighbors(NewCell(1, 1)))
}

func TestNewGridFromSymbols(t *testing.T) {
	grid, err := NewGridFromSymbols([]string{
		"..#",
		"...",
	})
	require.NoError(t, err)
	assert.True(t, grid.IsBlocked(NewCell(0, 2)))
	assert.False(t, grid.IsBlocked(NewCell(1, 2)))

	_, err = NewGridFromSymbols([]string{".x."})
	assert.Error(t, err)
}

func TestGridFileRoundTrip(t *testing.T) {
	grid, err := NewGridFromSymbols([]string{
		"....#...",
		".##.#.#.",
		"........",
		"##.###..",
		"........",
	})
	require.NoError(t, err)

	for _, name := range []string{"map.txt", "map.txt.bz2"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, grid.WriteGridFile(path))

			loaded, err := ReadGridFile(path)
			require.NoError(t, err)

			require.Equal(t, grid.NumberOfRows(), loaded.NumberOfRows())
			require.Equal(t, grid.NumberOfCols(), loaded.NumberOfCols())
			for r := 0; r < grid.NumberOfRows(); r++ {
				for c := 0; c < grid.NumberOfCols(); c++ {
					cell := NewCell(r, c)
					assert.Equal(t, grid.IsBlocked(cell), loaded.IsBlocked(cell))
				}
			}
		})
	}
}

func TestCellIsAdjacent(t *testing.T) {
	c := NewCell(2, 3)
	assert.True(t, c.IsAdjacent(NewCell(1, 3)))
	assert.True(t, c.IsAdjacent(NewCell(3, 3)))
	assert.True(t, c.IsAdjacent(NewCell(2, 2)))
	assert.True(t, c.IsAdjacent(NewCell(2, 4)))
	assert.False(t, c.IsAdjacent(c))
	assert.False(t, c.IsAdjacent(NewCell(3, 4)), "diagonal is not adjacent")
	assert.False(t, c.IsAdjacent(NewCell(2, 5)))
}

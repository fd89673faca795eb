package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildIndex(t *testing.T, lines []string) *Rtree {
	t.Helper()
	grid, err := datastructure.NewGridFromSymbols(lines)
	require.NoError(t, err)

	rt := NewRtree()
	rt.Build(grid, zap.NewNop())
	return rt
}

func TestSnapToFreeCell(t *testing.T) {
	rt := buildIndex(t, []string{
		"##.",
		"#..",
		"...",
	})

	testCases := []struct {
		name     string
		row, col int
		radius   int
		want     datastructure.Cell
		wantOK   bool
	}{
		{
			name: "already free returns itself",
			row:  2, col: 0, radius: 2,
			want: datastructure.NewCell(2, 0), wantOK: true,
		},
		{
			name: "blocked corner snaps to nearest free",
			row:  0, col: 0, radius: 2,
			// (0,2), (1,1) and (2,0) are all two steps away, the
			// smallest row wins
			want: datastructure.NewCell(0, 2), wantOK: true,
		},
		{
			name: "blocked cell snaps one step right",
			row:  0, col: 1, radius: 2,
			want: datastructure.NewCell(0, 2), wantOK: true,
		},
		{
			name: "off the map still snaps when within radius",
			row:  -1, col: 2, radius: 2,
			want: datastructure.NewCell(0, 2), wantOK: true,
		},
		{
			name: "nothing within radius",
			row:  -10, col: -10, radius: 2,
			wantOK: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rt.SnapToFreeCell(tt.row, tt.col, tt.radius)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSnapTieBreakIsDeterministic(t *testing.T) {
	// every free cell is symmetric around the blocked center
	rt := buildIndex(t, []string{
		".#.",
		"###",
		".#.",
	})

	// all four corners are two steps from (1,1); smallest row then
	// smallest column must win
	got, ok := rt.SnapToFreeCell(1, 1, 2)
	require.True(t, ok)
	assert.Equal(t, datastructure.NewCell(0, 0), got)
}

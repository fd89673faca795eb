package spatialindex

import (
	"math"

	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes every free cell of the city grid so a blocked or slightly
// off-map requested endpoint can be snapped to the nearest deliverable cell,
// the way a courier request gets snapped to the nearest reachable address.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Cell]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Cell]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes the traversable cells. The grid is immutable after startup,
// so Build runs once.
func (rt *Rtree) Build(grid *datastructure.Grid, log *zap.Logger) {
	log.Info("Building R-tree spatial index over free cells...")
	count := 0
	grid.ForFreeCells(func(c datastructure.Cell) {
		p := [2]float64{float64(c.GetCol()), float64(c.GetRow())}
		rt.tr.Insert(p, p, c)
		count++
	})
	log.Info("R-tree spatial index built.", zap.Int("freeCells", count))
}

// SnapToFreeCell returns the free cell with the smallest Manhattan distance
// to (row, col), searching a box of the given radius. Ties prefer the
// smaller row, then the smaller column, so snapping is deterministic.
// ok=false when no free cell lies within the radius.
func (rt *Rtree) SnapToFreeCell(row, col, radius int) (datastructure.Cell, bool) {
	min := [2]float64{float64(col - radius), float64(row - radius)}
	max := [2]float64{float64(col + radius), float64(row + radius)}

	best := datastructure.INVALID_CELL
	bestDist := math.MaxInt

	rt.tr.Search(min, max, func(_, _ [2]float64, c datastructure.Cell) bool {
		if d := util.Abs(c.GetRow()-row) + util.Abs(c.GetCol()-col); d < bestDist ||
			(d == bestDist && (c.GetRow() < best.GetRow() ||
				(c.GetRow() == best.GetRow() && c.GetCol() < best.GetCol()))) {
			bestDist = d
			best = c
		}
		return true
	})

	if best == datastructure.INVALID_CELL {
		return best, false
	}
	return best, true
}

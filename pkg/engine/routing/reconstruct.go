package routing

import (
	"errors"
	"fmt"

	da "github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/util"
)

// ErrPredecessorCycle means a search recorded a cyclic or broken predecessor
// chain. This is an implementation bug, never a user-facing condition, and
// is surfaced immediately instead of being recovered.
var ErrPredecessorCycle = errors.New("predecessor chain is cyclic or never reaches the start cell")

// reconstructRoute walks predecessor links from the goal back to the start
// and reverses the chain into start-to-goal order. The walk is bounded by
// maxCells links; a correct search can never produce a longer chain.
func reconstructRoute(maxCells int, info map[da.Cell]*cellInfo, start, goal da.Cell) ([]da.Cell, error) {
	cells := make([]da.Cell, 0)

	cur := goal
	for {
		if len(cells) > maxCells {
			return nil, fmt.Errorf("%w: walked %d predecessor links on a %d-cell grid",
				ErrPredecessorCycle, len(cells), maxCells)
		}

		cells = append(cells, cur)
		if cur == start {
			break
		}

		curInfo, ok := info[cur]
		if !ok || curInfo.isStartOfChain() {
			return nil, fmt.Errorf("%w: no predecessor recorded for %s", ErrPredecessorCycle, cur)
		}
		cur = curInfo.getParent()
	}

	return util.ReverseG(cells), nil
}

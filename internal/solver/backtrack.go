package solver

import (
	"context"
	"errors"

	"github.com/rmerry/dusudoku/internal/domain"
)

// BacktrackingSolver is a recursive depth-first solver over the constraint-set
// state. Candidates are tried in ascending digit order at each position and
// positions are visited in flat order, so the first solution found for a given
// puzzle is always the same one.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// ErrUnsolvable reports that the whole search space was exhausted without
// finding a solution. A valid negative result, not a malfunction.
var ErrUnsolvable = errors.New("no solution")

// --- recursive core used by Solve/Unique (in other files) ---

// solve tries to complete the grid from flat position p onward, mutating st
// in place. Every tentative placement is undone exactly on the failure path
// so the constraint sets never drift from the grid.
func solve(ctx context.Context, st *domain.State, p int, nodes *int) bool {
	if p == domain.Cells {
		return true
	}
	// pre-filled square: no branching
	if st.Grid[p] > 0 {
		return solve(ctx, st, p+1, nodes)
	}
	if ctx.Err() != nil {
		return false
	}
	for d := uint8(1); d <= domain.Size; d++ {
		if st.Blocked(p, d) {
			continue
		}
		*nodes++
		st.Place(p, d)
		if solve(ctx, st, p+1, nodes) {
			// the placement is part of the solution; leave it
			return true
		}
		st.Unplace(p, d)
	}
	return false
}

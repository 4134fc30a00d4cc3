package solver

import (
	"context"
	"time"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
// Unlike Solve, every placement is undone even after a completed grid, so st
// is restored to its initial contents when the count finishes.
func (s *BacktrackingSolver) Unique(ctx context.Context, st *domain.State) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	var dfs func(p int) bool
	dfs = func(p int) bool {
		if ctx.Err() != nil {
			return true // stop early
		}
		if p == domain.Cells {
			count++
			return count >= 2
		}
		if st.Grid[p] > 0 {
			return dfs(p + 1)
		}
		for d := uint8(1); d <= domain.Size; d++ {
			if st.Blocked(p, d) {
				continue
			}
			nodes++
			st.Place(p, d)
			stop := dfs(p + 1)
			st.Unplace(p, d)
			if stop {
				return true
			}
		}
		return false
	}
	_ = dfs(0)
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

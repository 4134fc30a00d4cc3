package solver

import (
	"context"
	"time"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/ports"
)

// Solve searches for a completion of st, mutating it in place. On success the
// state holds the solved grid; on ErrUnsolvable every tentative placement has
// been unwound and the state is back to its initial contents.
func (s *BacktrackingSolver) Solve(ctx context.Context, st *domain.State) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	if !solve(ctx, st, 0, &nodes) {
		stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, stats, err
		}
		return domain.Grid{}, stats, ErrUnsolvable
	}
	return st.Grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

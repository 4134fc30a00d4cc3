package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/ports"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution using seed and target difficulty.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	full := &domain.State{}
	if !fillRandom(ctx, rng, full, 0) {
		return nil, ports.Stats{}, context.Canceled
	}

	// 2) carve out givens while preserving uniqueness
	puz := full.Grid
	positions := rng.Perm(domain.Cells)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if puz.Givens() <= target {
			break
		}
		old := puz[pos]
		puz[pos] = 0
		unique, stats, err := g.Solver.Unique(ctx, stateOf(puz))
		nodes += stats.Nodes
		if err != nil || !unique {
			// revert
			puz[pos] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     puz.String(),
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// stateOf rebuilds the constraint sets for a grid known to be conflict-free.
func stateOf(g domain.Grid) *domain.State {
	st := &domain.State{}
	for p, d := range g {
		if d != 0 {
			st.Place(p, d)
		}
	}
	return st
}

// fillRandom completes an empty state into a full valid solution, trying the
// candidate digits of each cell in random order.
func fillRandom(ctx context.Context, rng *rand.Rand, st *domain.State, p int) bool {
	if ctx.Err() != nil {
		return false
	}
	if p == domain.Cells {
		return true
	}
	var nums [domain.Size]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	rng.Shuffle(domain.Size, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	for _, d := range nums {
		if st.Blocked(p, d) {
			continue
		}
		st.Place(p, d)
		if fillRandom(ctx, rng, st, p+1) {
			return true
		}
		st.Unplace(p, d)
	}
	return false
}

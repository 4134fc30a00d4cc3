package ports

import (
	"context"
	"time"

	"github.com/rmerry/dusudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a solver state and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, st *domain.State) (domain.Grid, Stats, error)
	Unique(ctx context.Context, st *domain.State) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator parses the canonical 81-character puzzle form into a solver
// state, rejecting malformed input and duplicate givens.
type Validator interface {
	Parse(ctx context.Context, input string) (*domain.State, error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, st *domain.State, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/solver"
	"github.com/rmerry/dusudoku/internal/validator"
)

func TestGenerateAllDifficultiesUnder2s(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			require.NoError(t, err)
			assert.Equal(t, seed, p.Seed)
			assert.Equal(t, tc.diff, p.Difficulty)

			// the canonical form must pass validation
			state, err := validator.New().Parse(ctx, p.Givens)
			require.NoError(t, err)

			givens := state.Grid.Givens()
			assert.GreaterOrEqual(t, givens, 17, "fewer givens than any unique puzzle can have")
			assert.Less(t, givens, 81)

			unique, _, err := s.Unique(ctx, state)
			require.NoError(t, err)
			assert.True(t, unique, "generated puzzle must have exactly one solution")
			t.Logf("%s: givens=%d nodes=%d dur=%v", tc.name, givens, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	p1, _, err := g.Generate(ctx, 42, domain.Easy)
	require.NoError(t, err)
	p2, _, err := g.Generate(ctx, 42, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, p1.Givens, p2.Givens)
}

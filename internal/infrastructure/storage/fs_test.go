package storage

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmerry/dusudoku/internal/domain"
)

func samplePuzzle(diff domain.Difficulty) *domain.Puzzle {
	return &domain.Puzzle{
		Seed:       42,
		Difficulty: diff,
		Givens:     "53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79",
		CreatedAt:  time.Now().UnixNano(),
		Name:       "classic",
	}
}

func TestSaveAssignsIDAndLoadsBack(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle(domain.Hard)
	require.NoError(t, fs.Save(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := fs.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Givens, got.Givens)
	assert.Equal(t, domain.Hard, got.Difficulty)
	assert.Equal(t, "classic", got.Name)
}

func TestSaveRejectsBadPuzzle(t *testing.T) {
	fs := NewFS(t.TempDir())
	assert.Error(t, fs.Save(context.Background(), nil))
	assert.Error(t, fs.Save(context.Background(), &domain.Puzzle{Givens: "short"}))
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossDifficulties(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	easy := samplePuzzle(domain.Easy)
	expert := samplePuzzle(domain.Expert)
	require.NoError(t, fs.Save(ctx, easy))
	require.NoError(t, fs.Save(ctx, expert))

	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	ids := []string{metas[0].ID, metas[1].ID}
	assert.Contains(t, ids, easy.ID)
	assert.Contains(t, ids, expert.ID)
	for _, m := range metas {
		assert.False(t, strings.Contains(m.ID, "/"))
		assert.NotZero(t, m.CreatedAt)
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubgridMapping(t *testing.T) {
	// every subgrid must contain exactly 9 positions
	var counts [Size]int
	for p := 0; p < Cells; p++ {
		counts[SubgridOf(p)]++
	}
	for b, n := range counts {
		assert.Equal(t, Size, n, "subgrid %d", b)
	}
	// spot checks against the fixed 3x3 partition
	assert.Equal(t, 0, SubgridOf(0))
	assert.Equal(t, 2, SubgridOf(8))
	assert.Equal(t, 4, SubgridOf(40)) // center cell
	assert.Equal(t, 6, SubgridOf(72))
	assert.Equal(t, 8, SubgridOf(80))
}

func TestDigitSet(t *testing.T) {
	var s DigitSet
	for d := uint8(1); d <= 9; d++ {
		assert.False(t, s.Has(d))
	}
	s.Add(5)
	assert.True(t, s.Has(5))
	assert.Equal(t, 1, s.Count())

	d, ok := s.Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(5), d)

	s.Add(1)
	_, ok = s.Sole()
	assert.False(t, ok)

	s.Remove(5)
	assert.False(t, s.Has(5))
	assert.True(t, s.Has(1))
}

func TestPlaceUnplaceSymmetry(t *testing.T) {
	var zero State
	st := &State{}
	st.Place(40, 7)
	assert.Equal(t, uint8(7), st.Grid[40])
	assert.True(t, st.Rows[4].Has(7))
	assert.True(t, st.Cols[4].Has(7))
	assert.True(t, st.Subgrids[4].Has(7))
	assert.True(t, st.Blocked(44, 7), "same row")
	assert.True(t, st.Blocked(4, 7), "same column")
	assert.True(t, st.Blocked(30, 7), "same subgrid")
	assert.False(t, st.Blocked(0, 7))

	st.Unplace(40, 7)
	assert.Equal(t, zero, *st, "Unplace must be the exact inverse of Place")
}

func TestCandidates(t *testing.T) {
	st := &State{}
	assert.Equal(t, 9, st.Candidates(0).Count())
	for d := uint8(1); d <= 8; d++ {
		st.Place(int(d)-1, d) // fill row 0 with 1..8
	}
	d, ok := st.Candidates(8).Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(9), d)
}

func TestGridString(t *testing.T) {
	var g Grid
	g[0] = 5
	g[80] = 9
	s := g.String()
	assert.Len(t, s, Cells)
	assert.Equal(t, byte('5'), s[0])
	assert.Equal(t, byte('9'), s[80])
	assert.Equal(t, byte('-'), s[1])
	assert.Equal(t, 2, g.Givens())
}

package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classic = "53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79"

// puzzleWith builds an all-empty input with the given position/char overrides.
func puzzleWith(cells map[int]byte) string {
	b := []byte(strings.Repeat("-", 81))
	for p, ch := range cells {
		b[p] = ch
	}
	return string(b)
}

func TestParseClassic(t *testing.T) {
	st, err := New().Parse(context.Background(), classic)
	require.NoError(t, err)
	assert.Equal(t, classic, st.Grid.String())
	assert.Equal(t, 30, st.Grid.Givens())
	// constraint sets reflect the givens
	assert.True(t, st.Rows[0].Has(5))
	assert.True(t, st.Cols[0].Has(5))
	assert.True(t, st.Subgrids[0].Has(5))
}

func TestParseZeroAndDashInterchangeable(t *testing.T) {
	withZeros := strings.ReplaceAll(classic, "-", "0")
	a, err := New().Parse(context.Background(), classic)
	require.NoError(t, err)
	b, err := New().Parse(context.Background(), withZeros)
	require.NoError(t, err)
	assert.Equal(t, a.Grid, b.Grid)
}

func TestParseInvalidLength(t *testing.T) {
	for _, in := range []string{"", "123", strings.Repeat("-", 80), strings.Repeat("x", 82)} {
		_, err := New().Parse(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := New().Parse(context.Background(), puzzleWith(map[int]byte{13: 'x'}))
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, byte('x'), charErr.Char)
	assert.Equal(t, "invalid input character (x)", err.Error())
}

func TestParseDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		cells map[int]byte
		unit  Unit
		index int
	}{
		// positions 0 and 1 share row 1 and subgrid 1; row wins over subgrid
		{"row", map[int]byte{0: '5', 1: '5'}, UnitRow, 1},
		// positions 0 and 9 share column 1 and subgrid 1; column is checked first
		{"column", map[int]byte{0: '5', 9: '5'}, UnitColumn, 1},
		// positions 0 and 10 share only subgrid 1
		{"subgrid", map[int]byte{0: '5', 10: '5'}, UnitSubgrid, 1},
		{"far column", map[int]byte{8: '3', 71: '3'}, UnitColumn, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Parse(context.Background(), puzzleWith(tc.cells))
			var dupErr *DuplicateDigitError
			require.ErrorAs(t, err, &dupErr)
			assert.Equal(t, tc.unit, dupErr.Unit)
			assert.Equal(t, tc.index, dupErr.Index)
		})
	}
}

func TestDuplicateErrorMessages(t *testing.T) {
	assert.Equal(t, "the number 5 appears more than once on row 1",
		(&DuplicateDigitError{Digit: 5, Unit: UnitRow, Index: 1}).Error())
	assert.Equal(t, "the number 3 appears more than once in column 9",
		(&DuplicateDigitError{Digit: 3, Unit: UnitColumn, Index: 9}).Error())
	assert.Equal(t, "the number 7 appears more than once in subgrid 4",
		(&DuplicateDigitError{Digit: 7, Unit: UnitSubgrid, Index: 4}).Error())
}

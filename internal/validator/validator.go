// Package validator parses the 81-character puzzle form into a solver state,
// rejecting malformed input and duplicate-digit contradictions.
package validator

import (
	"context"

	"github.com/rmerry/dusudoku/internal/domain"
)

// PuzzleValidator builds solver states from the canonical string form.
type PuzzleValidator struct{}

func New() *PuzzleValidator { return &PuzzleValidator{} }

// Parse converts an 81-character puzzle string into a populated solver state.
// '-' and '0' both mean empty; '1'..'9' are givens. The first violation found
// is reported and parsing stops; no search is started.
func (v *PuzzleValidator) Parse(ctx context.Context, input string) (*domain.State, error) {
	if len(input) != domain.Cells {
		return nil, ErrInvalidLength
	}
	st := &domain.State{}
	for p := 0; p < domain.Cells; p++ {
		ch := input[p]
		switch {
		case ch == '-' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			if err := place(st, p, ch-'0'); err != nil {
				return nil, err
			}
		default:
			return nil, &InvalidCharacterError{Char: ch}
		}
	}
	return st, nil
}

// place registers a given, checking the column, then the row, then the
// subgrid for a duplicate of d. Indices in errors are 1-based.
func place(st *domain.State, p int, d uint8) error {
	if st.Cols[domain.ColOf(p)].Has(d) {
		return &DuplicateDigitError{Digit: d, Unit: UnitColumn, Index: domain.ColOf(p) + 1}
	}
	if st.Rows[domain.RowOf(p)].Has(d) {
		return &DuplicateDigitError{Digit: d, Unit: UnitRow, Index: domain.RowOf(p) + 1}
	}
	if st.Subgrids[domain.SubgridOf(p)].Has(d) {
		return &DuplicateDigitError{Digit: d, Unit: UnitSubgrid, Index: domain.SubgridOf(p) + 1}
	}
	st.Place(p, d)
	return nil
}

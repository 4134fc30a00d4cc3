package domain

import "math/bits"

// DigitSet records which of the digits 1-9 are present in one row, column or
// subgrid. Bit d-1 set means digit d is placed somewhere in that unit.
type DigitSet uint16

// all is the mask with every digit present.
const all DigitSet = 1<<Size - 1

func (s DigitSet) Has(d uint8) bool { return s&(1<<(d-1)) != 0 }
func (s *DigitSet) Add(d uint8)     { *s |= 1 << (d - 1) }
func (s *DigitSet) Remove(d uint8)  { *s &^= 1 << (d - 1) }

// Count returns the number of digits in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single digit in the set, if there is exactly one.
func (s DigitSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// State bundles a grid with the three constraint-set families derived from
// it. The sets are a cache over the grid, never independent truth: Place and
// Unplace are exact inverses so that the cache stays in sync through every
// tentative placement and its undo.
type State struct {
	Grid     Grid
	Rows     [Size]DigitSet
	Cols     [Size]DigitSet
	Subgrids [Size]DigitSet
}

// Blocked reports whether digit d already appears in the row, column or
// subgrid of position p.
func (st *State) Blocked(p int, d uint8) bool {
	return st.Cols[ColOf(p)].Has(d) || st.Rows[RowOf(p)].Has(d) || st.Subgrids[SubgridOf(p)].Has(d)
}

// Place writes d at position p and records it in all three constraint sets.
// The cell must be empty and d must not be Blocked.
func (st *State) Place(p int, d uint8) {
	st.Rows[RowOf(p)].Add(d)
	st.Cols[ColOf(p)].Add(d)
	st.Subgrids[SubgridOf(p)].Add(d)
	st.Grid[p] = d
}

// Unplace is the exact inverse of Place.
func (st *State) Unplace(p int, d uint8) {
	st.Rows[RowOf(p)].Remove(d)
	st.Cols[ColOf(p)].Remove(d)
	st.Subgrids[SubgridOf(p)].Remove(d)
	st.Grid[p] = 0
}

// Candidates returns the digits still placeable at position p.
func (st *State) Candidates(p int) DigitSet {
	return ^(st.Rows[RowOf(p)] | st.Cols[ColOf(p)] | st.Subgrids[SubgridOf(p)]) & all
}

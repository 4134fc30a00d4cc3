package validator

import (
	"errors"
	"fmt"
)

// ErrInvalidLength reports an input that is not exactly 81 characters.
var ErrInvalidLength = errors.New("the expected input length is 81 characters")

// InvalidCharacterError reports a character outside '-', '0'..'9'.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid input character (%c)", e.Char)
}

// Unit names the kind of unit a duplicate was found in.
type Unit int

const (
	UnitColumn Unit = iota
	UnitRow
	UnitSubgrid
)

func (u Unit) String() string {
	switch u {
	case UnitColumn:
		return "column"
	case UnitRow:
		return "row"
	default:
		return "subgrid"
	}
}

// DuplicateDigitError reports a digit placed twice in the same unit.
// Index is 1-based and, for subgrids, names the actual subgrid (subgrids are
// numbered 0..8 left-to-right, top-to-bottom, then reported 1-based).
type DuplicateDigitError struct {
	Digit uint8
	Unit  Unit
	Index int
}

func (e *DuplicateDigitError) Error() string {
	if e.Unit == UnitRow {
		return fmt.Sprintf("the number %d appears more than once on row %d", e.Digit, e.Index)
	}
	return fmt.Sprintf("the number %d appears more than once in %s %d", e.Digit, e.Unit, e.Index)
}

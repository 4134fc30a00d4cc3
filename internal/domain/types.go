package domain

const (
	// Size is the side length of the board.
	Size = 9
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

// Grid holds the 81 cells of a board in row-major order; 0 means empty.
type Grid [Cells]uint8

// subgridOf maps a flat position to its 3x3 subgrid.
var subgridOf = [Cells]int{
	0, 0, 0, 1, 1, 1, 2, 2, 2,
	0, 0, 0, 1, 1, 1, 2, 2, 2,
	0, 0, 0, 1, 1, 1, 2, 2, 2,
	3, 3, 3, 4, 4, 4, 5, 5, 5,
	3, 3, 3, 4, 4, 4, 5, 5, 5,
	3, 3, 3, 4, 4, 4, 5, 5, 5,
	6, 6, 6, 7, 7, 7, 8, 8, 8,
	6, 6, 6, 7, 7, 7, 8, 8, 8,
	6, 6, 6, 7, 7, 7, 8, 8, 8,
}

// RowOf, ColOf and SubgridOf map a flat position (0..80) to its units.
func RowOf(p int) int     { return p / Size }
func ColOf(p int) int     { return p % Size }
func SubgridOf(p int) int { return subgridOf[p] }

// CoordOf returns the row/column coordinate of a flat position.
func CoordOf(p int) CellCoord { return CellCoord{Row: RowOf(p), Col: ColOf(p)} }

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String encodes the grid in the canonical 81-character form: digits for
// filled cells, '-' for empty ones.
func (g Grid) String() string {
	var buf [Cells]byte
	for p, d := range g {
		if d == 0 {
			buf[p] = '-'
		} else {
			buf[p] = '0' + d
		}
	}
	return string(buf[:])
}

// Givens counts the filled cells.
func (g Grid) Givens() int {
	n := 0
	for _, d := range g {
		if d != 0 {
			n++
		}
	}
	return n
}

// Hint describes a strategy suggestion.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Digit    uint8        `json:"digit,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata. Givens carries the board in the
// canonical 81-character form.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     string     `json:"givens"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

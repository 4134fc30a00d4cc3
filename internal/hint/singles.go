package hint

import (
	"context"
	"fmt"

	"github.com/rmerry/dusudoku/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it. The
// constraint sets already know which digits are blocked per unit, so a naked
// single is just a candidate mask with one bit left.
func (h *Singles) Hint(ctx context.Context, st *domain.State, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for p := 0; p < domain.Cells; p++ {
		if st.Grid[p] != 0 {
			continue
		}
		if d, ok := st.Candidates(p).Sole(); ok {
			return domain.Hint{
				Message:  fmt.Sprintf("single: only %d fits here", d),
				Digit:    d,
				Cells:    []domain.CellCoord{domain.CoordOf(p)},
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

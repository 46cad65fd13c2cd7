package hint

import (
	"context"
	"fmt"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
)

// Singles implements a minimal Hinter that suggests forced cells: the
// first empty cell whose domain under the current assignment is a
// singleton.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first forced move found, scanning row-major.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	size := g.Size()
	for row := 0; row < size; row++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		for col := 0; col < size; col++ {
			if !g.IsEmptyCell(row, col) {
				continue
			}
			possible := constraint.PossibleValues(g, row, col)
			if len(possible) == 1 {
				return domain.Hint{
					Message: fmt.Sprintf("forced: only %d fits here", possible[0]),
					Cell:    domain.CellCoord{Row: row, Col: col},
					Value:   possible[0],
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

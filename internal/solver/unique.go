package solver

import (
	"context"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
)

// CountSolutions counts distinct completions of the grid, stopping once
// limit is reached. The input grid is not modified. Used by the generator
// to screen puzzles for a unique solution.
func CountSolutions(ctx context.Context, g *domain.Grid, limit int) int {
	grid := g.Clone()
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		row, col, ok := firstEmpty(grid)
		if !ok {
			if constraint.Valid(grid) {
				count++
			}
			return count >= limit
		}
		for _, v := range []domain.Cell{domain.Zero, domain.One} {
			grid.Set(row, col, v)
			if constraint.ConsistentAt(grid, row, col) && dfs() {
				grid.Set(row, col, domain.Empty)
				return true
			}
			grid.Set(row, col, domain.Empty)
		}
		return false
	}

	dfs()
	return count
}

package solver

import (
	"context"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
)

// ForwardCheckingSolver extends the baseline with a look-ahead: after a
// value passes the local consistency check, the search descends only if
// every empty neighbor in the same row and column keeps a non-empty
// domain. Dead branches are cut before recursion instead of inside it.
type ForwardCheckingSolver struct{}

func NewForwardCheckingSolver() *ForwardCheckingSolver { return &ForwardCheckingSolver{} }

func (s *ForwardCheckingSolver) Name() string { return "forward-checking" }

func (s *ForwardCheckingSolver) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
	start := time.Now()
	out := st.Clone()
	grid := out.Grid
	nodes, backtracks := 0, 0

	var dfs func() bool
	dfs = func() bool {
		nodes++
		if ctx.Err() != nil {
			return false
		}
		if grid.IsFull() {
			return constraint.Valid(grid)
		}
		row, col, _ := firstEmpty(grid)
		for _, v := range []domain.Cell{domain.Zero, domain.One} {
			grid.Set(row, col, v)
			if constraint.ConsistentAt(grid, row, col) && forwardCheck(grid, row, col) && dfs() {
				return true
			}
			grid.Set(row, col, domain.Empty)
			backtracks++
		}
		return false
	}

	ok := dfs()
	stats := ports.Stats{Nodes: nodes, Backtracks: backtracks, Duration: time.Since(start), Solved: ok}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ErrNoSolution
	}
	return out, stats, nil
}

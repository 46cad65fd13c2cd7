package solver

import (
	"context"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
)

// BacktrackingSolver is the reference strategy: depth-first over the
// first empty cell, trying 0 then 1, pruning with the local consistency
// predicate only.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Name() string { return "backtrack" }

func (s *BacktrackingSolver) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
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
			if constraint.ConsistentAt(grid, row, col) && dfs() {
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

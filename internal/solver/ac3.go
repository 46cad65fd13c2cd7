package solver

import (
	"context"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
)

// AC3Solver runs arc-consistency preprocessing before backtracking:
// domains are pruned until every remaining value has a support in every
// neighboring domain, singletons are committed to the grid, and the
// search then iterates over the reduced domains only.
type AC3Solver struct{}

func NewAC3Solver() *AC3Solver { return &AC3Solver{} }

func (s *AC3Solver) Name() string { return "ac3" }

func (s *AC3Solver) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
	start := time.Now()
	out := st.Clone()
	grid := out.Grid
	nodes, backtracks := 0, 0

	d := newDomains(grid)
	if !propagate(ctx, grid, d, allArcs(grid.Size())) {
		stats := ports.Stats{Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ErrNoSolution
	}
	commitSingletons(grid, d)

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
		for _, v := range d.values(row, col) {
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

// commitSingletons writes every single-valued domain into the grid.
func commitSingletons(g *domain.Grid, d *domains) {
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.IsEmptyCell(row, col) && d.count(row, col) == 1 {
				g.Set(row, col, d.values(row, col)[0])
			}
		}
	}
}

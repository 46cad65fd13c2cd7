package solver

import (
	"context"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
)

// HeuristicSolver combines every search heuristic: MRV with degree
// tie-breaking for variable selection, LCV for value ordering, and
// forward checking after each placement. Domains are recomputed on
// demand rather than stored. The fastest general-purpose choice on
// small grids, and the default throughout the repository.
type HeuristicSolver struct{}

func NewHeuristicSolver() *HeuristicSolver { return &HeuristicSolver{} }

func (s *HeuristicSolver) Name() string { return "heuristic" }

func (s *HeuristicSolver) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
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

		row, col, _ := mrvDegreeCell(grid)
		values := constraint.PossibleValues(grid, row, col)
		if len(values) == 0 {
			backtracks++
			return false
		}

		for _, v := range orderLCV(grid, row, col, values) {
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

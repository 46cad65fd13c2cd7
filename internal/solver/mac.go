package solver

import (
	"context"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
)

// MACSolver maintains arc consistency through the whole search: one
// global AC-3 pass up front, then a local AC-3 pass seeded with the arcs
// incident to each new assignment. Every branch snapshots the domain
// store and restores it on backtrack, so propagation can shrink any
// domain without bookkeeping individual removals.
type MACSolver struct{}

func NewMACSolver() *MACSolver { return &MACSolver{} }

func (s *MACSolver) Name() string { return "mac" }

func (s *MACSolver) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
	start := time.Now()
	out := st.Clone()
	grid := out.Grid
	size := grid.Size()
	nodes, backtracks := 0, 0

	d := newDomains(grid)
	if !propagate(ctx, grid, d, allArcs(size)) {
		stats := ports.Stats{Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ErrNoSolution
	}

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
		values := d.values(row, col)
		if len(values) == 0 {
			backtracks++
			return false
		}

		for _, v := range values {
			snap := d.snapshot()
			grid.Set(row, col, v)
			if constraint.ConsistentAt(grid, row, col) {
				d.setOnly(row, col, v)
				if propagate(ctx, grid, d, incidentArcs(row, col, size)) && dfs() {
					return true
				}
			}
			grid.Set(row, col, domain.Empty)
			d.restore(snap)
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

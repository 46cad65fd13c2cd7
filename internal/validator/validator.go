// Package validator exposes read-only checks over Binairo grids: rule
// validation with human-readable messages, solvability via the default
// solver, per-cell violation tags for display, and the hint oracle.
package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
	"svw.info/binairo/internal/solver"
)

type Validator struct {
	solver ports.Solver
}

// New wires a validator around the given solver.
func New(s ports.Solver) *Validator { return &Validator{solver: s} }

// NewDefault uses the heuristic solver for solvability checks.
func NewDefault() *Validator { return New(solver.NewHeuristicSolver()) }

// IsValid checks all three rules without solving.
func (v *Validator) IsValid(g *domain.Grid) bool {
	return constraint.Valid(g)
}

// IsSolvable reports whether at least one completion exists.
func (v *Validator) IsSolvable(ctx context.Context, g *domain.Grid) bool {
	solved, _, err := v.solver.Solve(ctx, domain.NewState(g))
	return err == nil && solved.Solved()
}

// Validate checks the constraints, then solvability, and returns a
// structured report including the found solution when one exists.
func (v *Validator) Validate(ctx context.Context, g *domain.Grid) (domain.Report, error) {
	report := domain.Report{Violations: ruleViolations(g)}
	report.ConstraintsValid = len(report.Violations) == 0
	if !report.ConstraintsValid {
		return report, nil
	}

	solved, _, err := v.solver.Solve(ctx, domain.NewState(g))
	switch {
	case err == nil:
		report.Solvable = true
		b := solved.Grid.Board()
		report.Solution = &b
	case errors.Is(err, solver.ErrNoSolution):
		report.Solvable = false
	default:
		return report, err
	}
	return report, nil
}

// ruleViolations enumerates broken rules in message form.
func ruleViolations(g *domain.Grid) []string {
	var violations []string
	if !constraint.NoTriplets(g) {
		violations = append(violations, "three identical consecutive values detected")
	}
	if !constraint.Balanced(g) {
		violations = append(violations, "0/1 balance violated in a row or column")
	}
	if !constraint.UniqueRows(g) {
		violations = append(violations, "two identical rows detected")
	}
	if !constraint.UniqueColumns(g) {
		violations = append(violations, "two identical columns detected")
	}
	return violations
}

// FindViolations tags every cell taking part in a violation: all three
// positions of a triplet, and every filled cell of an unbalanced line.
func (v *Validator) FindViolations(g *domain.Grid) []domain.Violation {
	var violations []domain.Violation
	size := g.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size-2; col++ {
			val := g.Get(row, col)
			if val != domain.Empty && val == g.Get(row, col+1) && val == g.Get(row, col+2) {
				for d := 0; d < 3; d++ {
					violations = append(violations, domain.Violation{Row: row, Col: col + d, Message: "horizontal triplet"})
				}
			}
		}
	}
	for col := 0; col < size; col++ {
		for row := 0; row < size-2; row++ {
			val := g.Get(row, col)
			if val != domain.Empty && val == g.Get(row+1, col) && val == g.Get(row+2, col) {
				for d := 0; d < 3; d++ {
					violations = append(violations, domain.Violation{Row: row + d, Col: col, Message: "vertical triplet"})
				}
			}
		}
	}

	for row := 0; row < size; row++ {
		if !constraint.RowBalanced(g, row) {
			for col := 0; col < size; col++ {
				if g.Get(row, col) != domain.Empty {
					violations = append(violations, domain.Violation{Row: row, Col: col, Message: fmt.Sprintf("unbalanced row %d", row)})
				}
			}
		}
	}
	for col := 0; col < size; col++ {
		if !constraint.ColumnBalanced(g, col) {
			for row := 0; row < size; row++ {
				if g.Get(row, col) != domain.Empty {
					violations = append(violations, domain.Violation{Row: row, Col: col, Message: fmt.Sprintf("unbalanced column %d", col)})
				}
			}
		}
	}

	return violations
}

// SuggestValue returns the forced value at an empty (row, col). ok is
// false when the cell is filled, has no candidate, or is ambiguous.
func (v *Validator) SuggestValue(g *domain.Grid, row, col int) (domain.Cell, bool) {
	if g.Get(row, col) != domain.Empty {
		return domain.Empty, false
	}
	possible := constraint.PossibleValues(g, row, col)
	if len(possible) == 1 {
		return possible[0], true
	}
	return domain.Empty, false
}

// FindObviousMove returns the first empty cell whose domain is a
// singleton, together with its forced value.
func (v *Validator) FindObviousMove(g *domain.Grid) (domain.Move, bool) {
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !g.IsEmptyCell(row, col) {
				continue
			}
			if possible := constraint.PossibleValues(g, row, col); len(possible) == 1 {
				return domain.Move{Row: row, Col: col, Value: possible[0]}, true
			}
		}
	}
	return domain.Move{}, false
}

// Package solver provides six search strategies over Binairo grids:
// plain backtracking, forward checking, AC-3 and AC-4 preprocessing,
// a heuristic combination (MRV + degree + LCV + FC), and MAC.
// All strategies mutate one grid in place during recursion and undo on
// backtrack; each Solve call carries its own statistics.
package solver

import (
	"errors"
	"sort"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
)

// ErrNoSolution is returned when the search space is exhausted without
// finding a valid completion. It is a normal result, not a failure.
var ErrNoSolution = errors.New("puzzle has no solution")

// firstEmpty returns the lexicographically first empty cell.
func firstEmpty(g *domain.Grid) (int, int, bool) {
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.IsEmptyCell(row, col) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// mrvCell returns the empty cell with the smallest domain. A cell with an
// empty domain is returned immediately so the caller detects the dead end.
func mrvCell(g *domain.Grid) (int, int, bool) {
	size := g.Size()
	minDomain := 3
	bestRow, bestCol, found := 0, 0, false
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !g.IsEmptyCell(row, col) {
				continue
			}
			n := len(constraint.PossibleValues(g, row, col))
			if n == 0 {
				return row, col, true
			}
			if n < minDomain {
				minDomain = n
				bestRow, bestCol, found = row, col, true
			}
		}
	}
	return bestRow, bestCol, found
}

// mrvDegreeCell is mrvCell with ties broken by maximum degree.
func mrvDegreeCell(g *domain.Grid) (int, int, bool) {
	size := g.Size()
	minDomain := 3
	maxDegree := -1
	bestRow, bestCol, found := 0, 0, false
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !g.IsEmptyCell(row, col) {
				continue
			}
			n := len(constraint.PossibleValues(g, row, col))
			if n == 0 {
				return row, col, true
			}
			switch {
			case n < minDomain:
				minDomain = n
				maxDegree = constraint.Degree(g, row, col)
				bestRow, bestCol, found = row, col, true
			case n == minDomain:
				if d := constraint.Degree(g, row, col); d > maxDegree {
					maxDegree = d
					bestRow, bestCol = row, col
				}
			}
		}
	}
	return bestRow, bestCol, found
}

// orderLCV sorts the domain so the least constraining value comes first:
// the value that eliminates the fewest candidate choices among the empty
// cells sharing the row or column of (row, col).
func orderLCV(g *domain.Grid, row, col int, values []domain.Cell) []domain.Cell {
	eliminated := make(map[domain.Cell]int, len(values))
	for _, v := range values {
		g.Set(row, col, v)
		eliminated[v] = countEliminated(g, row, col)
		g.Set(row, col, domain.Empty)
	}
	ordered := make([]domain.Cell, len(values))
	copy(ordered, values)
	sort.SliceStable(ordered, func(i, j int) bool {
		return eliminated[ordered[i]] < eliminated[ordered[j]]
	})
	return ordered
}

// countEliminated sums, over the empty row and column neighbors of
// (row, col), how many of their two candidate values the current
// placement rules out.
func countEliminated(g *domain.Grid, row, col int) int {
	size := g.Size()
	eliminated := 0
	for c := 0; c < size; c++ {
		if c != col && g.IsEmptyCell(row, c) {
			eliminated += 2 - len(constraint.PossibleValues(g, row, c))
		}
	}
	for r := 0; r < size; r++ {
		if r != row && g.IsEmptyCell(r, col) {
			eliminated += 2 - len(constraint.PossibleValues(g, r, col))
		}
	}
	return eliminated
}

// forwardCheck reports whether every empty cell sharing the row or column
// of (row, col) still has at least one possible value.
func forwardCheck(g *domain.Grid, row, col int) bool {
	size := g.Size()
	for c := 0; c < size; c++ {
		if g.IsEmptyCell(row, c) && len(constraint.PossibleValues(g, row, c)) == 0 {
			return false
		}
	}
	for r := 0; r < size; r++ {
		if g.IsEmptyCell(r, col) && len(constraint.PossibleValues(g, r, col)) == 0 {
			return false
		}
	}
	return true
}

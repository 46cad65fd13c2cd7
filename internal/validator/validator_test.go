package validator

import (
	"context"
	"strings"
	"testing"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/generator"
)

func pattern(t *testing.T, size int, s string) *domain.Grid {
	t.Helper()
	g, err := generator.FromPattern(size, s)
	if err != nil {
		t.Fatalf("FromPattern: %v", err)
	}
	return g
}

func TestValidateSolvableGrid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	g := pattern(t, 4, "0.1."+
		".1.."+
		"...0"+
		"....")
	report, err := NewDefault().Validate(ctx, g)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !report.ConstraintsValid {
		t.Fatalf("constraints should hold, violations: %v", report.Violations)
	}
	if !report.Solvable {
		t.Fatal("grid should be solvable")
	}
	if report.Solution == nil {
		t.Fatal("report should carry the solution")
	}
	solved, err := report.Solution.Grid()
	if err != nil {
		t.Fatalf("solution board malformed: %v", err)
	}
	if !constraint.IsSolution(solved) {
		t.Fatal("reported solution is not valid")
	}
}

func TestValidateReportsViolations(t *testing.T) {
	ctx := context.Background()
	v := NewDefault()

	t.Run("triplet", func(t *testing.T) {
		g := pattern(t, 6, "000..."+
			"......"+
			"......"+
			"......"+
			"......"+
			"......")
		report, err := v.Validate(ctx, g)
		if err != nil {
			t.Fatal(err)
		}
		if report.ConstraintsValid {
			t.Fatal("triplet should invalidate the grid")
		}
		if !containsSubstring(report.Violations, "consecutive") {
			t.Fatalf("violations = %v", report.Violations)
		}
	})

	t.Run("balance", func(t *testing.T) {
		g := pattern(t, 4, "0000"+
			"...."+
			"...."+
			"....")
		report, err := v.Validate(ctx, g)
		if err != nil {
			t.Fatal(err)
		}
		if report.ConstraintsValid {
			t.Fatal("unbalanced row should invalidate the grid")
		}
		if !containsSubstring(report.Violations, "balance") {
			t.Fatalf("violations = %v", report.Violations)
		}
	})

	t.Run("duplicate rows", func(t *testing.T) {
		g := pattern(t, 4, "0101"+
			"0101"+
			"...."+
			"....")
		report, err := v.Validate(ctx, g)
		if err != nil {
			t.Fatal(err)
		}
		if report.ConstraintsValid {
			t.Fatal("duplicate rows should invalidate the grid")
		}
		if !containsSubstring(report.Violations, "identical rows") {
			t.Fatalf("violations = %v", report.Violations)
		}
	})
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestValidateUnsolvableGrid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Locally consistent, but balance forces row 2 into "0101", a copy
	// of row 0, and row 3 into "1010", a copy of row 1.
	g := pattern(t, 4, "0101"+
		"1010"+
		"010."+
		"....")
	report, err := NewDefault().Validate(ctx, g)
	if err != nil {
		t.Fatal(err)
	}
	if !report.ConstraintsValid {
		t.Fatalf("grid is locally consistent, violations: %v", report.Violations)
	}
	if report.Solvable {
		t.Fatal("every completion duplicates a row; grid must be unsolvable")
	}
	if report.Solution != nil {
		t.Fatal("no solution expected")
	}
}

func TestFindViolationsTagsTripletCells(t *testing.T) {
	g := pattern(t, 6, "000..."+
		"......"+
		"......"+
		"......"+
		"......"+
		"......")
	violations := NewDefault().FindViolations(g)
	if len(violations) != 3 {
		t.Fatalf("got %d violations, want the 3 triplet cells: %v", len(violations), violations)
	}
	for i, v := range violations {
		if v.Row != 0 || v.Col != i {
			t.Fatalf("violation %d at (%d,%d), want (0,%d)", i, v.Row, v.Col, i)
		}
	}
}

func TestFindViolationsTagsUnbalancedLine(t *testing.T) {
	g := pattern(t, 4, "0000"+
		"...."+
		"...."+
		"....")
	violations := NewDefault().FindViolations(g)
	balanced := 0
	for _, v := range violations {
		if strings.Contains(v.Message, "unbalanced row") {
			balanced++
		}
	}
	if balanced != 4 {
		t.Fatalf("want all 4 filled cells of the row tagged, got %d: %v", balanced, violations)
	}
}

func TestSuggestValueAndObviousMove(t *testing.T) {
	// (0,2) is forced to 1 by the 0-0 pair.
	g := pattern(t, 4, "00.."+
		"...."+
		"...."+
		"....")
	v := NewDefault()

	val, ok := v.SuggestValue(g, 0, 2)
	if !ok || val != domain.One {
		t.Fatalf("SuggestValue(0,2) = (%d,%v), want (1,true)", val, ok)
	}
	if _, ok := v.SuggestValue(g, 3, 3); ok {
		t.Fatal("SuggestValue(3,3) should be ambiguous")
	}
	if _, ok := v.SuggestValue(g, 0, 0); ok {
		t.Fatal("SuggestValue on a filled cell should fail")
	}

	move, ok := v.FindObviousMove(g)
	if !ok {
		t.Fatal("an obvious move exists")
	}
	if move.Row != 0 || move.Col != 2 || move.Value != domain.One {
		t.Fatalf("FindObviousMove = %+v, want (0,2)=1", move)
	}
}

func TestObviousMoveMatchesSingletonDomains(t *testing.T) {
	// The 4x4 stub: either an obvious move exists and points at a
	// singleton-domain cell, or every empty cell is ambiguous.
	g := pattern(t, 4, "0.1."+
		".1.."+
		"...0"+
		"....")
	v := NewDefault()

	move, found := v.FindObviousMove(g)
	if found {
		val, ok := v.SuggestValue(g, move.Row, move.Col)
		if !ok || val != move.Value {
			t.Fatalf("obvious move %+v disagrees with SuggestValue (%d,%v)", move, val, ok)
		}
		return
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !g.IsEmptyCell(r, c) {
				continue
			}
			if _, ok := v.SuggestValue(g, r, c); ok {
				t.Fatalf("no obvious move found, yet (%d,%d) is forced", r, c)
			}
		}
	}
}

func TestIsSolvable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	v := NewDefault()

	solvable := pattern(t, 4, "0.1."+
		".1.."+
		"...0"+
		"....")
	if !v.IsSolvable(ctx, solvable) {
		t.Fatal("stub should be solvable")
	}

	unsolvable := pattern(t, 4, "00.0"+
		"...."+
		"...."+
		"....")
	if v.IsSolvable(ctx, unsolvable) {
		t.Fatal("over-committed row should be unsolvable")
	}
}

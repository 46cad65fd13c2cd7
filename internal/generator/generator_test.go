package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/solver"
)

func newTestGenerator(seed int64, unique bool) *Generator {
	return New(solver.NewHeuristicSolver(), &Options{Seed: seed, RequireUnique: unique})
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := newTestGenerator(1, false)
	ctx := context.Background()

	cases := []struct {
		name       string
		size       int
		difficulty float64
	}{
		{"too small", 2, 0.5},
		{"odd", 5, 0.5},
		{"difficulty low", 6, 0.05},
		{"difficulty high", 6, 0.95},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := g.Generate(ctx, tc.size, tc.difficulty); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGenerateMatchesDifficulty(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cases := []struct {
		size       int
		difficulty float64
	}{
		{4, 0.3},
		{6, 0.5},
		{8, 0.7},
	}
	g := newTestGenerator(11, false)
	for _, tc := range cases {
		puzzle, st, err := g.Generate(ctx, tc.size, tc.difficulty)
		if err != nil {
			t.Fatalf("Generate(%d, %g): %v", tc.size, tc.difficulty, err)
		}
		if puzzle.Size() != tc.size {
			t.Fatalf("size = %d, want %d", puzzle.Size(), tc.size)
		}
		want := int(float64(tc.size*tc.size) * tc.difficulty)
		if got := puzzle.CountEmpty(); got != want {
			t.Fatalf("empty cells = %d, want %d", got, want)
		}
		if !constraint.Valid(puzzle) {
			t.Fatalf("generated puzzle violates the rules:\n%v", puzzle)
		}
		if !st.Solved {
			t.Fatal("stats should report success")
		}
	}
}

func TestGeneratedPuzzleIsSolvable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g := newTestGenerator(3, false)
	puzzle, _, err := g.Generate(ctx, 6, 0.5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out, _, err := solver.NewHeuristicSolver().Solve(ctx, domain.NewState(puzzle))
	if err != nil {
		t.Fatalf("generated puzzle is unsolvable: %v", err)
	}
	// Every filled cell of the puzzle belongs to the found solution.
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			if v := puzzle.Get(r, c); v != domain.Empty && out.Grid.Get(r, c) != v {
				t.Fatalf("cell (%d,%d) not part of the completion", r, c)
			}
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, _, err := newTestGenerator(99, false).Generate(ctx, 6, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := newTestGenerator(99, false).Generate(ctx, 6, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("same seed produced different puzzles:\n%v\nvs\n%v", a, b)
	}
}

func TestGeneratePresets(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g := newTestGenerator(5, false)
	easy, _, err := g.GenerateEasy(ctx, 6)
	if err != nil {
		t.Fatal(err)
	}
	cells36 := 36
	if got, want := easy.CountEmpty(), int(float64(cells36)*0.3); got != want {
		t.Fatalf("easy empty cells = %d, want %d", got, want)
	}
	hard, _, err := g.GenerateHard(ctx, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hard.CountEmpty(), int(float64(cells36)*0.7); got != want {
		t.Fatalf("hard empty cells = %d, want %d", got, want)
	}
}

func TestRequireUnique(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g := newTestGenerator(13, true)
	puzzle, _, err := g.Generate(ctx, 4, 0.3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := solver.CountSolutions(ctx, puzzle, 2); n != 1 {
		t.Fatalf("puzzle has %d solutions, want exactly 1", n)
	}
}

func TestFromPattern(t *testing.T) {
	g, err := FromPattern(4, "0.1."+
		".1.."+
		"...0"+
		"....")
	if err != nil {
		t.Fatalf("FromPattern: %v", err)
	}
	if g.Get(0, 0) != domain.Zero || g.Get(0, 2) != domain.One {
		t.Fatal("pattern values misplaced")
	}
	if g.Get(2, 3) != domain.Zero {
		t.Fatal("pattern value at (2,3) misplaced")
	}
	if got := g.CountEmpty(); got != 12 {
		t.Fatalf("CountEmpty = %d, want 12", got)
	}

	// Short patterns fill only the leading cells.
	short, err := FromPattern(4, "01")
	if err != nil {
		t.Fatal(err)
	}
	if short.Get(0, 0) != domain.Zero || short.Get(0, 1) != domain.One || short.CountEmpty() != 14 {
		t.Fatal("short pattern handled incorrectly")
	}

	if _, err := FromPattern(3, "..."); err == nil {
		t.Fatal("odd size should be rejected")
	}
}

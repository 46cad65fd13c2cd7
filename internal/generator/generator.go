// Package generator produces playable Binairo grids by seeding a few
// random values, solving to a full valid grid, and blanking a shuffled
// share of the cells.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"svw.info/binairo/internal/constraint"
	"svw.info/binairo/internal/domain"
	"svw.info/binairo/internal/ports"
	"svw.info/binairo/internal/solver"
)

const (
	// MinDifficulty and MaxDifficulty bound the accepted empty-cell ratio.
	MinDifficulty = 0.1
	MaxDifficulty = 0.9

	// uniqueAttempts caps re-carving when a unique solution is required.
	uniqueAttempts = 25
)

// ErrGenerationFailed is returned when no puzzle satisfying the options
// could be produced.
var ErrGenerationFailed = errors.New("failed to generate puzzle")

// Options configures generation.
type Options struct {
	// Seed makes runs reproducible. Zero means an unseeded source is
	// still deterministic per Options value; callers wanting variety
	// pass time-based seeds.
	Seed int64
	// RequireUnique re-carves, up to uniqueAttempts times, until the
	// puzzle has exactly one completion, and fails with
	// ErrGenerationFailed otherwise. Off by default; difficulty alone is
	// the contract.
	RequireUnique bool
}

func DefaultOptions() *Options { return &Options{} }

// Generator creates puzzles using a provided solver for completion.
type Generator struct {
	solver ports.Solver
	rng    *rand.Rand
	unique bool
}

// New wires a generator around the given solver.
func New(s ports.Solver, opts *Options) *Generator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Generator{
		solver: s,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		unique: opts.RequireUnique,
	}
}

// Generate produces a grid of the given size with roughly
// size²·difficulty empty cells. Rejects odd or too-small sizes and
// difficulties outside [0.1, 0.9].
func (g *Generator) Generate(ctx context.Context, size int, difficulty float64) (*domain.Grid, ports.Stats, error) {
	if size < 4 || size%2 != 0 {
		return nil, ports.Stats{}, fmt.Errorf("grid size must be even and >= 4, got %d", size)
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, ports.Stats{}, fmt.Errorf("difficulty must be in [%g, %g], got %g", MinDifficulty, MaxDifficulty, difficulty)
	}

	var total ports.Stats
	for {
		if err := ctx.Err(); err != nil {
			return nil, total, err
		}
		solution, stats, err := g.completeSolution(ctx, size)
		total.Nodes += stats.Nodes
		total.Backtracks += stats.Backtracks
		total.Duration += stats.Duration
		if err != nil {
			if errors.Is(err, solver.ErrNoSolution) {
				continue // unlucky seeds, start over
			}
			return nil, total, err
		}

		puzzle, err := g.carve(ctx, solution, difficulty)
		if err != nil {
			return nil, total, err
		}
		total.Solved = true
		return puzzle, total, nil
	}
}

// GenerateEasy produces a puzzle with 30% empty cells.
func (g *Generator) GenerateEasy(ctx context.Context, size int) (*domain.Grid, ports.Stats, error) {
	return g.Generate(ctx, size, domain.Easy.Ratio())
}

// GenerateMedium produces a puzzle with 50% empty cells.
func (g *Generator) GenerateMedium(ctx context.Context, size int) (*domain.Grid, ports.Stats, error) {
	return g.Generate(ctx, size, domain.Medium.Ratio())
}

// GenerateHard produces a puzzle with 70% empty cells.
func (g *Generator) GenerateHard(ctx context.Context, size int) (*domain.Grid, ports.Stats, error) {
	return g.Generate(ctx, size, domain.Hard.Ratio())
}

// completeSolution seeds size/2 random cells and solves to a full grid.
// Each seed is placed tentatively and rolled back if it breaks local
// consistency.
func (g *Generator) completeSolution(ctx context.Context, size int) (*domain.Grid, ports.Stats, error) {
	grid, err := domain.NewGrid(size)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	for i := 0; i < size/2; i++ {
		row := g.rng.Intn(size)
		col := g.rng.Intn(size)
		v := domain.Cell(g.rng.Intn(2))
		grid.Set(row, col, v)
		if !constraint.ConsistentAt(grid, row, col) {
			grid.Set(row, col, domain.Empty)
		}
	}

	solved, stats, err := g.solver.Solve(ctx, domain.NewState(grid))
	if err != nil {
		return nil, stats, err
	}
	return solved.Grid, stats, nil
}

// carve deep-copies the solution and blanks floor(size²·difficulty)
// shuffled positions. With RequireUnique set, it re-shuffles until the
// remaining givens admit a single completion, giving up with
// ErrGenerationFailed after uniqueAttempts tries.
func (g *Generator) carve(ctx context.Context, solution *domain.Grid, difficulty float64) (*domain.Grid, error) {
	size := solution.Size()
	removeCount := int(float64(size*size) * difficulty)

	positions := make([]int, size*size)
	for i := range positions {
		positions[i] = i
	}

	attempts := 1
	if g.unique {
		attempts = uniqueAttempts
	}
	for a := 0; a < attempts; a++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		puzzle := solution.Clone()
		g.rng.Shuffle(len(positions), func(i, j int) {
			positions[i], positions[j] = positions[j], positions[i]
		})
		for _, pos := range positions[:removeCount] {
			puzzle.Set(pos/size, pos%size, domain.Empty)
		}
		if !g.unique || solver.CountSolutions(ctx, puzzle, 2) == 1 {
			return puzzle, nil
		}
	}
	return nil, ErrGenerationFailed
}

// FromPattern builds a grid from a row-major character string: '0' and
// '1' place values, any other character leaves the cell empty. A pattern
// shorter than size² fills only the leading cells.
func FromPattern(size int, pattern string) (*domain.Grid, error) {
	grid, err := domain.NewGrid(size)
	if err != nil {
		return nil, err
	}
	i := 0
	for row := 0; row < size && i < len(pattern); row++ {
		for col := 0; col < size && i < len(pattern); col++ {
			switch pattern[i] {
			case '0':
				grid.Set(row, col, domain.Zero)
			case '1':
				grid.Set(row, col, domain.One)
			}
			i++
		}
	}
	return grid, nil
}

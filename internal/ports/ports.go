package ports

import (
	"context"
	"time"

	"svw.info/binairo/internal/domain"
)

// Stats captures performance characteristics of one solver or generator
// call. Counters reset at every call; a Stats value is never shared.
type Stats struct {
	Nodes      int
	Backtracks int
	Duration   time.Duration
	Solved     bool
}

// Solver completes a partially filled state or reports that none exists.
type Solver interface {
	Name() string
	Solve(ctx context.Context, st *domain.State) (*domain.State, Stats, error)
}

// Generator creates new puzzles at a target empty-cell ratio.
type Generator interface {
	Generate(ctx context.Context, size int, difficulty float64) (*domain.Grid, Stats, error)
}

// Validator performs constraint checks and solvability analysis.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (domain.Report, error)
}

// Hinter returns the next forced move, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

package domain

import (
	"fmt"
	"strings"
)

// State wraps a grid for search. Initial marks the fixed starting position;
// derived states produced during search clear it.
type State struct {
	Grid    *Grid
	Initial bool
}

// NewState copies the given grid into a fresh initial state.
func NewState(g *Grid) *State {
	return &State{Grid: g.Clone(), Initial: true}
}

// Clone returns an independent derived state.
func (s *State) Clone() *State {
	return &State{Grid: s.Grid.Clone(), Initial: false}
}

// Solved reports whether the grid is completely filled.
func (s *State) Solved() bool { return s.Grid.IsFull() }

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a cell together with the value to place there.
type Move struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Value Cell `json:"value"`
}

// Violation tags one cell with a broken-rule message for display.
type Violation struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Hint describes a forced move suggestion for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   Cell      `json:"value"`
}

// Report is the structured result of a full validation pass.
type Report struct {
	ConstraintsValid bool     `json:"constraintsValid"`
	Solvable         bool     `json:"solvable"`
	Solution         *Board   `json:"solution,omitempty"`
	Violations       []string `json:"violations,omitempty"`
}

// Board is the wire/persistence form of a grid: one token row per line
// entry, tokens "0", "1" or "." separated by spaces.
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// Board converts the grid to its wire form.
func (g *Grid) Board() Board {
	rows := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		toks := make([]string, g.size)
		for c := 0; c < g.size; c++ {
			toks[c] = cellToken(g.Get(r, c))
		}
		rows[r] = strings.Join(toks, " ")
	}
	return Board{Size: g.size, Rows: rows}
}

// Grid converts the wire form back to a grid, rejecting malformed input.
func (b Board) Grid() (*Grid, error) {
	g, err := NewGrid(b.Size)
	if err != nil {
		return nil, err
	}
	if len(b.Rows) != b.Size {
		return nil, fmt.Errorf("expected %d rows, got %d", b.Size, len(b.Rows))
	}
	for r, row := range b.Rows {
		toks := strings.Fields(row)
		if len(toks) != b.Size {
			return nil, fmt.Errorf("row %d: expected %d tokens, got %d", r, b.Size, len(toks))
		}
		for c, tok := range toks {
			v, err := ParseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			g.Set(r, c, v)
		}
	}
	return g, nil
}

// ParseCell maps a token to a cell value.
func ParseCell(tok string) (Cell, error) {
	switch tok {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	case ".":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("unknown token %q", tok)
	}
}

// Puzzle is a persisted Binairo puzzle with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

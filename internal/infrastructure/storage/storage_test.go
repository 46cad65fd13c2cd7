package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"svw.info/binairo/internal/domain"
)

func sampleGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, domain.Zero)
	g.Set(0, 2, domain.One)
	g.Set(1, 1, domain.One)
	g.Set(2, 3, domain.Zero)
	return g
}

func TestGridFileRoundTrip(t *testing.T) {
	g := sampleGrid(t)
	path := filepath.Join(t.TempDir(), "grid.txt")

	if err := SaveGrid(path, g); err != nil {
		t.Fatalf("SaveGrid: %v", err)
	}
	back, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if !g.Equal(back) {
		t.Fatalf("round trip mismatch:\n%v\nvs\n%v", g, back)
	}
}

func TestReadGridAllowsCommentsAndBlankLines(t *testing.T) {
	input := "# a saved puzzle\n" +
		"\n" +
		"# second comment\n" +
		"4\n" +
		"0 . 1 .\n" +
		". 1 . .\n" +
		". . . 0\n" +
		". . . .\n"
	g, err := ReadGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if !g.Equal(sampleGrid(t)) {
		t.Fatalf("parsed grid mismatch:\n%v", g)
	}
}

func TestReadGridRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"size not integer", "four\n"},
		{"size too small", "2\n. .\n. .\n"},
		{"odd size", "5\n. . . . .\n. . . . .\n. . . . .\n. . . . .\n. . . . .\n"},
		{"unknown token", "4\n0 . x .\n. . . .\n. . . .\n. . . .\n"},
		{"short row", "4\n0 .\n. . . .\n. . . .\n. . . .\n"},
		{"missing row", "4\n0 . 1 .\n. . . .\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadGrid(strings.NewReader(tc.input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPuzzleStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:         "p1",
		Seed:       42,
		Difficulty: domain.Hard,
		Board:      sampleGrid(t).Board(),
		CreatedAt:  12345,
		Name:       "sample",
	}
	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := fs.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != p.ID || got.Difficulty != p.Difficulty || got.Seed != p.Seed {
		t.Fatalf("loaded puzzle mismatch: %+v", got)
	}
	g, err := got.Board.Grid()
	if err != nil {
		t.Fatalf("stored board malformed: %v", err)
	}
	if !g.Equal(sampleGrid(t)) {
		t.Fatal("stored board differs")
	}

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "p1" || metas[0].Difficulty != domain.Hard {
		t.Fatalf("List = %+v", metas)
	}
}

func TestPuzzleStoreRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for missing ID")
	}
	if _, err := fs.Load(context.Background(), "absent"); err == nil {
		t.Fatal("expected error for unknown ID")
	}
}

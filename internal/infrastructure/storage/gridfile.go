package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"svw.info/binairo/internal/domain"
)

// Text grid format:
//
//	<size>
//	<row 0 tokens separated by spaces>
//	...
//
// Tokens are "." (empty), "0", or "1". Comment lines starting with '#'
// and blank lines are allowed before the size header.

// SaveGrid writes the grid to path in the text format.
func SaveGrid(path string, g *domain.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGrid(f, g)
}

// LoadGrid reads a grid from path.
func LoadGrid(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteGrid writes the size header followed by one token row per line.
func WriteGrid(w io.Writer, g *domain.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.Size())
	for _, row := range g.Board().Rows {
		fmt.Fprintln(bw, row)
	}
	return bw.Flush()
}

// ReadGrid parses the text format, rejecting bad sizes, unknown tokens,
// and wrong row or token counts with descriptive errors.
func ReadGrid(r io.Reader) (*domain.Grid, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// Skip comments and blank lines before the size header.
	var header string
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header = line
		break
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == "" {
		return nil, fmt.Errorf("missing size header")
	}

	size, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("line %d: size %q is not an integer", lineNo, header)
	}
	g, err := domain.NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	for row := 0; row < size; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("missing row %d: expected %d rows", row, size)
		}
		lineNo++
		toks := strings.Fields(sc.Text())
		if len(toks) != size {
			return nil, fmt.Errorf("line %d: expected %d tokens, got %d", lineNo, size, len(toks))
		}
		for col, tok := range toks {
			v, err := domain.ParseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.Set(row, col, v)
		}
	}
	return g, nil
}

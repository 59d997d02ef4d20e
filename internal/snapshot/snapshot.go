// Package snapshot reads and writes the plain-text grid format: one line
// per row, '#' for alive cells and '-' for dead ones, each line ended by a
// single newline. Files carry no dimensions header; the grid being loaded
// decides how much of the file is used.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"term-life/internal/life"
)

// Save writes g to path, replacing any existing file.
func Save(g *life.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(g, w); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Encode writes one glyph line per grid row to w.
func Encode(g *life.Grid, w io.Writer) error {
	line := make([]byte, g.Cols()+1)
	line[g.Cols()] = '\n'
	for r := 0; r < g.Rows(); r++ {
		for c, cell := range g.Row(r) {
			line[c] = cell.Glyph()
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Load replaces the contents of g with the file at path. Input that does
// not match the grid shape degrades instead of failing: missing rows and
// columns load as dead, extra rows and columns are ignored.
func Load(g *life.Grid, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := Decode(g, f); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Decode reads up to Rows lines from r into g. Any byte content is
// accepted; only a failure to read is an error.
func Decode(g *life.Grid, r io.Reader) error {
	g.Clear()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for row := 0; row < g.Rows() && sc.Scan(); row++ {
		line := sc.Bytes()
		for c := 0; c < g.Cols() && c < len(line); c++ {
			g.Set(row, c, life.FromGlyph(line[c]))
		}
	}
	return sc.Err()
}

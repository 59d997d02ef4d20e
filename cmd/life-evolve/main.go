// life-evolve advances a snapshot by a fixed number of generations
// without opening a terminal UI. Useful for preparing long-running
// patterns ahead of an interactive session.
package main

import (
	"flag"
	"log"

	"github.com/cheggaaa/pb/v3"

	"term-life/internal/life"
	"term-life/internal/snapshot"
)

func main() {
	in := flag.String("in", "", "snapshot to load")
	out := flag.String("out", "", "path for the evolved snapshot (defaults to -in)")
	generations := flag.Int("generations", 100, "generations to advance")
	rows := flag.Int("rows", 48, "grid rows")
	cols := flag.Int("cols", 160, "grid columns")
	flag.Parse()

	if *in == "" {
		log.Fatal("life-evolve: -in is required")
	}
	if *out == "" {
		*out = *in
	}

	grid, err := life.New(*rows, *cols)
	if err != nil {
		log.Fatalf("life-evolve: %v", err)
	}
	if err := snapshot.Load(grid, *in); err != nil {
		log.Fatalf("life-evolve: %v", err)
	}

	bar := pb.StartNew(*generations)
	for i := 0; i < *generations; i++ {
		grid.Step()
		bar.Increment()
	}
	bar.Finish()

	if err := snapshot.Save(grid, *out); err != nil {
		log.Fatalf("life-evolve: %v", err)
	}
}

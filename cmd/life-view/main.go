//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"term-life/internal/life"
	"term-life/internal/snapshot"
	"term-life/internal/view"
)

func main() {
	path := flag.String("snapshot", "", "snapshot file to play (random board when empty)")
	rows := flag.Int("rows", 128, "grid rows")
	cols := flag.Int("cols", 128, "grid columns")
	scale := flag.Int("scale", 4, "pixel scale multiplier")
	gps := flag.Int("gps", 10, "generations per second")
	seed := flag.Int64("seed", 42, "seed for the random board and the 'r' refill")
	fill := flag.Float64("fill", 0.1, "alive fraction for the random board")
	flag.Parse()

	grid, err := life.New(*rows, *cols)
	if err != nil {
		log.Fatalf("life-view: %v", err)
	}
	if *path != "" {
		if err := snapshot.Load(grid, *path); err != nil {
			log.Fatalf("life-view: %v", err)
		}
	} else {
		grid.Randomize(life.NewRNG(*seed), *fill)
	}

	player := view.NewPlayer(grid, *gps, *scale, *seed, *fill)

	ebiten.SetWindowTitle("term-life viewer")
	ebiten.SetWindowSize((*cols)*(*scale), (*rows)*(*scale))

	if err := ebiten.RunGame(player); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

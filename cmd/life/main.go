package main

import (
	"flag"
	"io"
	"log"
	"os"

	"term-life/internal/app"
	"term-life/internal/life"
	"term-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		// Unrecognised arguments behave like starting with none.
		cfg = app.NewConfig()
	}

	screen, err := term.New()
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	// The bottom screen row is reserved for the instruction line.
	rows, cols := screen.Size()
	grid, err := life.New(rows-1, cols)
	if err != nil {
		screen.Fini()
		log.Fatalf("life: terminal %dx%d is too small", cols, rows)
	}

	quit := make(chan struct{})
	driver := app.NewDriver(grid, screen, screen.Events(quit), cfg)
	driver.Run()

	close(quit)
	screen.Fini()
}

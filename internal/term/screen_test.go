package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return Wrap(sim), sim
}

func visibleRow(t *testing.T, sim tcell.SimulationScreen, row int) string {
	t.Helper()
	cells, w, _ := sim.GetContents()
	out := make([]rune, w)
	for x := 0; x < w; x++ {
		out[x] = ' '
		if runes := cells[row*w+x].Runes; len(runes) > 0 {
			out[x] = runes[0]
		}
	}
	return string(out)
}

func TestPutStringAndClip(t *testing.T) {
	s, sim := newSim(t, 5, 3)
	s.PutString(1, 0, "#-#-#")
	s.PutString(2, 3, "abcdef") // runs off the right edge
	s.PutString(9, 0, "off screen")
	s.Flush()

	if got := visibleRow(t, sim, 1); got != "#-#-#" {
		t.Fatalf("row 1 = %q", got)
	}
	if got := visibleRow(t, sim, 2); got != "   ab" {
		t.Fatalf("row 2 = %q", got)
	}
}

func TestClearToEnd(t *testing.T) {
	s, sim := newSim(t, 6, 2)
	s.PutString(0, 0, "xxxxxx")
	s.ClearToEnd(0, 2)
	s.Flush()

	if got := visibleRow(t, sim, 0); got != "xx    " {
		t.Fatalf("row 0 = %q", got)
	}
}

func TestSizeIsRowsCols(t *testing.T) {
	s, _ := newSim(t, 7, 4)
	rows, cols := s.Size()
	if rows != 4 || cols != 7 {
		t.Fatalf("Size() = (%d, %d), want (4, 7)", rows, cols)
	}
}

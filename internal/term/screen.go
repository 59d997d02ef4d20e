// Package term wraps tcell with the small display surface the driver
// needs: character cells addressed by row and column, a clear-to-end for
// the status row, and a channel of input events.
package term

import "github.com/gdamore/tcell/v2"

// Screen is a character-cell display. Create one with New, or Wrap a
// tcell simulation screen in tests.
type Screen struct {
	tc    tcell.Screen
	style tcell.Style
}

// New puts the process terminal into full-screen mode with mouse
// reporting on and the cursor hidden. Failure here means no usable
// terminal is attached.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.EnableMouse()
	tc.HideCursor()
	tc.Clear()
	return &Screen{tc: tc, style: tcell.StyleDefault}, nil
}

// Wrap adopts an already-initialised tcell screen.
func Wrap(tc tcell.Screen) *Screen {
	return &Screen{tc: tc, style: tcell.StyleDefault}
}

// Size returns the terminal dimensions as rows, cols.
func (s *Screen) Size() (rows, cols int) {
	w, h := s.tc.Size()
	return h, w
}

// PutString draws text starting at (row, col), clipped to the screen.
func (s *Screen) PutString(row, col int, text string) {
	w, h := s.tc.Size()
	if row < 0 || row >= h {
		return
	}
	for i, ch := range text {
		x := col + i
		if x < 0 || x >= w {
			continue
		}
		s.tc.SetContent(x, row, ch, nil, s.style)
	}
}

// ClearToEnd blanks row from fromCol to the right edge.
func (s *Screen) ClearToEnd(row, fromCol int) {
	w, h := s.tc.Size()
	if row < 0 || row >= h {
		return
	}
	for x := fromCol; x < w; x++ {
		s.tc.SetContent(x, row, ' ', nil, s.style)
	}
}

// ShowCursor places the text cursor, used while the save prompt is open.
func (s *Screen) ShowCursor(row, col int) { s.tc.ShowCursor(col, row) }

// HideCursor removes the text cursor.
func (s *Screen) HideCursor() { s.tc.HideCursor() }

// Flush pushes pending cell updates to the terminal.
func (s *Screen) Flush() { s.tc.Show() }

// Events starts the input pump and returns its channel. The pump goroutine
// exits when quit is closed or the screen is finalised.
func (s *Screen) Events(quit <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, 16)
	go s.tc.ChannelEvents(ch, quit)
	return ch
}

// Fini restores the terminal to its normal state.
func (s *Screen) Fini() { s.tc.Fini() }

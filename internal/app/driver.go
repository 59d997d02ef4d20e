// Package app drives the two-phase terminal session: a mouse-driven
// editor for the starting configuration, then a free-running simulation
// with pause and quit. The driver owns the grid, the screen and the input
// stream; apart from the screen's event pump it is single-threaded.
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/life"
	"term-life/internal/snapshot"
	"term-life/internal/term"
)

// State identifies the driver's position in the session state machine.
type State int

const (
	StateEditing State = iota
	StateRunning
	StatePaused
	StateTerminated
)

const (
	statusEdit    = "setup: click to toggle cell (#). press 's' to start simulation, 'w' to save setup."
	statusPrompt  = "enter filename to save: "
	statusRunning = "simulation running. press 'p' to pause/resume, 'q' to quit."
	statusPaused  = "simulation paused. press 'p' to resume, 'q' to quit."
)

// maxFilename caps the save prompt input.
const maxFilename = 255

// Driver binds a grid to a screen and an input event stream. The bottom
// screen row is reserved for the instruction line; the grid occupies the
// rows above it.
type Driver struct {
	grid   *life.Grid
	screen *term.Screen
	events <-chan tcell.Event
	cfg    *Config

	state   State
	buttons tcell.ButtonMask
	line    []byte // scratch for rendering rows
}

// NewDriver wires the pieces together. The driver reads events
// exclusively; nothing else may consume from the channel.
func NewDriver(grid *life.Grid, screen *term.Screen, events <-chan tcell.Event, cfg *Config) *Driver {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Driver{
		grid:   grid,
		screen: screen,
		events: events,
		cfg:    cfg,
		state:  StateEditing,
		line:   make([]byte, grid.Cols()),
	}
}

// State reports the current machine state.
func (d *Driver) State() State { return d.state }

// Run executes the session: optional import, the edit phase, then the
// simulation until 'q'. It returns once the machine reaches Terminated.
func (d *Driver) Run() {
	if d.cfg.Import != "" {
		if err := snapshot.Load(d.grid, d.cfg.Import); err != nil {
			d.grid.Clear()
			d.flash("error: could not import file: " + d.cfg.Import)
		}
	}
	d.redraw(statusEdit)
	d.edit()
	if d.state != StateTerminated {
		d.simulate()
	}
	d.state = StateTerminated
}

// edit blocks on input until 's' hands over to the simulation. Clicks
// toggle cells, 'w' opens the save prompt, everything else is ignored.
func (d *Driver) edit() {
	for d.state == StateEditing {
		ev, ok := <-d.events
		if !ok {
			d.state = StateTerminated
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				d.state = StateTerminated
				return
			}
			if ev.Key() != tcell.KeyRune {
				break
			}
			switch ev.Rune() {
			case 's':
				d.state = StateRunning
			case 'w':
				d.savePrompt()
				d.redraw(statusEdit)
			}
		case *tcell.EventMouse:
			if row, col, ok := d.click(ev); ok {
				d.grid.Toggle(row, col)
				d.redraw(statusEdit)
			}
		}
	}
}

// click reports a fresh primary-button press inside the grid area.
func (d *Driver) click(ev *tcell.EventMouse) (row, col int, ok bool) {
	prev := d.buttons
	d.buttons = ev.Buttons()
	if d.buttons&tcell.ButtonPrimary == 0 || prev&tcell.ButtonPrimary != 0 {
		return 0, 0, false
	}
	x, y := ev.Position()
	if y < 0 || y >= d.grid.Rows() || x < 0 || x >= d.grid.Cols() {
		return 0, 0, false
	}
	return y, x, true
}

// simulate advances one generation per tick until 'q'. Each tick consumes
// at most one queued input event, so a burst of held keys drains
// gradually instead of all at once.
func (d *Driver) simulate() {
	ticker := time.NewTicker(d.cfg.Tick)
	defer ticker.Stop()
	for d.state == StateRunning || d.state == StatePaused {
		<-ticker.C
		select {
		case ev, ok := <-d.events:
			if !ok {
				d.state = StateTerminated
				return
			}
			d.handleSimEvent(ev)
		default:
		}
		switch d.state {
		case StateRunning:
			d.grid.Step()
			d.redraw(statusRunning)
		case StatePaused:
			d.redraw(statusPaused)
		}
	}
}

// handleSimEvent applies the run-phase transitions. Mouse events only
// refresh the button tracking; clicks have no effect once the simulation
// has started.
func (d *Driver) handleSimEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		d.buttons = ev.Buttons()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			d.state = StateTerminated
			return
		}
		if ev.Key() != tcell.KeyRune {
			return
		}
		switch ev.Rune() {
		case 'q':
			d.state = StateTerminated
		case 'p':
			if d.state == StateRunning {
				d.state = StatePaused
			} else {
				d.state = StateRunning
			}
		}
	}
}

// savePrompt reads a filename on the status row and writes the grid to
// it. The outcome message stays up for the configured hold time; input
// typed meanwhile stays queued.
func (d *Driver) savePrompt() {
	row := d.grid.Rows()
	d.screen.ClearToEnd(row, 0)
	d.screen.PutString(row, 0, statusPrompt)
	d.screen.ShowCursor(row, len(statusPrompt))
	d.screen.Flush()

	name := d.readLine(row, len(statusPrompt))
	d.screen.HideCursor()
	if d.state == StateTerminated {
		return
	}
	if err := snapshot.Save(d.grid, name); err != nil {
		d.flash("error: unable to save file: " + name)
		return
	}
	d.flash("grid saved to " + name)
}

// readLine echoes keystrokes after the prompt until Enter, editing with
// backspace and capping the result at maxFilename bytes.
func (d *Driver) readLine(row, col int) string {
	var buf []rune
	for {
		ev, ok := <-d.events
		if !ok {
			d.state = StateTerminated
			return ""
		}
		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		switch key.Key() {
		case tcell.KeyCtrlC:
			d.state = StateTerminated
			return ""
		case tcell.KeyEnter:
			return string(buf)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				d.screen.ClearToEnd(row, col+len(buf))
				d.screen.ShowCursor(row, col+len(buf))
				d.screen.Flush()
			}
		case tcell.KeyRune:
			if len(buf) >= maxFilename {
				break
			}
			buf = append(buf, key.Rune())
			d.screen.PutString(row, col, string(buf))
			d.screen.ShowCursor(row, col+len(buf))
			d.screen.Flush()
		}
	}
}

// flash shows a transient status message and holds it on screen.
func (d *Driver) flash(msg string) {
	row := d.grid.Rows()
	d.screen.PutString(row, 0, msg)
	d.screen.ClearToEnd(row, len(msg))
	d.screen.Flush()
	time.Sleep(d.cfg.MessageHold)
}

// redraw paints every grid row and the instruction line. Painting the
// same state twice yields the same screen.
func (d *Driver) redraw(status string) {
	for r := 0; r < d.grid.Rows(); r++ {
		for c, cell := range d.grid.Row(r) {
			d.line[c] = cell.Glyph()
		}
		d.screen.PutString(r, 0, string(d.line))
	}
	row := d.grid.Rows()
	d.screen.PutString(row, 0, status)
	d.screen.ClearToEnd(row, len(status))
	d.screen.Flush()
}

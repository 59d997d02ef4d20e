//go:build ebiten

package view

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"term-life/internal/life"
	"term-life/internal/render"
)

// Player animates a grid in an ebiten window: space pauses, 'n' advances
// a single generation, 'r' refills the board at random, 'q' or escape
// quits.
type Player struct {
	grid  *life.Grid
	clock *StepClock

	img *ebiten.Image
	buf []byte

	onColor  color.Color
	offColor color.Color

	scale    int
	fill     float64
	seed     int64
	paused   bool
	stepOnce bool
}

// NewPlayer constructs a Player for the provided grid.
func NewPlayer(grid *life.Grid, gps, scale int, seed int64, fill float64) *Player {
	return &Player{
		grid:     grid,
		clock:    NewStepClock(gps),
		img:      ebiten.NewImage(grid.Cols(), grid.Rows()),
		buf:      make([]byte, 4*grid.Cols()*grid.Rows()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		fill:     fill,
		seed:     seed,
	}
}

// Update handles keys and advances generations at the clock's rate.
func (p *Player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.seed++
		p.grid.Randomize(life.NewRNG(p.seed), p.fill)
	}

	steps := p.clock.Tick(time.Now())
	if p.paused {
		steps = 0
	}
	if p.stepOnce {
		steps, p.stepOnce = 1, false
	}
	for i := 0; i < steps; i++ {
		p.grid.Step()
	}
	return nil
}

// Draw renders the current generation.
func (p *Player) Draw(screen *ebiten.Image) {
	render.CellsRGBA(p.buf, p.grid.Cells(), p.onColor, p.offColor)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	screen.DrawImage(p.img, op)
}

// Layout returns the logical screen size.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.grid.Cols() * p.scale, p.grid.Rows() * p.scale
}

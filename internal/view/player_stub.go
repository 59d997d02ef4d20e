//go:build !ebiten

package view

import (
	"fmt"

	"term-life/internal/life"
)

// Player is a placeholder that satisfies the API expected by the GUI build.
type Player struct{}

// NewPlayer panics to indicate that the ebiten build tag is required for
// the snapshot player.
func NewPlayer(*life.Grid, int, int, int64, float64) *Player {
	panic("view.NewPlayer requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (p *Player) Update() error {
	return fmt.Errorf("view.Player.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (p *Player) Draw(any) {}

// Layout returns zeros in the headless build.
func (p *Player) Layout(int, int) (int, int) { return 0, 0 }

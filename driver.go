package tween

import "github.com/hajimehoshi/ebiten/v2"

// Tick advances the manager by one ebiten tick (1/TPS seconds). Call it from
// an ebiten.Game's Update.
func (m *Manager) Tick() {
	m.Update(TickDelta())
}

// TickDelta returns the duration of one ebiten tick in seconds.
func TickDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}

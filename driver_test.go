package tween

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTickDeltaFollowsTPS(t *testing.T) {
	want := 1.0 / float64(ebiten.TPS())
	if got := TickDelta(); got != want {
		t.Errorf("TickDelta = %v, want %v", got, want)
	}
}

func TestTickAdvancesOneFrame(t *testing.T) {
	m := NewManager()
	in := m.Create(NewNode("n"), 10, 0).ToOpacity(0).Begin()
	m.Tick() // merge
	m.Tick()
	if !nearly(in.Elapsed(), TickDelta()) {
		t.Errorf("elapsed = %v, want one tick (%v)", in.Elapsed(), TickDelta())
	}
}

package ecs

import (
	"testing"

	"github.com/phanxgames/tween"
	"github.com/phanxgames/tween/easing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tween.Event
	TweenEventType.Subscribe(world, func(w donburi.World, e tween.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(tween.Event{Type: tween.EventStarted, InstanceID: 7})
	sink.EmitEvent(tween.Event{Type: tween.EventCompleted, InstanceID: 7, Elapsed: 1})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	TweenEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != tween.EventStarted || received[0].InstanceID != 7 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != tween.EventCompleted || received[1].Elapsed != 1 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ManagerLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	m := tween.NewManager()
	m.SetEventSink(NewDonburiSink(world))

	counts := map[tween.EventType]int{}
	TweenEventType.Subscribe(world, func(w donburi.World, e tween.Event) {
		counts[e.Type]++
	})

	a := NewEntityTarget(world, world.Create(Visual))
	b := NewEntityTarget(world, world.Create(Visual))
	m.Create(a, 1, 0).ToOpacity(0).Begin()
	m.Create(b, 1, 0).ToOpacity(0).Begin()
	m.Update(0)
	m.Update(0.5)
	m.Clear(b)
	m.Update(1)
	events.ProcessAllEvents(world)

	if counts[tween.EventStarted] != 2 || counts[tween.EventCancelled] != 1 || counts[tween.EventCompleted] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestEntityTargetDefaults(t *testing.T) {
	world := donburi.NewWorld()
	target := NewEntityTarget(world, world.Create(Visual))
	if !target.Alive() {
		t.Fatal("new entity should be alive")
	}
	if target.RenderTransform() != tween.IdentityTransform {
		t.Errorf("transform = %+v", target.RenderTransform())
	}
	if target.Opacity() != 1 || target.Color() != tween.ColorWhite || target.Visibility() != tween.Visible {
		t.Errorf("opacity=%v color=%v visibility=%v", target.Opacity(), target.Color(), target.Visibility())
	}
}

func TestEntityTargetTweened(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Visual)
	target := NewEntityTarget(world, e)

	m := tween.NewManager()
	m.Create(target, 1, 0).
		ToTranslation(40, 20).
		ToOpacity(0).
		ToVisibility(tween.Hidden).
		Easing(easing.Linear).
		Begin()
	m.Update(0)
	m.Update(0.5)

	v := Visual.Get(world.Entry(e))
	if v.Transform.Translation != (tween.Vec2{X: 20, Y: 10}) {
		t.Errorf("translation = %v", v.Transform.Translation)
	}
	if v.Opacity != 0.5 {
		t.Errorf("opacity = %v", v.Opacity)
	}
	m.Update(0.5)
	if v.Visibility != tween.Hidden {
		t.Errorf("visibility = %v", v.Visibility)
	}
}

func TestEntityTargetRemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Visual)
	target := NewEntityTarget(world, e)

	m := tween.NewManager()
	completed := false
	m.Create(target, 1, 0).ToOpacity(0).OnComplete(func(tween.Target) { completed = true }).Begin()
	m.Update(0)

	world.Remove(e)
	if target.Alive() {
		t.Fatal("removed entity should not be alive")
	}

	// A new entity may reuse the slot; the old handle must stay invalid.
	world.Create(Visual)
	if target.Alive() {
		t.Error("stale handle became valid again")
	}

	m.Update(0.1)
	if !completed || m.IsTweening(target) {
		t.Errorf("completed=%v tweening=%v, want tween reaped", completed, m.IsTweening(target))
	}
}

func TestEntityTargetWithoutVisual(t *testing.T) {
	world := donburi.NewWorld()
	other := donburi.NewComponentType[struct{ N int }]()
	target := NewEntityTarget(world, world.Create(other))
	if target.Alive() {
		t.Error("entity without Visual should not be a live target")
	}
	var zero EntityTarget
	if zero.Alive() {
		t.Error("zero EntityTarget should not be alive")
	}
}

func TestEntityTargetIdentity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Visual)
	m := tween.NewManager()
	m.Create(NewEntityTarget(world, e), 1, 0).Begin()
	m.Update(0)
	if !m.IsTweening(NewEntityTarget(world, e)) {
		t.Error("separately built handles to one entity should compare equal")
	}
	if got := m.Clear(NewEntityTarget(world, e)); got != 1 {
		t.Errorf("Clear = %d, want 1", got)
	}
}

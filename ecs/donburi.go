package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for tween lifecycle events.
// Subscribe to this in your ECS systems to react to tweens starting,
// completing or being cancelled.
var TweenEventType = events.NewEventType[tween.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to TweenEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tween.Event) {
	TweenEventType.Publish(s.world, event)
}

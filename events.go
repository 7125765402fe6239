package tween

// EventSink receives lifecycle events from a Manager. Set one with
// Manager.SetEventSink to forward tween activity into another system, such
// as the donburi adapter in the ecs module.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a tween lifecycle transition.
type EventType uint8

const (
	EventStarted   EventType = iota // delay consumed, first running tick
	EventCompleted                  // reached its duration or lost its target
	EventCancelled                  // removed by Manager.Clear
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Event carries one lifecycle transition.
type Event struct {
	Type       EventType
	InstanceID uint64
	Target     Target
	Elapsed    float64
	// TargetLost is true for completions caused by the target going away
	// rather than by reaching the end of the tween.
	TargetLost bool
}

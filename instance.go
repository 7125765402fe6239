package tween

import (
	"fmt"
	"reflect"

	"github.com/phanxgames/tween/easing"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// State is the lifecycle stage of an Instance.
type State uint8

const (
	StatePending  State = iota // created, Begin not called yet
	StateDelaying              // begun, waiting out its start delay
	StateRunning               // interpolating
	StateComplete              // terminal; no further writes
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDelaying:
		return "delaying"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Instance animates one set of properties on one target. Configure it with
// the builder methods (ToOpacity, FromScale, Easing, OnComplete, ...), then
// call Begin. An Instance from Manager.Create is ticked by the manager; one
// from NewInstance is ticked by calling Update directly.
type Instance struct {
	id     uint64
	target Target

	elapsed   float64
	duration  float64
	delay     float64 // as configured
	delayLeft float64

	easing    easing.Kind
	overshoot float64
	period    float64
	easeFunc  ease.TweenFunc

	translation tweenProp[Vec2]
	scale       tweenProp[Vec2]
	rotation    tweenProp[float64]
	opacity     tweenProp[float64]
	color       tweenProp[Color]
	layoutPos   tweenProp[Vec2]
	padding     tweenProp[Margin]
	maxHeight   tweenProp[float64]
	visibility  instantProp[Visibility]

	begun         bool
	started       bool // start callback fired
	complete      bool
	completeFired bool
	targetLost    bool
	detached      bool // no longer part of a manager's active set

	onStart    func(Target)
	onComplete func(Target)

	log  logrus.FieldLogger
	sink EventSink
}

// NewInstance creates an unmanaged tween on target lasting duration seconds
// after an initial delay. Panics if target is nil or its type is not
// comparable, since targets are matched with ==.
func NewInstance(target Target, duration, delay float64) *Instance {
	if target == nil {
		panic("tween: cannot tween a nil target")
	}
	if !reflect.TypeOf(target).Comparable() {
		panic(fmt.Sprintf("tween: target type %T is not comparable", target))
	}
	in := &Instance{
		target:    target,
		duration:  duration,
		delay:     delay,
		delayLeft: delay,
		easing:    easing.InOutQuad,
		overshoot: easing.DefaultOvershoot,
		period:    easing.DefaultPeriod,
		log:       std,
	}
	in.translation.lerp = lerpVec2
	in.scale.lerp = lerpVec2
	in.rotation.lerp = lerp
	in.opacity.lerp = lerp
	in.color.lerp = lerpColor
	in.layoutPos.lerp = lerpVec2
	in.padding.lerp = lerpMargin
	in.maxHeight.lerp = lerp
	return in
}

// Begin captures the target's current values for every endpoint that was
// not configured and applies the start state immediately, even when a delay
// is pending. If the target is already gone the instance stays inert and
// completes on its next Update. Begin has no effect on a completed instance.
func (in *Instance) Begin() *Instance {
	if in.complete {
		return in
	}
	in.begun = true
	in.started = false
	in.completeFired = false

	if !in.target.Alive() {
		in.log.WithFields(logFields(in)).Warn("begin on a target that is no longer alive")
		return in
	}

	in.capture()
	in.apply(0)
	return in
}

// capture feeds the target's live values into every property it supports.
func (in *Instance) capture() {
	t := in.target
	if tt, ok := t.(TransformTarget); ok {
		tf := tt.RenderTransform()
		in.translation.onBegin(tf.Translation)
		in.scale.onBegin(tf.Scale)
		in.rotation.onBegin(tf.Angle)
	}
	if ot, ok := t.(OpacityTarget); ok {
		in.opacity.onBegin(ot.Opacity())
	}
	if ct, ok := t.(ColorTarget); ok {
		in.color.onBegin(ct.Color())
	}
	if vt, ok := t.(VisibilityTarget); ok {
		in.visibility.onBegin(vt.Visibility())
	}
	if lt, ok := t.(LayoutTarget); ok {
		in.layoutPos.onBegin(lt.LayoutPosition())
	}
	if pt, ok := t.(PaddingTarget); ok {
		in.padding.onBegin(pt.Padding())
	}
	if st, ok := t.(SizeTarget); ok {
		in.maxHeight.onBegin(st.MaxHeight())
	}
}

// Update advances the tween by dt seconds. It does nothing before Begin or
// after completion. While a delay remains, dt only counts the delay down;
// time left over on the tick that finishes the delay is dropped.
func (in *Instance) Update(dt float64) {
	if !in.begun || in.complete {
		return
	}
	if !in.target.Alive() {
		in.complete = true
		in.targetLost = true
		return
	}
	if in.delayLeft > 0 {
		in.delayLeft -= dt
		return
	}

	if !in.started {
		in.started = true
		if in.onStart != nil {
			in.onStart(in.target)
		}
		in.emit(EventStarted)
		// The callback may have disposed the target or cancelled us.
		if in.detached {
			return
		}
		if !in.target.Alive() {
			in.complete = true
			in.targetLost = true
			return
		}
	}

	in.elapsed += dt
	if in.elapsed >= in.duration {
		in.elapsed = in.duration
		in.complete = true
	}
	in.apply(in.progress())
}

// progress maps elapsed time through the easing curve.
func (in *Instance) progress() float64 {
	if in.duration <= 0 {
		return 1
	}
	if in.easeFunc != nil {
		return float64(in.easeFunc(float32(in.elapsed), 0, 1, float32(in.duration)))
	}
	return easing.EaseWith(in.easing, in.elapsed, in.duration, in.overshoot, in.period)
}

// apply moves every configured property to progress p and writes the values
// that changed. Translation, scale and rotation share one read-modify-write
// of the render transform.
func (in *Instance) apply(p float64) {
	t := in.target

	var moved, scaled, rotated bool
	if in.translation.isSet() {
		moved = in.translation.update(p)
	}
	if in.scale.isSet() {
		scaled = in.scale.update(p)
	}
	if in.rotation.isSet() {
		rotated = in.rotation.update(p)
	}
	if moved || scaled || rotated {
		if tt, ok := t.(TransformTarget); ok {
			tf := tt.RenderTransform()
			if moved {
				tf.Translation = in.translation.current
			}
			if scaled {
				tf.Scale = in.scale.current
			}
			if rotated {
				tf.Angle = in.rotation.current
			}
			tt.SetRenderTransform(tf)
		}
	}

	if in.opacity.isSet() && in.opacity.update(p) {
		if ot, ok := t.(OpacityTarget); ok {
			ot.SetOpacity(in.opacity.current)
		}
	}
	if in.color.isSet() && in.color.update(p) {
		if ct, ok := t.(ColorTarget); ok {
			ct.SetColor(in.color.current)
		}
	}
	if in.visibility.isSet() && in.visibility.update(p) {
		if vt, ok := t.(VisibilityTarget); ok {
			vt.SetVisibility(in.visibility.current)
		}
	}
	if in.layoutPos.isSet() && in.layoutPos.update(p) {
		if lt, ok := t.(LayoutTarget); ok {
			lt.SetLayoutPosition(in.layoutPos.current)
		}
	}
	if in.padding.isSet() && in.padding.update(p) {
		if pt, ok := t.(PaddingTarget); ok {
			pt.SetPadding(in.padding.current)
		}
	}
	if in.maxHeight.isSet() && in.maxHeight.update(p) {
		if st, ok := t.(SizeTarget); ok {
			st.SetMaxHeight(in.maxHeight.current)
		}
	}
}

// completeCleanup runs the completion callback once. The manager calls it
// after the instance has left the active set, never from inside the tick.
func (in *Instance) completeCleanup() {
	if in.completeFired {
		return
	}
	in.completeFired = true
	if in.onComplete != nil {
		in.onComplete(in.target)
	}
	in.emit(EventCompleted)
}

func (in *Instance) emit(typ EventType) {
	if in.sink == nil {
		return
	}
	in.sink.EmitEvent(Event{
		Type:       typ,
		InstanceID: in.id,
		Target:     in.target,
		Elapsed:    in.elapsed,
		TargetLost: in.targetLost,
	})
}

// Finish runs the completion callback of an unmanaged instance once it is
// complete. Returns false if the instance is still running. Managed
// instances are finished by their manager.
func (in *Instance) Finish() bool {
	if !in.complete {
		return false
	}
	in.completeCleanup()
	return true
}

// IsComplete reports whether the tween reached its terminal state.
func (in *Instance) IsComplete() bool {
	return in.complete
}

// State reports the lifecycle stage.
func (in *Instance) State() State {
	switch {
	case in.complete:
		return StateComplete
	case !in.begun:
		return StatePending
	case !in.started && in.delay > 0:
		return StateDelaying
	}
	return StateRunning
}

// ID returns the identifier assigned by the owning manager (0 when unmanaged).
func (in *Instance) ID() uint64 {
	return in.id
}

// Target returns the animated target.
func (in *Instance) Target() Target {
	return in.target
}

// Elapsed returns the running time, excluding the delay.
func (in *Instance) Elapsed() float64 {
	return in.elapsed
}

// Duration returns the configured duration.
func (in *Instance) Duration() float64 {
	return in.duration
}

// Delay returns the configured start delay.
func (in *Instance) Delay() float64 {
	return in.delay
}

// TargetLost reports whether the instance completed because its target went
// away.
func (in *Instance) TargetLost() bool {
	return in.targetLost
}

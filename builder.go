package tween

import (
	"github.com/phanxgames/tween/easing"
	"github.com/tanema/gween/ease"
)

// Builder steps. Each configures one endpoint and returns the same instance,
// so a tween reads as a chain:
//
//	m.Create(node, 0.3, 0).FromOpacity(0).ToOpacity(1).Easing(easing.OutCubic).Begin()
//
// Configuring an instance after Begin is allowed but endpoints captured at
// Begin are not recaptured.

// FromTranslation sets the start translation.
func (in *Instance) FromTranslation(x, y float64) *Instance {
	in.translation.setStart(Vec2{x, y})
	return in
}

// ToTranslation sets the target translation.
func (in *Instance) ToTranslation(x, y float64) *Instance {
	in.translation.setTarget(Vec2{x, y})
	return in
}

// FromScale sets the start scale.
func (in *Instance) FromScale(x, y float64) *Instance {
	in.scale.setStart(Vec2{x, y})
	return in
}

// ToScale sets the target scale.
func (in *Instance) ToScale(x, y float64) *Instance {
	in.scale.setTarget(Vec2{x, y})
	return in
}

// FromRotation sets the start angle in radians.
func (in *Instance) FromRotation(angle float64) *Instance {
	in.rotation.setStart(angle)
	return in
}

// ToRotation sets the target angle in radians.
func (in *Instance) ToRotation(angle float64) *Instance {
	in.rotation.setTarget(angle)
	return in
}

// FromOpacity sets the start opacity.
func (in *Instance) FromOpacity(v float64) *Instance {
	in.opacity.setStart(v)
	return in
}

// ToOpacity sets the target opacity.
func (in *Instance) ToOpacity(v float64) *Instance {
	in.opacity.setTarget(v)
	return in
}

// FromColor sets the start tint.
func (in *Instance) FromColor(c Color) *Instance {
	in.color.setStart(c)
	return in
}

// ToColor sets the target tint.
func (in *Instance) ToColor(c Color) *Instance {
	in.color.setTarget(c)
	return in
}

// FromVisibility sets the visibility held until the tween completes.
func (in *Instance) FromVisibility(v Visibility) *Instance {
	in.visibility.setStart(v)
	return in
}

// ToVisibility sets the visibility applied on completion.
func (in *Instance) ToVisibility(v Visibility) *Instance {
	in.visibility.setTarget(v)
	return in
}

// FromLayoutPosition sets the start layout position.
func (in *Instance) FromLayoutPosition(x, y float64) *Instance {
	in.layoutPos.setStart(Vec2{x, y})
	return in
}

// ToLayoutPosition sets the target layout position.
func (in *Instance) ToLayoutPosition(x, y float64) *Instance {
	in.layoutPos.setTarget(Vec2{x, y})
	return in
}

// FromPadding sets the start padding.
func (in *Instance) FromPadding(m Margin) *Instance {
	in.padding.setStart(m)
	return in
}

// ToPadding sets the target padding.
func (in *Instance) ToPadding(m Margin) *Instance {
	in.padding.setTarget(m)
	return in
}

// FromMaxHeight sets the start maximum height.
func (in *Instance) FromMaxHeight(h float64) *Instance {
	in.maxHeight.setStart(h)
	return in
}

// ToMaxHeight sets the target maximum height.
func (in *Instance) ToMaxHeight(h float64) *Instance {
	in.maxHeight.setTarget(h)
	return in
}

// ToReset targets the neutral appearance: opacity 1, unit scale, zero
// translation, white tint and no rotation.
func (in *Instance) ToReset() *Instance {
	in.opacity.setTarget(1)
	in.scale.setTarget(Vec2{1, 1})
	in.translation.setTarget(Vec2{})
	in.color.setTarget(ColorWhite)
	in.rotation.setTarget(0)
	return in
}

// Easing selects the curve. The optional params are the shape parameter
// (overshoot for Back, amplitude for Elastic) followed by the Elastic
// period; omitted params fall back to their defaults, even if an earlier
// call set them. Clears any EasingFunc.
func (in *Instance) Easing(kind easing.Kind, params ...float64) *Instance {
	in.easing = kind
	in.easeFunc = nil
	in.overshoot = easing.DefaultOvershoot
	in.period = easing.DefaultPeriod
	if len(params) > 0 {
		in.overshoot = params[0]
	}
	if len(params) > 1 {
		in.period = params[1]
	}
	return in
}

// EasingFunc drives progress with a gween easing function instead of a
// built-in kind. fn is called with begin 0 and change 1.
func (in *Instance) EasingFunc(fn ease.TweenFunc) *Instance {
	in.easeFunc = fn
	return in
}

// OnStart registers a callback fired once, on the first tick after the delay.
func (in *Instance) OnStart(fn func(Target)) *Instance {
	in.onStart = fn
	return in
}

// OnComplete registers a callback fired once when the tween finishes or its
// target goes away. It never fires for a cancelled tween.
func (in *Instance) OnComplete(fn func(Target)) *Instance {
	in.onComplete = fn
	return in
}

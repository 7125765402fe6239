package tween

// Appearance is a snapshot of every animatable attribute of a target. Use
// CaptureAppearance to remember how something looks and ToAppearance to
// tween it back later.
type Appearance struct {
	Translation    Vec2       `yaml:"translation"`
	Rotation       float64    `yaml:"rotation"`
	Scale          Vec2       `yaml:"scale"`
	Opacity        float64    `yaml:"opacity"`
	Color          Color      `yaml:"color"`
	LayoutPosition Vec2       `yaml:"layoutPosition"`
	Visibility     Visibility `yaml:"-"`
	Padding        Margin     `yaml:"padding"`
}

// DefaultAppearance is the neutral appearance ToReset targets, fully visible.
var DefaultAppearance = Appearance{
	Scale:   Vec2{1, 1},
	Opacity: 1,
	Color:   ColorWhite,
}

// CaptureAppearance reads the live values of t. Attributes t does not expose
// keep their DefaultAppearance values.
func CaptureAppearance(t Target) Appearance {
	a := DefaultAppearance
	if t == nil || !t.Alive() {
		return a
	}
	if tt, ok := t.(TransformTarget); ok {
		tf := tt.RenderTransform()
		a.Translation = tf.Translation
		a.Scale = tf.Scale
		a.Rotation = tf.Angle
	}
	if ot, ok := t.(OpacityTarget); ok {
		a.Opacity = ot.Opacity()
	}
	if ct, ok := t.(ColorTarget); ok {
		a.Color = ct.Color()
	}
	if vt, ok := t.(VisibilityTarget); ok {
		a.Visibility = vt.Visibility()
	}
	if lt, ok := t.(LayoutTarget); ok {
		a.LayoutPosition = lt.LayoutPosition()
	}
	if pt, ok := t.(PaddingTarget); ok {
		a.Padding = pt.Padding()
	}
	return a
}

// FromAppearance sets every start value from a.
func (in *Instance) FromAppearance(a Appearance) *Instance {
	in.translation.setStart(a.Translation)
	in.rotation.setStart(a.Rotation)
	in.scale.setStart(a.Scale)
	in.opacity.setStart(a.Opacity)
	in.color.setStart(a.Color)
	in.layoutPos.setStart(a.LayoutPosition)
	in.visibility.setStart(a.Visibility)
	in.padding.setStart(a.Padding)
	return in
}

// ToAppearance sets every target value from a.
func (in *Instance) ToAppearance(a Appearance) *Instance {
	in.translation.setTarget(a.Translation)
	in.rotation.setTarget(a.Rotation)
	in.scale.setTarget(a.Scale)
	in.opacity.setTarget(a.Opacity)
	in.color.setTarget(a.Color)
	in.layoutPos.setTarget(a.LayoutPosition)
	in.visibility.setTarget(a.Visibility)
	in.padding.setTarget(a.Padding)
	return in
}

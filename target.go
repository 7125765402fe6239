package tween

// Target is an externally owned object that tweens write into. The tween
// system never keeps a target alive: it only holds the handle and asks
// Alive before every write. Once Alive reports false, every instance bound
// to the target completes without touching it again.
//
// Targets are matched by identity (==), so implementations must be
// comparable: a pointer, or a small struct handle such as an entity ID.
type Target interface {
	Alive() bool
}

// A target opts into each animatable attribute by implementing the matching
// capability below. Attributes a target does not implement are never read
// and never written.

// TransformTarget exposes the render transform (translation, scale,
// rotation). Tweens read it once and write it once per tick.
type TransformTarget interface {
	RenderTransform() Transform
	SetRenderTransform(Transform)
}

// OpacityTarget exposes render opacity. Values are not clamped.
type OpacityTarget interface {
	Opacity() float64
	SetOpacity(float64)
}

// ColorTarget exposes a tint color.
type ColorTarget interface {
	Color() Color
	SetColor(Color)
}

// VisibilityTarget exposes the step-valued display state.
type VisibilityTarget interface {
	Visibility() Visibility
	SetVisibility(Visibility)
}

// LayoutTarget exposes the position a layout slot assigns to the target.
type LayoutTarget interface {
	LayoutPosition() Vec2
	SetLayoutPosition(Vec2)
}

// PaddingTarget exposes the padding a layout slot applies around the target.
type PaddingTarget interface {
	Padding() Margin
	SetPadding(Margin)
}

// SizeTarget exposes a secondary size constraint, the maximum height the
// target may grow to.
type SizeTarget interface {
	MaxHeight() float64
	SetMaxHeight(float64)
}

package tween

// prop holds the endpoints and current value of one animatable attribute.
// A start the caller did not configure is filled from the target's live
// value when the instance begins.
type prop[T comparable] struct {
	hasStart  bool
	hasTarget bool
	start     T
	target    T
	current   T
	applied   bool // false until the first update
}

// isSet reports whether the attribute takes part in the tween.
func (p *prop[T]) isSet() bool {
	return p.hasStart || p.hasTarget
}

func (p *prop[T]) setStart(v T) {
	p.hasStart = true
	p.start = v
	p.current = v
}

func (p *prop[T]) setTarget(v T) {
	p.hasTarget = true
	p.target = v
}

// onBegin adopts live as the start when none was configured. An unset
// target stays at the zero value of T.
func (p *prop[T]) onBegin(live T) {
	if !p.hasStart {
		p.start = live
		p.current = live
	}
}

// store records next as the current value and reports whether it needs to
// be written: always on the first update, afterwards only on change.
func (p *prop[T]) store(next T) bool {
	changed := !p.applied || next != p.current
	p.current = next
	p.applied = true
	return changed
}

// tweenProp interpolates continuously between its endpoints.
type tweenProp[T comparable] struct {
	prop[T]
	lerp func(a, b T, t float64) T
}

func (p *tweenProp[T]) update(progress float64) bool {
	return p.store(p.lerp(p.start, p.target, progress))
}

// instantProp holds its start value until progress reaches 1, then snaps to
// the target. It never produces an intermediate value.
type instantProp[T comparable] struct {
	prop[T]
}

func (p *instantProp[T]) update(progress float64) bool {
	if progress >= 1 && p.hasTarget {
		return p.store(p.target)
	}
	return p.store(p.start)
}

func lerpVec2(a, b Vec2, t float64) Vec2       { return a.Lerp(b, t) }
func lerpColor(a, b Color, t float64) Color    { return a.Lerp(b, t) }
func lerpMargin(a, b Margin, t float64) Margin { return a.Lerp(b, t) }

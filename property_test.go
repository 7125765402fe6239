package tween

import "testing"

func TestPropIsSet(t *testing.T) {
	var p tweenProp[float64]
	if p.isSet() {
		t.Error("empty prop should not be set")
	}
	p.setTarget(1)
	if !p.isSet() {
		t.Error("prop with a target should be set")
	}

	var q tweenProp[float64]
	q.setStart(1)
	if !q.isSet() {
		t.Error("prop with a start should be set")
	}
}

func TestOnBeginFillsOnlyUnsetStart(t *testing.T) {
	p := tweenProp[float64]{lerp: lerp}
	p.onBegin(5)
	if p.start != 5 || p.current != 5 {
		t.Errorf("start/current = %v/%v, want 5/5", p.start, p.current)
	}
	if p.hasStart {
		t.Error("onBegin should not mark the start as configured")
	}

	q := tweenProp[float64]{lerp: lerp}
	q.setStart(2)
	q.onBegin(5)
	if q.start != 2 || q.current != 2 {
		t.Errorf("configured start overwritten: %v/%v", q.start, q.current)
	}
}

func TestTweenPropUpdateReportsChange(t *testing.T) {
	p := tweenProp[Vec2]{lerp: lerpVec2}
	p.setStart(Vec2{0, 0})
	p.setTarget(Vec2{10, 20})

	if !p.update(0) {
		t.Error("first update should always report a change")
	}
	if p.update(0) {
		t.Error("repeated value should not report a change")
	}
	if !p.update(0.5) || p.current != (Vec2{5, 10}) {
		t.Errorf("current = %v, want {5 10}", p.current)
	}
}

func TestTweenPropNoClamp(t *testing.T) {
	p := tweenProp[float64]{lerp: lerp}
	p.setStart(0)
	p.setTarget(10)
	p.update(1.2)
	if !nearly(p.current, 12) {
		t.Errorf("current = %v, want 12 (overshoot passes through)", p.current)
	}
}

func TestInstantPropSnaps(t *testing.T) {
	var p instantProp[Visibility]
	p.setStart(Hidden)
	p.setTarget(Visible)
	for _, progress := range []float64{0, 0.5, 0.999} {
		p.update(progress)
		if p.current != Hidden {
			t.Errorf("progress %v: %v, want Hidden", progress, p.current)
		}
	}
	if !p.update(1) || p.current != Visible {
		t.Errorf("progress 1: %v, want Visible", p.current)
	}
}

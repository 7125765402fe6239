package tween

import "testing"

func TestCaptureAppearance(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(3, 4)
	n.SetScale(2, 2)
	n.SetRotation(0.5)
	n.SetOpacity(0.25)
	n.SetColor(Color{1, 0, 0, 1})
	n.SetVisibility(Hidden)
	n.SetLayoutPosition(Vec2{7, 8})
	n.SetPadding(Uniform(2))

	a := CaptureAppearance(n)
	want := Appearance{
		Translation:    Vec2{3, 4},
		Rotation:       0.5,
		Scale:          Vec2{2, 2},
		Opacity:        0.25,
		Color:          Color{1, 0, 0, 1},
		LayoutPosition: Vec2{7, 8},
		Visibility:     Hidden,
		Padding:        Uniform(2),
	}
	if a != want {
		t.Errorf("CaptureAppearance = %+v, want %+v", a, want)
	}
}

func TestCaptureAppearanceDefaults(t *testing.T) {
	if a := CaptureAppearance(bareTarget{}); a != DefaultAppearance {
		t.Errorf("bare target = %+v, want defaults", a)
	}
	n := NewNode("gone")
	n.SetOpacity(0)
	n.Dispose()
	if a := CaptureAppearance(n); a != DefaultAppearance {
		t.Errorf("disposed target = %+v, want defaults", a)
	}
}

func TestTweenBackToCapturedAppearance(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(10, 10)
	saved := CaptureAppearance(n)

	n.SetPosition(90, -40)
	n.SetOpacity(0)
	n.SetVisibility(Collapsed)

	in := NewInstance(n, 1, 0).ToAppearance(saved).Begin()
	in.Update(0.5)
	if n.Visibility() != Collapsed {
		t.Error("visibility should hold until completion")
	}
	in.Update(0.5)

	if got := CaptureAppearance(n); got != saved {
		t.Errorf("after tween = %+v, want %+v", got, saved)
	}
}

func TestFromAppearanceAppliedOnBegin(t *testing.T) {
	n := NewNode("n")
	from := DefaultAppearance
	from.Opacity = 0
	from.Translation = Vec2{0, 30}

	NewInstance(n, 1, 0).FromAppearance(from).ToAppearance(DefaultAppearance).Begin()
	if n.Opacity() != 0 || n.RenderTransform().Translation != (Vec2{0, 30}) {
		t.Errorf("Begin did not apply start appearance: opacity=%v translation=%v",
			n.Opacity(), n.RenderTransform().Translation)
	}
}

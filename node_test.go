package tween

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.RenderTransform() != IdentityTransform {
		t.Errorf("transform = %+v, want identity", n.RenderTransform())
	}
	if n.Opacity() != 1 {
		t.Errorf("Opacity = %v, want 1", n.Opacity())
	}
	if n.Color() != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color())
	}
	if n.Visibility() != Visible {
		t.Errorf("Visibility = %v, want Visible", n.Visibility())
	}
	if n.matrix != identityMatrix {
		t.Errorf("matrix = %v, want identity", n.matrix)
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNodeImplementsEveryCapability(t *testing.T) {
	var target Target = NewNode("n")
	if _, ok := target.(TransformTarget); !ok {
		t.Error("missing TransformTarget")
	}
	if _, ok := target.(OpacityTarget); !ok {
		t.Error("missing OpacityTarget")
	}
	if _, ok := target.(ColorTarget); !ok {
		t.Error("missing ColorTarget")
	}
	if _, ok := target.(VisibilityTarget); !ok {
		t.Error("missing VisibilityTarget")
	}
	if _, ok := target.(LayoutTarget); !ok {
		t.Error("missing LayoutTarget")
	}
	if _, ok := target.(PaddingTarget); !ok {
		t.Error("missing PaddingTarget")
	}
	if _, ok := target.(SizeTarget); !ok {
		t.Error("missing SizeTarget")
	}
}

func TestNodeDispose(t *testing.T) {
	n := NewNode("n")
	if !n.Alive() {
		t.Fatal("new node should be alive")
	}
	n.Dispose()
	if n.Alive() || !n.IsDisposed() {
		t.Error("disposed node should not be alive")
	}
	if n.ID != 0 {
		t.Errorf("ID = %d after Dispose, want 0", n.ID)
	}
	n.Dispose() // idempotent
}

func TestNilNodeNotAlive(t *testing.T) {
	var n *Node
	if n.Alive() {
		t.Error("nil node should not be alive")
	}
	if n.String() != "Node(nil)" {
		t.Errorf("String = %q", n.String())
	}
}

func TestNodeString(t *testing.T) {
	n := NewNode("hero")
	want := "Node(\"hero\" #"
	if s := n.String(); len(s) <= len(want) || s[:len(want)] != want {
		t.Errorf("String = %q, want prefix %q", s, want)
	}
}

func TestDrawOptionsHiddenOrDisposed(t *testing.T) {
	n := NewNode("n")
	n.SetVisibility(Collapsed)
	if _, ok := n.DrawOptions(); ok {
		t.Error("collapsed node should not be drawn")
	}
	n.SetVisibility(HitTestInvisible)
	if _, ok := n.DrawOptions(); !ok {
		t.Error("hit-test-invisible node should still be drawn")
	}
	n.Dispose()
	if _, ok := n.DrawOptions(); ok {
		t.Error("disposed node should not be drawn")
	}
}

func TestDrawOptions(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(10, 20)
	n.SetLayoutPosition(Vec2{100, 0})
	n.SetColor(ColorFromRGBA(colornames.White))
	n.SetOpacity(0.5)

	op, ok := n.DrawOptions()
	if !ok {
		t.Fatal("expected node to be drawn")
	}
	x, y := op.GeoM.Apply(0, 0)
	assertNear(t, "x", x, 110)
	assertNear(t, "y", y, 20)
	assertNear(t, "alpha", float64(op.ColorScale.A()), 0.5)
	assertNear(t, "red", float64(op.ColorScale.R()), 0.5)
}

package tween

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic; nodes are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a ready-made tween target implementing every capability. Hosts
// that already have their own sprite or widget type implement the
// capability interfaces directly instead; Node is handy for prototypes,
// tests and small ebiten games, where DrawOptions turns its state into
// draw parameters.
type Node struct {
	ID   uint32
	Name string

	transform Transform
	pivot     Vec2
	opacity   float64
	color     Color
	visible   Visibility
	layoutPos Vec2
	padding   Margin
	maxHeight float64

	matrix         [6]float64
	transformDirty bool
	disposed       bool
}

// NewNode creates a node with the identity transform, full opacity and a
// white tint.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		transform:      IdentityTransform,
		opacity:        1,
		color:          ColorWhite,
		visible:        Visible,
		matrix:         identityMatrix,
	}
}

func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("Node(%q #%d)", n.Name, n.ID)
}

// Alive reports whether the node exists and has not been disposed.
func (n *Node) Alive() bool {
	return n != nil && !n.disposed
}

// Dispose marks the node as gone. Tweens bound to it complete on their next
// update without writing to it again.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
}

// IsDisposed returns true if the node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// RenderTransform returns the node's transform.
func (n *Node) RenderTransform() Transform { return n.transform }

// SetRenderTransform replaces the node's transform and marks it dirty.
func (n *Node) SetRenderTransform(t Transform) {
	n.transform = t
	n.transformDirty = true
}

// Pivot returns the point the node scales and rotates around.
func (n *Node) Pivot() Vec2 { return n.pivot }

func (n *Node) Opacity() float64     { return n.opacity }
func (n *Node) SetOpacity(a float64) { n.opacity = a }

func (n *Node) Color() Color     { return n.color }
func (n *Node) SetColor(c Color) { n.color = c }

func (n *Node) Visibility() Visibility     { return n.visible }
func (n *Node) SetVisibility(v Visibility) { n.visible = v }

func (n *Node) LayoutPosition() Vec2     { return n.layoutPos }
func (n *Node) SetLayoutPosition(p Vec2) { n.layoutPos = p }

func (n *Node) Padding() Margin     { return n.padding }
func (n *Node) SetPadding(m Margin) { n.padding = m }

func (n *Node) MaxHeight() float64     { return n.maxHeight }
func (n *Node) SetMaxHeight(h float64) { n.maxHeight = h }

// DrawOptions builds draw parameters for an image drawn at the node. The
// layout position is applied after the node's own transform, and opacity
// multiplies the tint alpha. ok is false when the node should not be drawn.
func (n *Node) DrawOptions() (op *ebiten.DrawImageOptions, ok bool) {
	if !n.Alive() || !n.visible.IsVisible() {
		return nil, false
	}
	op = &ebiten.DrawImageOptions{}
	op.GeoM = geoM(n.Matrix())
	op.GeoM.Translate(n.layoutPos.X, n.layoutPos.Y)
	op.ColorScale = n.color.ColorScale()
	op.ColorScale.ScaleAlpha(float32(n.opacity))
	return op, true
}

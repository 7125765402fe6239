package tween

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Matrix computes the affine matrix of t around pivot. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-pivot) -> Scale -> Shear -> Rotate -> Translate(Translation)
func (t Transform) Matrix(pivot Vec2) [6]float64 {
	sx := t.Scale.X
	sy := t.Scale.Y

	sin, cos := math.Sincos(t.Angle)

	var tanShearX, tanShearY float64
	if t.Shear.X != 0 {
		tanShearX = math.Tan(t.Shear.X)
	}
	if t.Shear.Y != 0 {
		tanShearY = math.Tan(t.Shear.Y)
	}

	// After Scale * Translate(-pivot), then Shear:
	a := sx
	b := tanShearY * sx
	c := tanShearX * sy
	d := sy

	preTx := -pivot.X*sx - tanShearX*pivot.Y*sy
	preTy := -tanShearY*pivot.X*sx - pivot.Y*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + t.Translation.X, rty + t.Translation.Y}
}

// GeoM returns Matrix(pivot) as an ebiten geometry matrix.
func (t Transform) GeoM(pivot Vec2) ebiten.GeoM {
	return geoM(t.Matrix(pivot))
}

func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ColorScale converts c into ebiten's premultiplied color scale.
func (c Color) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	return cs
}

// SetPosition sets the translation and marks the node dirty.
func (n *Node) SetPosition(x, y float64) {
	n.transform.Translation = Vec2{x, y}
	n.transformDirty = true
}

// SetScale sets the scale and marks the node dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.transform.Scale = Vec2{sx, sy}
	n.transformDirty = true
}

// SetRotation sets the rotation in radians and marks the node dirty.
func (n *Node) SetRotation(r float64) {
	n.transform.Angle = r
	n.transformDirty = true
}

// SetShear sets the shear angles in radians and marks the node dirty.
func (n *Node) SetShear(sx, sy float64) {
	n.transform.Shear = Vec2{sx, sy}
	n.transformDirty = true
}

// SetPivot sets the pivot point and marks the node dirty.
func (n *Node) SetPivot(px, py float64) {
	n.pivot = Vec2{px, py}
	n.transformDirty = true
}

// MarkDirty flags the cached matrix for recomputation. Setters call it
// automatically.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Matrix returns the node's local matrix, recomputing it if dirty.
func (n *Node) Matrix() [6]float64 {
	if n.transformDirty {
		n.matrix = n.transform.Matrix(n.pivot)
		n.transformDirty = false
	}
	return n.matrix
}

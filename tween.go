package tween

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Vec2 is a 2D vector used for translations, scales and layout positions.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Lerp interpolates from v towards to by t. t is not clamped.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{lerp(v.X, to.X, t), lerp(v.Y, to.Y, t)}
}

// Color is an RGBA color with components nominally in [0, 1]. Not
// premultiplied and never clamped, so eased overshoot passes through.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the neutral tint.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates every channel from c towards to by t.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: lerp(c.R, to.R, t),
		G: lerp(c.G, to.G, t),
		B: lerp(c.B, to.B, t),
		A: lerp(c.A, to.A, t),
	}
}

// ColorFromRGBA converts any image/color value (for example a
// golang.org/x/image/colornames entry) into a straight-alpha Color.
func ColorFromRGBA(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
		A: float64(nc.A) / 255,
	}
}

// NRGBA converts to an 8-bit straight-alpha color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Margin is a four-sided padding or margin.
type Margin struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Uniform returns a Margin with the same value on every side.
func Uniform(v float64) Margin {
	return Margin{v, v, v, v}
}

// Lerp interpolates every side from m towards to by t.
func (m Margin) Lerp(to Margin, t float64) Margin {
	return Margin{
		Left:   lerp(m.Left, to.Left, t),
		Top:    lerp(m.Top, to.Top, t),
		Right:  lerp(m.Right, to.Right, t),
		Bottom: lerp(m.Bottom, to.Bottom, t),
	}
}

// Transform is the render transform a target is drawn with. Angle is in
// radians.
type Transform struct {
	Translation Vec2
	Scale       Vec2
	Shear       Vec2
	Angle       float64
}

// IdentityTransform leaves a target where layout placed it.
var IdentityTransform = Transform{Scale: Vec2{1, 1}}

// Visibility is a step-valued display state. It never interpolates: a tween
// switches it when progress reaches 1.
type Visibility uint8

const (
	Visible              Visibility = iota // drawn and hit-testable
	Collapsed                              // not drawn, takes no layout space
	Hidden                                 // not drawn, keeps its layout space
	HitTestInvisible                       // drawn, ignores input with its children
	SelfHitTestInvisible                   // drawn, ignores input but children do not
)

// ErrUnknownVisibility is returned when a visibility name is not recognised.
var ErrUnknownVisibility = errors.New("tween: unknown visibility")

var visibilityNames = [...]string{
	Visible:              "Visible",
	Collapsed:            "Collapsed",
	Hidden:               "Hidden",
	HitTestInvisible:     "HitTestInvisible",
	SelfHitTestInvisible: "SelfHitTestInvisible",
}

func (v Visibility) String() string {
	if int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

// IsVisible reports whether a target in this state is drawn.
func (v Visibility) IsVisible() bool {
	return v == Visible || v == HitTestInvisible || v == SelfHitTestInvisible
}

// ParseVisibility looks up a visibility state by name, ignoring case.
func ParseVisibility(name string) (Visibility, error) {
	for i, n := range visibilityNames {
		if strings.EqualFold(n, name) {
			return Visibility(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVisibility, name)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Package easing maps elapsed time onto shaping curves.
//
// Every curve takes the elapsed time t and the total duration d and returns
// normalized progress: 0 at t = 0 and 1 at t = d for all kinds, with the
// Elastic, Back and Bounce families overshooting that range in between.
// Values of t outside [0, d] follow each formula's natural extrapolation;
// nothing is clamped except by Smoothstep itself.
//
//	p := easing.Ease(easing.InOutCubic, 0.25, 1.0)
//
// The Elastic and Back families take two shape parameters through
// [EaseWith]: an overshoot/amplitude and an oscillation period.
package easing

import "github.com/tanema/gween/ease"

// Shape parameter defaults used by [Ease].
const (
	DefaultOvershoot = 0.1
	DefaultPeriod    = 1.0
)

// Kind selects an easing curve.
type Kind uint8

const (
	Linear Kind = iota
	Smoothstep
	InSine
	OutSine
	InOutSine
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce

	numKinds
)

// Ease returns the progress of curve k at time t of duration d using the
// default shape parameters.
func Ease(k Kind, t, d float64) float64 {
	return EaseWith(k, t, d, DefaultOvershoot, DefaultPeriod)
}

// EaseWith is Ease with explicit shape parameters. overshoot is the
// amplitude for Elastic curves and the overshoot magnitude for Back curves;
// period only affects Elastic curves. Other kinds ignore both.
// Unknown kinds return 0.
func EaseWith(k Kind, t, d, overshoot, period float64) float64 {
	switch k {
	case Linear:
		return linear(t, d)
	case Smoothstep:
		return smoothstep(t, 0, d)
	case InSine:
		return inSine(t, d)
	case OutSine:
		return outSine(t, d)
	case InOutSine:
		return inOutSine(t, d)
	case InQuad:
		return inQuad(t, d)
	case OutQuad:
		return outQuad(t, d)
	case InOutQuad:
		return inOutQuad(t, d)
	case InCubic:
		return inCubic(t, d)
	case OutCubic:
		return outCubic(t, d)
	case InOutCubic:
		return inOutCubic(t, d)
	case InQuart:
		return inQuart(t, d)
	case OutQuart:
		return outQuart(t, d)
	case InOutQuart:
		return inOutQuart(t, d)
	case InQuint:
		return inQuint(t, d)
	case OutQuint:
		return outQuint(t, d)
	case InOutQuint:
		return inOutQuint(t, d)
	case InExpo:
		return inExpo(t, d)
	case OutExpo:
		return outExpo(t, d)
	case InOutExpo:
		return inOutExpo(t, d)
	case InCirc:
		return inCirc(t, d)
	case OutCirc:
		return outCirc(t, d)
	case InOutCirc:
		return inOutCirc(t, d)
	case InElastic:
		return inElastic(t, d, overshoot, period)
	case OutElastic:
		return outElastic(t, d, overshoot, period)
	case InOutElastic:
		return inOutElastic(t, d, overshoot, period)
	case InBack:
		return inBack(t, d, overshoot)
	case OutBack:
		return outBack(t, d, overshoot)
	case InOutBack:
		return inOutBack(t, d, overshoot)
	case InBounce:
		return viaGween(ease.InBounce, t, d)
	case OutBounce:
		return viaGween(ease.OutBounce, t, d)
	case InOutBounce:
		return viaGween(ease.InOutBounce, t, d)
	}
	return 0
}

// Func adapts curve k into a gween easing function, so it can drive a
// gween.Tween directly:
//
//	tw := gween.New(0, 100, 1.5, easing.Func(easing.OutBack))
func Func(k Kind) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(Ease(k, float64(t), float64(d)))
	}
}

// viaGween evaluates a gween curve as normalized progress.
func viaGween(fn ease.TweenFunc, t, d float64) float64 {
	return float64(fn(float32(t), 0, 1, float32(d)))
}

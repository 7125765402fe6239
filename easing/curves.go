package easing

import "math"

const twoPi = 2 * math.Pi

func linear(t, d float64) float64 {
	return t / d
}

func smoothstep(x, edge0, edge1 float64) float64 {
	x = (x - edge0) / (edge1 - edge0)
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return x * x * (3 - 2*x)
}

// --- Sine ---

func inSine(t, d float64) float64 {
	return -math.Cos(t/d*(math.Pi/2)) + 1
}

func outSine(t, d float64) float64 {
	return math.Sin(t / d * (math.Pi / 2))
}

func inOutSine(t, d float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t/d) - 1)
}

// --- Polynomial families ---

func inQuad(t, d float64) float64 {
	t /= d
	return t * t
}

func outQuad(t, d float64) float64 {
	t /= d
	return -t * (t - 2)
}

func inOutQuad(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func inCubic(t, d float64) float64 {
	t /= d
	return t * t * t
}

func outCubic(t, d float64) float64 {
	t = t/d - 1
	return t*t*t + 1
}

func inOutCubic(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func inQuart(t, d float64) float64 {
	t /= d
	return t * t * t * t
}

func outQuart(t, d float64) float64 {
	t = t/d - 1
	return -(t*t*t*t - 1)
}

func inOutQuart(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

func inQuint(t, d float64) float64 {
	t /= d
	return t * t * t * t * t
}

func outQuint(t, d float64) float64 {
	t = t/d - 1
	return t*t*t*t*t + 1
}

func inOutQuint(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

// --- Expo ---
// The equality guards keep the endpoints exact; pow never reaches 0 or 1.

func inExpo(t, d float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t/d-1))
}

func outExpo(t, d float64) float64 {
	if t == d {
		return 1
	}
	return -math.Pow(2, -10*t/d) + 1
}

func inOutExpo(t, d float64) float64 {
	if t == 0 {
		return 0
	}
	if t == d {
		return 1
	}
	t /= d * 0.5
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (-math.Pow(2, -10*t) + 2)
}

// --- Circ ---

func inCirc(t, d float64) float64 {
	t /= d
	return -(math.Sqrt(1-t*t) - 1)
}

func outCirc(t, d float64) float64 {
	t = t/d - 1
	return math.Sqrt(1 - t*t)
}

func inOutCirc(t, d float64) float64 {
	t /= d * 0.5
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

// --- Elastic ---

// elasticShape resolves the amplitude and phase shift for the elastic
// curves. Amplitudes below 1 are raised to 1 with a quarter-period shift.
func elasticShape(amplitude, period float64) (amp, shift float64) {
	if amplitude < 1 {
		return 1, period / 4
	}
	return amplitude, period / twoPi * math.Asin(1/amplitude)
}

func inElastic(t, d, amplitude, period float64) float64 {
	if t == 0 {
		return 0
	}
	t /= d
	if t == 1 {
		return 1
	}
	if period == 0 {
		period = d * 0.3
	}
	amp, s := elasticShape(amplitude, period)
	t--
	return -(amp * math.Pow(2, 10*t) * math.Sin((t*d-s)*twoPi/period))
}

func outElastic(t, d, amplitude, period float64) float64 {
	if t == 0 {
		return 0
	}
	t /= d
	if t == 1 {
		return 1
	}
	if period == 0 {
		period = d * 0.3
	}
	amp, s := elasticShape(amplitude, period)
	return amp*math.Pow(2, -10*t)*math.Sin((t*d-s)*twoPi/period) + 1
}

func inOutElastic(t, d, amplitude, period float64) float64 {
	if t == 0 {
		return 0
	}
	t /= d * 0.5
	if t == 2 {
		return 1
	}
	if period == 0 {
		period = d * (0.3 * 1.5)
	}
	amp, s := elasticShape(amplitude, period)
	t--
	if t < 0 {
		return -0.5 * (amp * math.Pow(2, 10*t) * math.Sin((t*d-s)*twoPi/period))
	}
	return amp*math.Pow(2, -10*t)*math.Sin((t*d-s)*twoPi/period)*0.5 + 1
}

// --- Back ---

func inBack(t, d, s float64) float64 {
	t /= d
	return t * t * ((s+1)*t - s)
}

func outBack(t, d, s float64) float64 {
	t = t/d - 1
	return t*t*((s+1)*t+s) + 1
}

func inOutBack(t, d, s float64) float64 {
	t /= d * 0.5
	s *= 1.525
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

// Package ease provides named easing curves that map linear progress in
// [0,1] onto shaped progress.
package ease

import "math"

// Curve names an easing function. Names are the ones accepted in config files.
type Curve string

const (
	Linear         Curve = "linear"
	Ease           Curve = "ease"
	EaseIn         Curve = "ease-in"
	EaseOut        Curve = "ease-out"
	EaseInOut      Curve = "ease-in-out"
	EaseOutCubic   Curve = "ease-out-cubic"
	EaseInOutCubic Curve = "ease-in-out-cubic"
	FastOutSlowIn  Curve = "fast-out-slow-in"
	Decelerate     Curve = "decelerate"
	EaseOutBack    Curve = "ease-out-back" // overshoots 1 before settling
)

// bezier holds the two control points of a cubic Bézier from (0,0) to (1,1).
type bezier struct {
	x1, y1, x2, y2 float64
}

var beziers = map[Curve]bezier{
	Ease:           {0.25, 0.1, 0.25, 1.0},
	EaseIn:         {0.42, 0.0, 1.0, 1.0},
	EaseOut:        {0.0, 0.0, 0.58, 1.0},
	EaseInOut:      {0.42, 0.0, 0.58, 1.0},
	EaseOutCubic:   {0.215, 0.61, 0.355, 1.0},
	EaseInOutCubic: {0.645, 0.045, 0.355, 1.0},
	FastOutSlowIn:  {0.4, 0.0, 0.2, 1.0},
	EaseOutBack:    {0.175, 0.885, 0.32, 1.275},
}

// Curves lists every known curve in a stable order.
var Curves = []Curve{
	Linear, Ease, EaseIn, EaseOut, EaseInOut,
	EaseOutCubic, EaseInOutCubic, FastOutSlowIn, Decelerate, EaseOutBack,
}

// Valid reports whether c names a known curve.
func (c Curve) Valid() bool {
	if c == Linear || c == Decelerate {
		return true
	}
	_, ok := beziers[c]
	return ok
}

// Overshoots reports whether the curve leaves [0,1] for inputs inside [0,1].
func (c Curve) Overshoots() bool {
	return c == EaseOutBack
}

// Transform maps t in [0,1] through the curve. Inputs outside [0,1] are
// clamped. Unknown curves behave as Linear.
func (c Curve) Transform(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	switch c {
	case Linear:
		return t
	case Decelerate:
		return 1 - (1-t)*(1-t)
	}
	b, ok := beziers[c]
	if !ok {
		return t
	}
	return b.transform(t)
}

const epsilon = 1e-6

// transform finds the curve parameter whose x equals t by bisection, then
// returns the y at that parameter.
func (b bezier) transform(t float64) float64 {
	lo, hi := 0.0, 1.0
	for {
		mid := (lo + hi) / 2
		x := evaluate(b.x1, b.x2, mid)
		if math.Abs(t-x) < epsilon {
			return evaluate(b.y1, b.y2, mid)
		}
		if x < t {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < epsilon {
			return evaluate(b.y1, b.y2, mid)
		}
	}
}

func evaluate(a, b, m float64) float64 {
	return 3*a*(1-m)*(1-m)*m + 3*b*(1-m)*m*m + m*m*m
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

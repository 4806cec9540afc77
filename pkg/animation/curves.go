package animation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves should
// return 0 at 0 and 1 at 1; the Driver clamps whatever they return.
type Curve func(t float64) float64

// LinearCurve leaves progress unchanged.
func LinearCurve(t float64) float64 { return t }

// CSS timing functions.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// namedCurves are the curves a theme may select by name.
var namedCurves = map[string]Curve{
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// CurveNames lists the names CurveByName accepts, sorted.
func CurveNames() []string {
	return slices.Sorted(maps.Keys(namedCurves))
}

// CurveByName returns the named curve. Names are case-insensitive and
// underscores may stand in for hyphens; the empty name is linear.
func CurveByName(name string) (Curve, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return LinearCurve, nil
	}
	if c, ok := namedCurves[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown curve %q (want one of %s)", name, strings.Join(CurveNames(), ", "))
}

// CubicBezier returns the timing function with control points (x1, y1) and
// (x2, y2), as CSS cubic-bezier() defines it. x1 and x2 must lie in [0, 1]
// so that x is monotonic in the curve parameter.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		// x(u) is monotonic, so bisection always finds the parameter.
		lo, hi := 0.0, 1.0
		u := t
		for range 40 {
			x := bezier(x1, x2, u)
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one coordinate of a cubic from 0 to 1 with inner control
// values a and b.
func bezier(a, b, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*a + 3*v*u*u*b + u*u*u
}

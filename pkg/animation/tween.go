package animation

import (
	"math"

	"github.com/go-drift/switchbutton/pkg/rendering"
)

// LerpFloat64 returns the value fraction t of the way from a to b. At t=1 it
// returns b itself, so a finished run lands exactly on its target.
func LerpFloat64(a, b, t float64) float64 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpColor blends a towards b channel by channel, alpha included. t is
// clamped to [0, 1], and the ends return a and b unchanged.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return rendering.RGBA(ch(a.R(), b.R()), ch(a.G(), b.G()), ch(a.B(), b.B()), ch(a.A(), b.A()))
}

package rendering

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color packs alpha, red, green and blue into 0xAARRGGBB, the layout the
// switch attributes use for their color values.
type Color uint32

const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
)

func RGBA(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

func RGB(r, g, b uint8) Color { return RGBA(r, g, b, 0xFF) }

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha keeps the RGB channels and replaces alpha.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// NRGBA is the image/color form used when rasterizing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Hex formats c as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c Color) String() string { return c.Hex() }

// ParseColor accepts #RRGGBB, #AARRGGBB and the same digits behind a 0x
// prefix. Six digits mean fully opaque.
func ParseColor(s string) (Color, error) {
	digits := strings.TrimSpace(s)
	for _, prefix := range []string{"#", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(digits, prefix); ok {
			digits = rest
			break
		}
	}
	var opaque Color
	switch len(digits) {
	case 6:
		opaque = 0xFF000000
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(n) | opaque, nil
}

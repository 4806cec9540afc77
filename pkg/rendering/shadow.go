package rendering

// BoxShadow is a blurred copy of a shape drawn beneath it, moved by Offset
// and grown by Spread.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
}

// DropShadow is the knob shadow: straight down by dy, blurred by blur.
func DropShadow(color Color, blur, dy float64) BoxShadow {
	return BoxShadow{Color: color, Offset: Offset{Y: dy}, BlurRadius: blur}
}

// IsZero reports whether drawing s would leave the canvas untouched.
func (s BoxShadow) IsZero() bool {
	if s.Color.A() == 0 {
		return true
	}
	return s.BlurRadius <= 0 && s.Spread <= 0 && s.Offset == Offset{}
}

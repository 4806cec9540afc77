package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/switchbutton/pkg/rendering"
)

// halfBlock draws the top half of a cell in the foreground colour; the
// background colour shows through the bottom half.
const halfBlock = "▀"

// cellGrid samples an RGBA image into terminal cells. Each cell covers ss
// pixels horizontally and 2*ss vertically, split into two square halves.
type cellGrid struct {
	cols, rows int
	ss         int
	backdrop   rendering.Color
}

// render returns rows lines of cols styled half-block cells.
func (g cellGrid) render(img *image.RGBA) string {
	var b strings.Builder
	for row := range g.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range g.cols {
			top := g.sample(img, col*g.ss, row*2*g.ss)
			bottom := g.sample(img, col*g.ss, row*2*g.ss+g.ss)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render(halfBlock))
		}
	}
	return b.String()
}

// sample averages the ss x ss block at (x0, y0) and composites it over the
// backdrop.
func (g cellGrid) sample(img *image.RGBA, x0, y0 int) rendering.Color {
	var r, gr, bl, a, n uint32
	bounds := img.Bounds()
	for y := y0; y < y0+g.ss; y++ {
		for x := x0; x < x0+g.ss; x++ {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			c := img.RGBAAt(x, y)
			r += uint32(c.R)
			gr += uint32(c.G)
			bl += uint32(c.B)
			a += uint32(c.A)
			n++
		}
	}
	if n == 0 {
		return g.backdrop
	}
	// img holds premultiplied colour, so compositing is src + dst*(1-a).
	inv := 255*n - a
	blend := func(src uint32, dst uint8) uint8 {
		return uint8((src*255 + uint32(dst)*inv) / (255 * n))
	}
	return rendering.RGBA(
		blend(r, g.backdrop.R()),
		blend(gr, g.backdrop.G()),
		blend(bl, g.backdrop.B()),
		255,
	)
}

func hexColor(c rendering.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B()))
}

package rendering

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// shadowSteps is the number of layers used to approximate a blurred shadow.
const shadowSteps = 6

// RasterCanvas is a software Canvas that rasterizes anti-aliased shapes into
// an RGBA image. Curves are flattened into polygons and filled with the
// x/image/vector rasterizer; strokes are filled as rings, so a stroked
// outline is an outer contour plus a reversed inner contour.
type RasterCanvas struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	origin  Offset
	saved   []Offset
	flatten float64
}

// NewRasterCanvas creates a canvas backed by a transparent width x height image.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &RasterCanvas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		z:       vector.NewRasterizer(width, height),
		flatten: 0.5,
	}
}

// Image returns the backing image. It is updated in place by every draw call.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.saved = append(c.saved, c.origin)
}

func (c *RasterCanvas) Restore() {
	if n := len(c.saved); n > 0 {
		c.origin = c.saved[n-1]
		c.saved = c.saved[:n-1]
	}
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.origin.X += dx
	c.origin.Y += dy
}

func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	r := rrect.ClampedRadius()
	rect := rrect.Rect
	switch paint.Style {
	case PaintStyleStroke:
		c.strokeRRect(rect, r, paint)
	case PaintStyleFillAndStroke:
		c.fill(paint.EffectiveColor(), c.rrectContour(rect, r, false))
		c.strokeRRect(rect, r, paint)
	default:
		c.fill(paint.EffectiveColor(), c.rrectContour(rect, r, false))
	}
}

func (c *RasterCanvas) strokeRRect(rect Rect, r float64, paint Paint) {
	half := paint.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	outer := c.rrectContour(rect.Inset(-half), r+half, false)
	inner := rect.Inset(half)
	if inner.IsEmpty() {
		c.fill(paint.EffectiveColor(), outer)
		return
	}
	c.fill(paint.EffectiveColor(), outer, c.rrectContour(inner, math.Max(r-half, 0), true))
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	switch paint.Style {
	case PaintStyleStroke:
		c.strokeCircle(center, radius, paint)
	case PaintStyleFillAndStroke:
		c.fill(paint.EffectiveColor(), c.circleContour(center, radius, false))
		c.strokeCircle(center, radius, paint)
	default:
		c.fill(paint.EffectiveColor(), c.circleContour(center, radius, false))
	}
}

func (c *RasterCanvas) strokeCircle(center Offset, radius float64, paint Paint) {
	half := paint.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	outer := c.circleContour(center, radius+half, false)
	if radius-half <= 0 {
		c.fill(paint.EffectiveColor(), outer)
		return
	}
	c.fill(paint.EffectiveColor(), outer, c.circleContour(center, radius-half, true))
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	half := paint.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	if length == 0 {
		if paint.StrokeCap != CapButt {
			c.fill(paint.EffectiveColor(), c.circleContour(start, half, false))
		}
		return
	}
	// unit direction and its normal
	ux, uy := dx/length, dy/length
	nx, ny := -uy*half, ux*half
	if paint.StrokeCap == CapSquare {
		start = Offset{X: start.X - ux*half, Y: start.Y - uy*half}
		end = Offset{X: end.X + ux*half, Y: end.Y + uy*half}
	}
	quad := []Offset{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}
	contours := [][]Offset{quad}
	if paint.StrokeCap == CapRound {
		contours = append(contours, c.circleContour(start, half, false), c.circleContour(end, half, false))
	}
	c.fill(paint.EffectiveColor(), contours...)
}

func (c *RasterCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	if shadow.IsZero() {
		return
	}
	r := rrect.ClampedRadius()
	base := rrect.Rect.Translate(shadow.Offset.X, shadow.Offset.Y).Inset(-shadow.Spread)
	c.drawShadowLayers(shadow, func(grow float64) []Offset {
		return c.rrectContour(base.Inset(-grow), r+grow, false)
	})
}

func (c *RasterCanvas) DrawCircleShadow(center Offset, radius float64, shadow BoxShadow) {
	if shadow.IsZero() {
		return
	}
	base := center.Add(shadow.Offset)
	c.drawShadowLayers(shadow, func(grow float64) []Offset {
		return c.circleContour(base, radius+shadow.Spread+grow, false)
	})
}

// drawShadowLayers approximates a gaussian falloff by stacking progressively
// larger, fainter copies of the shape.
func (c *RasterCanvas) drawShadowLayers(shadow BoxShadow, contour func(grow float64) []Offset) {
	blur := shadow.BlurRadius
	if blur <= 0 {
		c.fill(shadow.Color, contour(0))
		return
	}
	alpha := float64(shadow.Color.A()) / shadowSteps
	for i := shadowSteps; i >= 1; i-- {
		grow := blur * float64(i) / shadowSteps
		c.fill(shadow.Color.WithAlpha(uint8(alpha+0.5)), contour(grow))
	}
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fill rasterizes the contours as one path with nonzero winding and
// composites the result over the image.
func (c *RasterCanvas) fill(color Color, contours ...[]Offset) {
	if color.A() == 0 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	drawn := false
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		p0 := c.point(pts[0])
		c.z.MoveTo(p0[0], p0[1])
		for _, p := range pts[1:] {
			v := c.point(p)
			c.z.LineTo(v[0], v[1])
		}
		c.z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	c.z.Draw(c.img, b, image.NewUniform(color.NRGBA()), image.Point{})
}

func (c *RasterCanvas) point(p Offset) f32.Vec2 {
	return f32.Vec2{float32(p.X + c.origin.X), float32(p.Y + c.origin.Y)}
}

// arcSegments picks a segment count that keeps the chord error under the
// flatten tolerance.
func (c *RasterCanvas) arcSegments(radius, sweep float64) int {
	if radius <= c.flatten {
		return 4
	}
	step := 2 * math.Acos(1-c.flatten/radius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	return max(n, 4)
}

func (c *RasterCanvas) circleContour(center Offset, radius float64, reverse bool) []Offset {
	n := c.arcSegments(radius, 2*math.Pi)
	pts := make([]Offset, 0, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Offset{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	if reverse {
		reverseOffsets(pts)
	}
	return pts
}

func (c *RasterCanvas) rrectContour(rect Rect, radius float64, reverse bool) []Offset {
	radius = math.Max(0, math.Min(radius, math.Min(rect.Width(), rect.Height())/2))
	if radius == 0 {
		pts := []Offset{
			{X: rect.Left, Y: rect.Top},
			{X: rect.Right, Y: rect.Top},
			{X: rect.Right, Y: rect.Bottom},
			{X: rect.Left, Y: rect.Bottom},
		}
		if reverse {
			reverseOffsets(pts)
		}
		return pts
	}
	n := c.arcSegments(radius, math.Pi/2)
	corners := []struct {
		cx, cy, start float64
	}{
		{rect.Right - radius, rect.Top + radius, -math.Pi / 2},
		{rect.Right - radius, rect.Bottom - radius, 0},
		{rect.Left + radius, rect.Bottom - radius, math.Pi / 2},
		{rect.Left + radius, rect.Top + radius, math.Pi},
	}
	pts := make([]Offset, 0, 4*(n+1))
	for _, k := range corners {
		for i := 0; i <= n; i++ {
			a := k.start + (math.Pi/2)*float64(i)/float64(n)
			pts = append(pts, Offset{X: k.cx + radius*math.Cos(a), Y: k.cy + radius*math.Sin(a)})
		}
	}
	if reverse {
		reverseOffsets(pts)
	}
	return pts
}

func reverseOffsets(pts []Offset) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

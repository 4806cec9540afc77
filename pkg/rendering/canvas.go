package rendering

// Canvas is the drawing surface a switch paints onto. Coordinates are in
// pixels relative to the current origin, which Translate moves and
// Save/Restore bracket. PictureRecorder and RasterCanvas implement it.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)

	// Clear overwrites every pixel with color.
	Clear(color Color)

	DrawRRect(rrect RRect, paint Paint)
	DrawCircle(center Offset, radius float64, paint Paint)
	DrawLine(start, end Offset, paint Paint)

	// Shadow calls draw only the shadow; the shape is drawn separately.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)
	DrawCircleShadow(center Offset, radius float64, shadow BoxShadow)

	Size() Size
}

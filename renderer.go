package tableau

// Renderer is the engine's drawing and text-shaping backend. The core never
// rasterizes anything itself: widgets describe rectangles, lines, and shaped
// text runs, and the backend realizes them. Coordinates handed to a Renderer
// are in the engine's bottom-left-origin pixel space; the backend flips them
// if its native space differs.
//
// backend_ebiten.go provides the production implementation; tests substitute
// an in-memory double with deterministic metrics.
type Renderer interface {
	// Size returns the current drawable size in pixels.
	Size() Size

	// DrawRect fills an axis-aligned rectangle.
	DrawRect(box AABB, c Colour)

	// DrawOutlineRect strokes a rectangle's border with the given thickness,
	// expanding outward from the box.
	DrawOutlineRect(box AABB, thickness int, c Colour)

	// DrawLine draws a straight segment between two points.
	DrawLine(from, to Point, thickness int, c Colour)

	// DrawText renders a shaped run with its origin (left edge, baseline)
	// at the given point.
	DrawText(t *ShapedText, at Point, c Colour)

	// MakeText shapes a string. wrapWidth applies only to the multiline
	// alignments; pass 0 for no wrapping.
	MakeText(s string, size FontSize, style TextStyle, align TextAlign, wrapWidth int) *ShapedText

	// Strut returns the font's design ascent and descent for the text's
	// size, independent of what characters the run contains.
	Strut(t *ShapedText) (ascent, descent int)

	// SetCursor requests a mouse cursor shape for this frame.
	SetCursor(c Cursor)

	// BlinkCursor reports the caret blink phase, toggling on a timer.
	BlinkCursor() bool
}

package tableau

import "math"

// Point is an integer pixel coordinate. The engine's coordinate system has
// its origin at the bottom-left, with Y increasing upward; InputSystem flips
// the OS mouse position into this system once per tick.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Size is a width/height pair in pixels.
type Size struct {
	Wd, Ht int
}

// AABB is an axis-aligned box: origin (bottom-left corner) plus size.
type AABB struct {
	Origin Point
	Size   Size
}

// Contains reports whether the point lies inside the box.
// Points on the edge are considered inside.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Origin.X && p.X <= b.Origin.X+b.Size.Wd &&
		p.Y >= b.Origin.Y && p.Y <= b.Origin.Y+b.Size.Ht
}

// Width returns the box's horizontal extent.
func (b AABB) Width() int { return b.Size.Wd }

// Height returns the box's vertical extent.
func (b AABB) Height() int { return b.Size.Ht }

// Colour is an 8-bit RGBA colour.
type Colour struct {
	R, G, B, A uint8
}

// Common colours used by the built-in widgets.
var (
	ColourWhite = Colour{255, 255, 255, 255}
	ColourBlack = Colour{0, 0, 0, 255}
	ColourGrey  = Colour{128, 128, 128, 255}
)

// Anchor names which corner/edge/center of an object a resolved position
// coordinate refers to. Compass directions follow the bottom-left origin:
// South is the bottom edge, North the top.
type Anchor uint8

const (
	AnchorSouthWest Anchor = iota // bottom-left corner (default; subtracts nothing)
	AnchorSouth                   // bottom edge midpoint
	AnchorSouthEast               // bottom-right corner
	AnchorWest                    // left edge midpoint
	AnchorCenter                  // object center
	AnchorEast                    // right edge midpoint
	AnchorNorthWest               // top-left corner
	AnchorNorth                   // top edge midpoint
	AnchorNorthEast               // top-right corner
)

// Centered is the reserved base-coordinate sentinel meaning "center the
// object on this axis". An axis that uses it ignores the anchor correction
// for that axis; the pixel adjustment still applies.
const Centered = math.MinInt32

// Cursor identifies a mouse cursor shape requested from the backend.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorIBeam
)

// TextStyle is a bitmask of font style flags.
type TextStyle uint8

const (
	TextStyleRegular TextStyle = 0
	TextStyleBold    TextStyle = 1 << iota
	TextStyleItalic
)

// TextAlign controls line layout when a string is shaped.
type TextAlign uint8

const (
	AlignSingleLine TextAlign = iota // no wrapping; newlines ignored
	AlignLeft                        // multiline, flush left
	AlignCenter                      // multiline, centered
	AlignRight                       // multiline, flush right
)

// FontSize is a font pixel size. The named sizes are the ones the built-in
// widgets use; anything else is a literal pixel value.
type FontSize int

const (
	FontSizeSmall  FontSize = 12
	FontSizeText   FontSize = 16
	FontSizeMedium FontSize = 24
	FontSizeLarge  FontSize = 36
	FontSizeHuge   FontSize = 48
	FontSizeTitle  FontSize = 96
)

// lerp interpolates between two pixel offsets, truncating toward zero.
// Used by the cursor mapping to place the caret inside multi-glyph clusters.
func lerp(x1, x2 int, t float32) int {
	return int(float32(x1) + t*(float32(x2)-float32(x1)))
}

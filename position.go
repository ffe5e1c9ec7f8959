package tableau

// Position describes where a widget wants to be, independent of the sizes
// involved: a base point whose coordinates may be literal, negative
// (offset from the far edge), or the Centered sentinel; small signed pixel
// adjustments applied after the base is resolved; and an Anchor naming which
// part of the object the resolved coordinate refers to.
//
// Position is a value type. Widgets copy it and re-resolve on every refresh.
type Position struct {
	Base    Point
	XAdjust int
	YAdjust int
	Anchor  Anchor
}

// Pos returns a position with a literal base point and the default anchor.
func Pos(x, y int) Position {
	return Position{Base: Point{x, y}}
}

// Center returns a position centered on both axes.
func Center() Position {
	return Position{Base: Point{Centered, Centered}}
}

// HCenter returns a position centered horizontally at the given y.
func HCenter(y int) Position {
	return Position{Base: Point{Centered, y}}
}

// VCenter returns a position centered vertically at the given x.
func VCenter(x int) Position {
	return Position{Base: Point{x, Centered}}
}

// Anchored returns a copy of p with the anchor replaced.
func (p Position) Anchored(a Anchor) Position {
	p.Anchor = a
	return p
}

// HOffset returns a copy of p with dx added to the horizontal adjustment.
func (p Position) HOffset(dx int) Position {
	p.XAdjust += dx
	return p
}

// VOffset returns a copy of p with dy added to the vertical adjustment.
func (p Position) VOffset(dy int) Position {
	p.YAdjust += dy
	return p
}

// Absolute resolves the position against the screen itself.
func (p Position) Absolute(screen, object Size) Point {
	return p.RelativeTo(Point{}, screen, object)
}

// Relative resolves the position against a parent bounding box.
func (p Position) Relative(parent AABB, object Size) Point {
	return p.RelativeTo(parent.Origin, parent.Size, object)
}

// RelativeTo resolves the position given a container origin and size and the
// size of the object being placed.
//
// Each axis resolves independently: the Centered sentinel becomes
// (container-object)/2, a negative base becomes container+base-object (so -1
// puts the object's far edge flush with the container's far edge), and
// anything else is literal. The container origin and the pixel adjustment
// are then added, and finally the anchor correction is subtracted — except
// on an axis that used the Centered sentinel, which is already where it
// should be and must not be shifted again.
func (p Position) RelativeTo(origin Point, container, object Size) Point {
	clamp := func(val, objSize, totalSize int) int {
		if val == Centered {
			return (totalSize - objSize) / 2
		}
		if val < 0 {
			return totalSize + val - objSize
		}
		return val
	}

	x := origin.X + clamp(p.Base.X, object.Wd, container.Wd) + p.XAdjust
	y := origin.Y + clamp(p.Base.Y, object.Ht, container.Ht) + p.YAdjust

	adjust := func(xa, ya int) {
		if p.Base.X != Centered {
			x -= xa
		}
		if p.Base.Y != Centered {
			y -= ya
		}
	}

	switch p.Anchor {
	case AnchorNorth:
		adjust(object.Wd/2, object.Ht)
	case AnchorNorthEast:
		adjust(object.Wd, object.Ht)
	case AnchorEast:
		adjust(object.Wd, object.Ht/2)
	case AnchorSouthEast:
		adjust(object.Wd, 0)
	case AnchorSouth:
		adjust(object.Wd/2, 0)
	case AnchorSouthWest:
		// The resolved coordinate already names the bottom-left corner.
	case AnchorWest:
		adjust(0, object.Ht/2)
	case AnchorNorthWest:
		adjust(0, object.Ht)
	case AnchorCenter:
		adjust(object.Wd/2, object.Ht/2)
	}

	return Point{x, y}
}

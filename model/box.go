package model

import "fmt"

// Box is a rectangular area of the grid defined by two coordinates: Min is
// the top-left corner and Max the bottom-right corner, both inclusive.
// A valid box satisfies 1 <= Min.X <= Max.X and 1 <= Min.Y <= Max.Y.
type Box struct {
	Min, Max Coord
}

// NewBox builds a box from the four corner coordinates.
func NewBox(minX, minY, maxX, maxY int) (Box, error) {
	return BoxFromCorners(Coord{X: minX, Y: minY}, Coord{X: maxX, Y: maxY})
}

// BoxFromCorners builds a box from its top-left and bottom-right corners.
func BoxFromCorners(min, max Coord) (Box, error) {
	if min.X < 1 || min.Y < 1 || min.X > max.X || min.Y > max.Y {
		return Box{}, fmt.Errorf("%w: box %v:%v", ErrInvalidBounds, min, max)
	}
	return Box{Min: min, Max: max}, nil
}

// BoxFromSize builds a box from its top-left corner and its size.
func BoxFromSize(origin Coord, size Size) (Box, error) {
	max := origin.Add(size).Sub(Size{Width: 1, Height: 1})
	return BoxFromCorners(origin, max)
}

// BoxAt returns the 1x1 box at the given coordinate.
func BoxAt(at Coord) Box {
	return Box{Min: at, Max: at}
}

// Width returns the number of columns the box spans.
func (b Box) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows the box spans.
func (b Box) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Size returns the box extent in cell units.
func (b Box) Size() Size {
	return Size{Width: b.Width(), Height: b.Height()}
}

// String returns the spreadsheet-style form of the box, e.g. "E6:G8",
// or just "E6" for a 1x1 box.
func (b Box) String() string {
	if b.Min == b.Max {
		return b.Min.String()
	}
	return b.Min.String() + ":" + b.Max.String()
}

// ContainsCoord reports whether the coordinate lies inside the box
// (bounds are inclusive).
func (b Box) ContainsCoord(c Coord) bool {
	return b.Min.X <= c.X && c.X <= b.Max.X && b.Min.Y <= c.Y && c.Y <= b.Max.Y
}

// ContainsBox reports whether both corners of the other box lie inside
// this box.
func (b Box) ContainsBox(other Box) bool {
	return b.ContainsCoord(other.Min) && b.ContainsCoord(other.Max)
}

// Intersect reports whether any corner of either box lies within the other.
//
// This is a corner-containment test, not a full rectangle-overlap test: two
// boxes crossing each other without either corner inside the other are not
// detected. The grid's collision check relies on this exact boundary
// behavior, so it is kept as-is.
func (b Box) Intersect(other Box) bool {
	return other.ContainsCoord(b.Min) || other.ContainsCoord(b.Max) ||
		b.ContainsCoord(other.Min) || b.ContainsCoord(other.Max)
}

// Disjoint reports whether the boxes do not intersect.
func (b Box) Disjoint(other Box) bool {
	return !b.Intersect(other)
}

// Union returns the bounding box of this box and all the others.
func (b Box) Union(others ...Box) Box {
	result := b
	for _, o := range others {
		if o.Min.X < result.Min.X {
			result.Min.X = o.Min.X
		}
		if o.Min.Y < result.Min.Y {
			result.Min.Y = o.Min.Y
		}
		if o.Max.X > result.Max.X {
			result.Max.X = o.Max.X
		}
		if o.Max.Y > result.Max.Y {
			result.Max.Y = o.Max.Y
		}
	}
	return result
}

// Intersection returns the inner box common to this box and all the others.
// It fails if the boxes are disjoint.
func (b Box) Intersection(others ...Box) (Box, error) {
	min, max := b.Min, b.Max
	for _, o := range others {
		if o.Min.X > min.X {
			min.X = o.Min.X
		}
		if o.Min.Y > min.Y {
			min.Y = o.Min.Y
		}
		if o.Max.X < max.X {
			max.X = o.Max.X
		}
		if o.Max.Y < max.Y {
			max.Y = o.Max.Y
		}
	}
	inner, err := BoxFromCorners(min, max)
	if err != nil {
		return Box{}, fmt.Errorf("%w: disjoint boxes", ErrInvalidBounds)
	}
	return inner, nil
}

// MoveTo returns a copy of the box with its top-left corner at the given
// coordinate, keeping its size.
func (b Box) MoveTo(at Coord) Box {
	return Box{Min: at, Max: at.Add(b.Size()).Sub(Size{Width: 1, Height: 1})}
}

// Resize returns a copy of the box with the given size, keeping its
// top-left corner.
func (b Box) Resize(size Size) (Box, error) {
	return BoxFromSize(b.Min, size)
}

// Transform returns a copy of the box moved to the given coordinate and
// resized to the given size.
func (b Box) Transform(at Coord, size Size) (Box, error) {
	return BoxFromSize(at, size)
}

// Less is a total order on boxes: by top row, then left column, then bottom
// row, then right column. Sorting cells by this order yields a row-major
// traversal.
func (b Box) Less(other Box) bool {
	if b.Min.Y != other.Min.Y {
		return b.Min.Y < other.Min.Y
	}
	if b.Min.X != other.Min.X {
		return b.Min.X < other.Min.X
	}
	if b.Max.Y != other.Max.Y {
		return b.Max.Y < other.Max.Y
	}
	return b.Max.X < other.Max.X
}

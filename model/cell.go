package model

// Cell holds the content of one grid cell, its styles and nature, and its
// box (position plus spans).
//
// A cell's box is never mutated in place: MoveTo, Resize and Transform
// return a new cell. The style map is copied on every assignment, so cells
// never share styles. The content reference, on the other hand, is shared
// between the original and the transformed copy; handling deep copies of
// the content is the caller's responsibility.
type Cell struct {
	Styled

	// Content is the user-defined cell payload; nil means an empty cell.
	Content Content

	box Box
}

// NewCell builds a 1x1 body cell at (1, 1).
func NewCell(content Content) *Cell {
	return &Cell{
		Styled:  NewStyled(nil, NatureBody),
		Content: content,
		box:     BoxAt(Coord{X: 1, Y: 1}),
	}
}

// NewCellAt builds a 1x1 body cell at the given coordinate.
func NewCellAt(content Content, at Coord) (*Cell, error) {
	box, err := BoxFromCorners(at, at)
	if err != nil {
		return nil, err
	}
	cell := NewCell(content)
	cell.box = box
	return cell, nil
}

// NewSpannedCell builds a body cell at the given coordinate spanning the
// given number of columns and rows.
func NewSpannedCell(content Content, at Coord, size Size) (*Cell, error) {
	box, err := BoxFromSize(at, size)
	if err != nil {
		return nil, err
	}
	cell := NewCell(content)
	cell.box = box
	return cell, nil
}

// Box returns the bounding box of the cell.
func (c *Cell) Box() Box { return c.box }

// Min returns the top-left coordinate of the cell.
func (c *Cell) Min() Coord { return c.box.Min }

// Max returns the bottom-right coordinate of the cell.
func (c *Cell) Max() Coord { return c.box.Max }

// Size returns the spans of the cell.
func (c *Cell) Size() Size { return c.box.Size() }

// Width returns the column span of the cell.
func (c *Cell) Width() int { return c.box.Width() }

// Height returns the row span of the cell.
func (c *Cell) Height() int { return c.box.Height() }

// ContainsCoord reports whether the coordinate lies inside the cell's box.
func (c *Cell) ContainsCoord(at Coord) bool {
	return c.box.ContainsCoord(at)
}

// String returns the plain text of the cell content ("" for an empty cell).
func (c *Cell) String() string {
	if c.Content == nil {
		return ""
	}
	return c.Content.PlainText()
}

// Less orders cells by their boxes.
func (c *Cell) Less(other *Cell) bool {
	return c.box.Less(other.box)
}

// Transform returns a copy of the cell moved to the given coordinate and
// resized to the given size. The copy owns its own style map; the content
// reference is shared.
func (c *Cell) Transform(at Coord, size Size) (*Cell, error) {
	box, err := c.box.Transform(at, size)
	if err != nil {
		return nil, err
	}
	cell := &Cell{
		Styled:  NewStyled(c.Styles(), c.Nature()),
		Content: c.Content,
		box:     box,
	}
	return cell, nil
}

// MoveTo returns a copy of the cell at the given coordinate, keeping its
// size.
func (c *Cell) MoveTo(at Coord) (*Cell, error) {
	return c.Transform(at, c.Size())
}

// Resize returns a copy of the cell with the given size, keeping its
// position.
func (c *Cell) Resize(size Size) (*Cell, error) {
	return c.Transform(c.Min(), size)
}

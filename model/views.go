package model

// RowView is a projection of the table cells for one row. It distinguishes
// owned cells (whose top-left corner is exactly on this row) from caught
// cells (whose box passes through this row, owned or spanning in from an
// earlier row). Owned cells are always also caught.
//
// Views are owned and rebuilt by their table; they must not be held across
// a table mutation.
type RowView struct {
	Styled

	table *Table
	pos   int

	owned  []*Cell
	caught []*Cell
}

// Pos returns the row position in the table (1-based).
func (v *RowView) Pos() int { return v.pos }

// OwnedCells returns the cells owned by this row, left to right.
func (v *RowView) OwnedCells() []*Cell { return v.owned }

// CaughtCells returns the cells caught by this row, left to right.
func (v *RowView) CaughtCells() []*Cell { return v.caught }

func (v *RowView) owns(cell *Cell) bool {
	return cell.Min().Y == v.pos
}

func (v *RowView) catches(cell *Cell) bool {
	return cell.ContainsCoord(Coord{X: cell.Min().X, Y: v.pos})
}

func (v *RowView) adopt(cell *Cell) {
	if v.owns(cell) {
		v.owned = append(v.owned, cell)
	}
	if v.catches(cell) {
		v.caught = append(v.caught, cell)
	}
}

func (v *RowView) reset() {
	v.owned = nil
	v.caught = nil
}

// InsertCell inserts a new cell in the row at the first free column, or
// past the last occupied one. The scan skips columns already consumed by
// spans: vertical merges hanging down from previous rows as well as
// horizontal spans placed earlier in this row. This is the append operation
// streaming parsers rely on, since it needs no explicit column tracking.
//
// The new cell spans width columns and height rows and takes this view's
// nature.
func (v *RowView) InsertCell(content Content, width, height int) (*Cell, error) {
	x := nextFreeSlot(v.caught, func(i int) Coord { return Coord{X: i, Y: v.pos} },
		func(bb Box) int { return bb.Max.X })
	cell, err := NewSpannedCell(content, Coord{X: x, Y: v.pos}, Size{Width: width, Height: height})
	if err != nil {
		return nil, err
	}
	cell.SetNature(v.Nature())
	if err := v.table.Set(cell.Min(), cell); err != nil {
		return nil, err
	}
	return v.table.Get(cell.Min())
}

// ColView is the column counterpart of RowView: owned cells start on this
// column, caught cells span through it.
type ColView struct {
	Styled

	table *Table
	pos   int

	owned  []*Cell
	caught []*Cell
}

// Pos returns the column position in the table (1-based).
func (v *ColView) Pos() int { return v.pos }

// OwnedCells returns the cells owned by this column, top to bottom.
func (v *ColView) OwnedCells() []*Cell { return v.owned }

// CaughtCells returns the cells caught by this column, top to bottom.
func (v *ColView) CaughtCells() []*Cell { return v.caught }

func (v *ColView) owns(cell *Cell) bool {
	return cell.Min().X == v.pos
}

func (v *ColView) catches(cell *Cell) bool {
	return cell.ContainsCoord(Coord{X: v.pos, Y: cell.Min().Y})
}

func (v *ColView) adopt(cell *Cell) {
	if v.owns(cell) {
		v.owned = append(v.owned, cell)
	}
	if v.catches(cell) {
		v.caught = append(v.caught, cell)
	}
}

func (v *ColView) reset() {
	v.owned = nil
	v.caught = nil
}

// InsertCell inserts a new cell in the column at the first free row, or
// past the last occupied one. The column counterpart of
// RowView.InsertCell.
func (v *ColView) InsertCell(content Content, width, height int) (*Cell, error) {
	y := nextFreeSlot(v.caught, func(i int) Coord { return Coord{X: v.pos, Y: i} },
		func(bb Box) int { return bb.Max.Y })
	cell, err := NewSpannedCell(content, Coord{X: v.pos, Y: y}, Size{Width: width, Height: height})
	if err != nil {
		return nil, err
	}
	cell.SetNature(v.Nature())
	if err := v.table.Set(cell.Min(), cell); err != nil {
		return nil, err
	}
	return v.table.Get(cell.Min())
}

// nextFreeSlot scans forward from position 1 along the view's axis for the
// first coordinate not covered by any caught cell, falling back to one past
// the caught cells' bounding extent.
func nextFreeSlot(caught []*Cell, coordAt func(int) Coord, extent func(Box) int) int {
	if len(caught) == 0 {
		return 1
	}
	bb := caught[0].Box()
	for _, cell := range caught[1:] {
		bb = bb.Union(cell.Box())
	}
	for i := 1; i <= extent(bb); i++ {
		covered := false
		for _, cell := range caught {
			if cell.ContainsCoord(coordAt(i)) {
				covered = true
				break
			}
		}
		if !covered {
			return i
		}
	}
	return extent(bb) + 1
}

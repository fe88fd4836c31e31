package model

// Table wraps a Grid with table-level styles and nature, and maintains
// row and column views over the cells.
//
// The view lists are caches, refreshed deterministically after every
// mutation: a single-cell insertion adopts the new cell into the touched
// views (cheap path), while structural changes (Delete, Merge, Expand,
// FillMissing) rebuild all views from scratch. Callers must not hold view
// references across a mutation.
//
// A Table is not safe for concurrent mutation.
type Table struct {
	Styled

	grid *Grid
	rows []*RowView
	cols []*ColView
}

// NewTable builds a table from the given cells, inserted in order. All
// cells must be pairwise disjoint.
func NewTable(cells ...*Cell) (*Table, error) {
	t := &Table{Styled: NewStyled(nil, NatureBody), grid: &Grid{}}
	for _, cell := range cells {
		if err := t.Set(cell.Min(), cell); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of cells in the table.
func (t *Table) Len() int { return t.grid.Len() }

// Cells returns the cells in box order.
func (t *Table) Cells() []*Cell { return t.grid.Cells() }

// Contains reports whether some cell covers the coordinate.
func (t *Table) Contains(at Coord) bool { return t.grid.Contains(at) }

// Get returns the cell covering the coordinate.
func (t *Table) Get(at Coord) (*Cell, error) { return t.grid.Get(at) }

// BoundingBox returns the union of all cell boxes; false if empty.
func (t *Table) BoundingBox() (Box, bool) { return t.grid.BoundingBox() }

// Set inserts the cell at the coordinate and adopts it into the views.
func (t *Table) Set(at Coord, cell *Cell) error {
	if err := t.grid.Set(at, cell); err != nil {
		return err
	}
	inserted, err := t.grid.Get(at)
	if err != nil {
		return err
	}
	t.adoptCell(inserted)
	return nil
}

// Delete removes the cell covering the coordinate and rebuilds the views.
func (t *Table) Delete(at Coord) error {
	if err := t.grid.Delete(at); err != nil {
		return err
	}
	t.refreshAll()
	return nil
}

// Merge replaces the cells contained in (start, end) with one spanning cell
// and rebuilds the views. See Grid.Merge.
func (t *Table) Merge(start, end Coord, appender ContentAppender) (*Cell, error) {
	cell, err := t.grid.Merge(start, end, appender)
	if err != nil {
		return nil, err
	}
	t.refreshAll()
	return cell, nil
}

// Expand grows the cell at the coordinate by a width/height delta and
// rebuilds the views. See Grid.Expand.
func (t *Table) Expand(at Coord, widthDelta, heightDelta int, appender ContentAppender) (*Cell, error) {
	cell, err := t.grid.Expand(at, widthDelta, heightDelta, appender)
	if err != nil {
		return nil, err
	}
	t.refreshAll()
	return cell, nil
}

// FillMissing inserts a 1x1 placeholder cell with the given content and
// nature at every coordinate of the box not already covered. Parsers use it
// to pad ragged rows to the table's full column count.
func (t *Table) FillMissing(box Box, placeholder Content, nature string) error {
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			at := Coord{X: x, Y: y}
			if t.grid.Contains(at) {
				continue
			}
			cell := NewCell(placeholder)
			cell.SetNature(nature)
			if err := t.Set(at, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

// Rows returns the row views, one per row of the bounding box, top to
// bottom.
func (t *Table) Rows() []*RowView { return t.rows }

// Cols returns the column views, one per column of the bounding box, left
// to right.
func (t *Table) Cols() []*ColView { return t.cols }

// Row returns the view of the given row (1-based), extending the view list
// if the row lies beyond the current bounding box. Parsers use this to
// address rows before any cell exists on them.
func (t *Table) Row(pos int) *RowView {
	t.growRows(pos)
	return t.rows[pos-1]
}

// Col returns the view of the given column (1-based), extending the view
// list if needed.
func (t *Table) Col(pos int) *ColView {
	t.growCols(pos)
	return t.cols[pos-1]
}

func (t *Table) growRows(size int) {
	for pos := len(t.rows) + 1; pos <= size; pos++ {
		t.rows = append(t.rows, &RowView{
			Styled: NewStyled(nil, t.Nature()),
			table:  t,
			pos:    pos,
		})
	}
}

func (t *Table) growCols(size int) {
	for pos := len(t.cols) + 1; pos <= size; pos++ {
		t.cols = append(t.cols, &ColView{
			Styled: NewStyled(nil, t.Nature()),
			table:  t,
			pos:    pos,
		})
	}
}

// adoptCell extends the view lists to cover the cell's box and registers
// the cell with every row and column the box touches. This is the cheap
// refresh path after a single insertion.
func (t *Table) adoptCell(cell *Cell) {
	t.growRows(cell.Max().Y)
	t.growCols(cell.Max().X)
	for y := cell.Min().Y; y <= cell.Max().Y; y++ {
		t.rows[y-1].adopt(cell)
	}
	for x := cell.Min().X; x <= cell.Max().X; x++ {
		t.cols[x-1].adopt(cell)
	}
}

// refreshAll resizes the view lists to the current bounding box, clears
// every view's cell lists and re-adopts every cell. This is the expensive
// path after structural changes, which can affect arbitrarily many rows and
// columns at once. Existing view objects survive so their styles and
// natures are kept.
func (t *Table) refreshAll() {
	width, height := 0, 0
	if bb, ok := t.grid.BoundingBox(); ok {
		width, height = bb.Max.X, bb.Max.Y
	}
	if len(t.rows) > height {
		t.rows = t.rows[:height]
	}
	if len(t.cols) > width {
		t.cols = t.cols[:width]
	}
	t.growRows(height)
	t.growCols(width)
	for _, row := range t.rows {
		row.reset()
	}
	for _, col := range t.cols {
		col.reset()
	}
	for _, cell := range t.grid.Cells() {
		for y := cell.Min().Y; y <= cell.Max().Y; y++ {
			t.rows[y-1].adopt(cell)
		}
		for x := cell.Min().X; x <= cell.Max().X; x++ {
			t.cols[x-1].adopt(cell)
		}
	}
}

// String draws the underlying grid; purely a debug aid.
func (t *Table) String() string {
	return t.grid.String()
}

package model

import (
	"fmt"
	"sort"
)

// Grid is a collection of cells ordered in rows and columns. It is the
// invariant enforcer of the package: no two cells of a grid ever intersect.
// Every mutating operation either maintains that invariant or fails without
// touching the grid.
//
// Cells are kept sorted by box order, so iteration is row-major. Lookups
// and collision checks are linear scans; a grid holds at most one document
// table, so n stays small.
//
// A Grid is not safe for concurrent mutation.
type Grid struct {
	cells []*Cell
}

// NewGrid builds a grid from the given cells, inserted in order. All cells
// must be pairwise disjoint.
func NewGrid(cells ...*Cell) (*Grid, error) {
	g := &Grid{}
	for _, cell := range cells {
		if err := g.Set(cell.Min(), cell); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells returns the cells in box order. The slice is a copy; the cells are
// not.
func (g *Grid) Cells() []*Cell {
	cells := make([]*Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Contains reports whether some cell covers the coordinate.
func (g *Grid) Contains(at Coord) bool {
	for _, cell := range g.cells {
		if cell.ContainsCoord(at) {
			return true
		}
	}
	return false
}

// Get returns the cell covering the coordinate.
func (g *Grid) Get(at Coord) (*Cell, error) {
	for _, cell := range g.cells {
		if cell.ContainsCoord(at) {
			return cell, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, at)
}

// Delete removes the cell covering the coordinate.
func (g *Grid) Delete(at Coord) error {
	for i, cell := range g.cells {
		if cell.ContainsCoord(at) {
			g.cells = append(g.cells[:i], g.cells[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrNotFound, at)
}

// Set moves the cell so its top-left corner is at the given coordinate and
// inserts it. It fails if the moved cell's box intersects any existing
// cell's box, leaving the grid unchanged.
func (g *Grid) Set(at Coord, cell *Cell) error {
	moved, err := cell.MoveTo(at)
	if err != nil {
		return err
	}
	for _, existing := range g.cells {
		if existing.Box().Intersect(moved.Box()) {
			return fmt.Errorf("%w: %v overlaps %v", ErrCollision, moved.Box(), existing.Box())
		}
	}
	g.insert(moved)
	return nil
}

// insert places a cell at its sorted position. The caller has already
// checked for collisions.
func (g *Grid) insert(cell *Cell) {
	key := BoxAt(cell.Min())
	index := sort.Search(len(g.cells), func(i int) bool {
		return !g.cells[i].Box().Less(key)
	})
	g.cells = append(g.cells, nil)
	copy(g.cells[index+1:], g.cells[index:])
	g.cells[index] = cell
}

// BoundingBox returns the union of all cell boxes. The second return value
// is false if the grid is empty.
func (g *Grid) BoundingBox() (Box, bool) {
	if len(g.cells) == 0 {
		return Box{}, false
	}
	bb := g.cells[0].Box()
	for _, cell := range g.cells[1:] {
		bb = bb.Union(cell.Box())
	}
	return bb, true
}

// Merge replaces the cells fully contained in the box (start, end) with one
// new cell spanning exactly that box.
//
// Contents are combined pairwise, left to right, with the appender
// (AppendContent if nil). Styles of later cells are merged into the first
// cell's styles, later values winning on conflict. The nature of the first
// (top-left) cell is kept.
//
// Merge fails if the target box contains no cells, or if any cell straddles
// the target boundary: a partial overlap makes the intended shape
// ambiguous. On failure the grid is unchanged.
func (g *Grid) Merge(start, end Coord, appender ContentAppender) (*Cell, error) {
	if appender == nil {
		appender = AppendContent
	}
	target, err := BoxFromCorners(start, end)
	if err != nil {
		return nil, err
	}
	var merged, unchanged []*Cell
	for _, cell := range g.cells {
		switch {
		case target.ContainsBox(cell.Box()):
			merged = append(merged, cell)
		case target.Intersect(cell.Box()):
			return nil, fmt.Errorf("%w: %v straddles %v", ErrAmbiguousMerge, cell.Box(), target)
		default:
			unchanged = append(unchanged, cell)
		}
	}
	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: no cells inside %v", ErrNotFound, target)
	}

	first := merged[0]
	cell, err := first.Transform(target.Min, target.Size())
	if err != nil {
		return nil, err
	}
	for _, other := range merged[1:] {
		content, err := appender(cell.Content, other.Content)
		if err != nil {
			return nil, err
		}
		cell.Content = content
		cell.MergeStyles(other.Styles())
	}

	g.cells = unchanged
	g.insert(cell)
	return cell, nil
}

// Expand grows (or shrinks) the span of the cell at the coordinate by a
// width and height delta, merging any cells the grown box swallows. This is
// the operation behind vertical-merge continuations: expanding the cell one
// row down instead of inserting a colliding cell.
func (g *Grid) Expand(at Coord, widthDelta, heightDelta int, appender ContentAppender) (*Cell, error) {
	cell, err := g.Get(at)
	if err != nil {
		return nil, err
	}
	end := cell.Max().Add(Size{Width: widthDelta, Height: heightDelta})
	return g.Merge(cell.Min(), end, appender)
}

// Rows returns the cells grouped by their top row, in box order.
func (g *Grid) Rows() [][]*Cell {
	var rows [][]*Cell
	var current []*Cell
	currentY := 0
	for _, cell := range g.cells {
		if cell.Min().Y != currentY {
			if current != nil {
				rows = append(rows, current)
			}
			current = nil
			currentY = cell.Min().Y
		}
		current = append(current, cell)
	}
	if current != nil {
		rows = append(rows, current)
	}
	return rows
}

// String draws the grid with ASCII tiles; purely a debug aid.
func (g *Grid) String() string {
	return drawGrid(g)
}

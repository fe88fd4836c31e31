// Package model provides the shared in-memory representation of a document
// table: a two-dimensional grid of rectangular, non-overlapping, possibly
// spanning cells.
//
// All format adapters read and write this one substrate. A parser walks a
// source markup tree and builds a [Table] incrementally; a builder walks the
// finished table to emit the target dialect.
//
// # Geometry
//
// Positions and extents are integer cell units, 1-indexed:
//
//   - [Coord] - a (column, row) position with a spreadsheet string form ("E6")
//   - [Size] - a (width, height) extent
//   - [Box] - an inclusive min/max rectangle with containment, union and a
//     row-major total order
//
// # Grid and Table
//
// A [Grid] stores cells and enforces the package invariant: no two cells
// ever intersect. Insertions are rejected on collision; [Grid.Merge] and
// [Grid.Expand] replace fully-contained cells with one spanning cell. Every
// mutation is all-or-nothing.
//
// A [Table] adds table-level styles, a nature tag, and per-row/per-column
// projections ([RowView], [ColView]) distinguishing owned cells (starting on
// the row or column) from caught cells (spanning through it). The views'
// InsertCell places a cell at the next free slot, which lets streaming
// parsers append cells without tracking column positions around spans:
//
//	table, _ := model.NewTable()
//	row := table.Row(1)
//	row.InsertCell(model.Text("red"), 1, 2)
//	row.InsertCell(model.Text("pink"), 2, 1)
//	table.Row(2).InsertCell(model.Text("blue"), 1, 1)
//
// Grid and Table instances are not safe for concurrent mutation, and view
// references must not be held across a mutation.
package model

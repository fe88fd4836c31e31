package model

import (
	"errors"
	"testing"
)

// buildColorTable assembles the reference table the way a streaming parser
// would: appending to row views without tracking column positions.
func buildColorTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if _, err := table.Row(1).InsertCell(Text("red"), 1, 2); err != nil {
		t.Fatalf("insert red: %v", err)
	}
	if _, err := table.Row(1).InsertCell(Text("pink"), 2, 1); err != nil {
		t.Fatalf("insert pink: %v", err)
	}
	if _, err := table.Row(2).InsertCell(Text("blue"), 1, 1); err != nil {
		t.Fatalf("insert blue: %v", err)
	}
	return table
}

// ============================================================================
// Construction and Lookup Tests
// ============================================================================

func TestNewTableFromCells(t *testing.T) {
	red, err := NewSpannedCell(Text("red"), Coord{1, 1}, Size{1, 2})
	if err != nil {
		t.Fatalf("red: %v", err)
	}
	pink, err := NewSpannedCell(Text("pink"), Coord{2, 1}, Size{2, 1})
	if err != nil {
		t.Fatalf("pink: %v", err)
	}
	blue, err := NewCellAt(Text("blue"), Coord{2, 2})
	if err != nil {
		t.Fatalf("blue: %v", err)
	}

	table, err := NewTable(red, pink, blue)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Len = %d, want 3", table.Len())
	}
	if bb, ok := table.BoundingBox(); !ok || bb != mustBox(t, 1, 1, 3, 2) {
		t.Errorf("BoundingBox = %v, want A1:C2", bb)
	}
	if len(table.Rows()) != 2 || len(table.Cols()) != 3 {
		t.Errorf("views = %d rows, %d cols, want 2 and 3", len(table.Rows()), len(table.Cols()))
	}
}

func TestNewTableCollision(t *testing.T) {
	a := NewCell(Text("a"))
	b := NewCell(Text("b"))
	if _, err := NewTable(a, b); !errors.Is(err, ErrCollision) {
		t.Errorf("NewTable error = %v, want ErrCollision", err)
	}
}

// ============================================================================
// Streaming Insertion Tests
// ============================================================================

func TestRowInsertCellStreaming(t *testing.T) {
	table := buildColorTable(t)

	tests := []struct {
		at       Coord
		expected string
	}{
		{Coord{1, 1}, "red"},
		{Coord{2, 1}, "pink"},
		{Coord{1, 2}, "red"},  // hangs down from row 1
		{Coord{3, 1}, "pink"}, // horizontal span
		{Coord{2, 2}, "blue"}, // slid right past red's tail
	}
	for _, tt := range tests {
		cell, err := table.Get(tt.at)
		if err != nil {
			t.Fatalf("Get(%v): %v", tt.at, err)
		}
		if cell.String() != tt.expected {
			t.Errorf("Get(%v) = %q, want %q", tt.at, cell.String(), tt.expected)
		}
	}
}

func TestRowInsertCellSkipsHorizontalSpan(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if _, err := table.Row(1).InsertCell(Text("wide"), 2, 1); err != nil {
		t.Fatalf("insert wide: %v", err)
	}
	cell, err := table.Row(1).InsertCell(Text("next"), 1, 1)
	if err != nil {
		t.Fatalf("insert next: %v", err)
	}
	if cell.Min() != (Coord{3, 1}) {
		t.Errorf("next cell at %v, want (3,1)", cell.Min())
	}
}

func TestRowInsertCellFillsGap(t *testing.T) {
	// A deleted cell leaves a hole; the scan finds it before the tail.
	table := buildColorTable(t)
	if err := table.Delete(Coord{2, 1}); err != nil {
		t.Fatalf("Delete pink: %v", err)
	}
	cell, err := table.Row(1).InsertCell(Text("gap"), 1, 1)
	if err != nil {
		t.Fatalf("insert gap: %v", err)
	}
	if cell.Min() != (Coord{2, 1}) {
		t.Errorf("gap cell at %v, want (2,1)", cell.Min())
	}
}

func TestColInsertCell(t *testing.T) {
	table := buildColorTable(t)

	// Column 3 is occupied at row 1 by pink's span; the first free row is 2.
	cell, err := table.Col(3).InsertCell(Text("yellow"), 1, 1)
	if err != nil {
		t.Fatalf("insert yellow: %v", err)
	}
	if cell.Min() != (Coord{3, 2}) {
		t.Errorf("yellow at %v, want (3,2)", cell.Min())
	}
}

func TestInsertCellNature(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := table.Row(1)
	row.SetNature(NatureHeader)
	cell, err := row.InsertCell(Text("h"), 1, 1)
	if err != nil {
		t.Fatalf("InsertCell: %v", err)
	}
	if cell.Nature() != NatureHeader {
		t.Errorf("cell nature = %q, want header", cell.Nature())
	}
}

// ============================================================================
// View Tests
// ============================================================================

func TestRowViewOwnedAndCaught(t *testing.T) {
	table := buildColorTable(t)

	row1 := table.Row(1)
	if got := cellTexts(row1.OwnedCells()); len(got) != 2 || got[0] != "red" || got[1] != "pink" {
		t.Errorf("row 1 owned = %v, want [red pink]", got)
	}
	if got := cellTexts(row1.CaughtCells()); len(got) != 2 {
		t.Errorf("row 1 caught = %v, want [red pink]", got)
	}

	row2 := table.Row(2)
	if got := cellTexts(row2.OwnedCells()); len(got) != 1 || got[0] != "blue" {
		t.Errorf("row 2 owned = %v, want [blue]", got)
	}
	// red spans into row 2 without starting there
	if got := cellTexts(row2.CaughtCells()); len(got) != 2 || got[0] != "red" || got[1] != "blue" {
		t.Errorf("row 2 caught = %v, want [red blue]", got)
	}
}

func TestColViewOwnedAndCaught(t *testing.T) {
	table := buildColorTable(t)

	col2 := table.Col(2)
	if got := cellTexts(col2.OwnedCells()); len(got) != 2 || got[0] != "pink" || got[1] != "blue" {
		t.Errorf("col 2 owned = %v, want [pink blue]", got)
	}

	col3 := table.Col(3)
	if got := cellTexts(col3.OwnedCells()); len(got) != 0 {
		t.Errorf("col 3 owned = %v, want []", got)
	}
	if got := cellTexts(col3.CaughtCells()); len(got) != 1 || got[0] != "pink" {
		t.Errorf("col 3 caught = %v, want [pink]", got)
	}
}

func TestRowAddressableBeforeCells(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	table.SetNature(NatureHeader)

	row := table.Row(3)
	if row.Pos() != 3 {
		t.Errorf("Pos = %d, want 3", row.Pos())
	}
	if row.Nature() != NatureHeader {
		t.Errorf("row nature = %q, want table's header", row.Nature())
	}
	if len(table.Rows()) != 3 {
		t.Errorf("Rows length = %d, want 3", len(table.Rows()))
	}
}

func TestViewStylesSurviveRefresh(t *testing.T) {
	table := buildColorTable(t)
	table.Row(1).SetStyle("height", "12pt")
	table.Col(2).SetStyle("width", "30mm")

	if _, err := table.Merge(Coord{2, 1}, Coord{3, 2}, func(a, b Content) (Content, error) {
		return Text(a.PlainText() + "/" + b.PlainText()), nil
	}); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if table.Row(1).Style("height") != "12pt" {
		t.Error("row style lost across a structural refresh")
	}
	if table.Col(2).Style("width") != "30mm" {
		t.Error("col style lost across a structural refresh")
	}
}

func TestViewsRefreshAfterMutations(t *testing.T) {
	table := buildColorTable(t)

	if _, err := table.Expand(Coord{2, 2}, 1, 0, nil); err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got := cellTexts(table.Col(3).CaughtCells()); len(got) != 2 || got[1] != "blue" {
		t.Errorf("col 3 caught after expand = %v, want [pink blue]", got)
	}

	if err := table.Delete(Coord{2, 1}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := cellTexts(table.Row(1).OwnedCells()); len(got) != 1 || got[0] != "red" {
		t.Errorf("row 1 owned after delete = %v, want [red]", got)
	}
	assertViewsConsistent(t, table)
}

func TestDeleteShrinksViews(t *testing.T) {
	table := buildColorTable(t)
	if err := table.Delete(Coord{3, 1}); err != nil { // removes pink
		t.Fatalf("Delete: %v", err)
	}
	if len(table.Cols()) != 2 {
		t.Errorf("Cols length = %d after delete, want 2", len(table.Cols()))
	}
}

// assertViewsConsistent checks every view against a from-scratch scan of the
// cells. Whatever mix of cheap and full refreshes produced the views, the
// result must match.
func assertViewsConsistent(t *testing.T, table *Table) {
	t.Helper()
	for _, row := range table.Rows() {
		var owned, caught int
		for _, cell := range table.Cells() {
			if cell.Min().Y == row.Pos() {
				owned++
			}
			if cell.Min().Y <= row.Pos() && row.Pos() <= cell.Max().Y {
				caught++
			}
		}
		if len(row.OwnedCells()) != owned || len(row.CaughtCells()) != caught {
			t.Errorf("row %d views stale: owned %d/%d caught %d/%d",
				row.Pos(), len(row.OwnedCells()), owned, len(row.CaughtCells()), caught)
		}
	}
	for _, col := range table.Cols() {
		var owned, caught int
		for _, cell := range table.Cells() {
			if cell.Min().X == col.Pos() {
				owned++
			}
			if cell.Min().X <= col.Pos() && col.Pos() <= cell.Max().X {
				caught++
			}
		}
		if len(col.OwnedCells()) != owned || len(col.CaughtCells()) != caught {
			t.Errorf("col %d views stale: owned %d/%d caught %d/%d",
				col.Pos(), len(col.OwnedCells()), owned, len(col.CaughtCells()), caught)
		}
	}
}

// ============================================================================
// Padding and Mutation Tests
// ============================================================================

func TestTableFillMissing(t *testing.T) {
	table := buildColorTable(t)
	bb, _ := table.BoundingBox()
	if err := table.FillMissing(bb, nil, NatureBody); err != nil {
		t.Fatalf("FillMissing: %v", err)
	}
	// (3,2) was the only hole
	if table.Len() != 4 {
		t.Errorf("Len = %d after fill, want 4", table.Len())
	}
	cell, err := table.Get(Coord{3, 2})
	if err != nil {
		t.Fatalf("Get(C2): %v", err)
	}
	if cell.String() != "" || cell.Nature() != NatureBody {
		t.Errorf("placeholder = %q nature %q, want empty body cell", cell.String(), cell.Nature())
	}
	assertViewsConsistent(t, table)
}

func TestTableMerge(t *testing.T) {
	table := buildColorTable(t)
	cell, err := table.Merge(Coord{2, 1}, Coord{3, 2}, func(a, b Content) (Content, error) {
		return Text(a.PlainText() + "/" + b.PlainText()), nil
	})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if cell.String() != "pink/blue" || cell.Box() != mustBox(t, 2, 1, 3, 2) {
		t.Errorf("merged = %q at %v, want pink/blue at B1:C2", cell.String(), cell.Box())
	}
	assertViewsConsistent(t, table)
}

func TestTableStyles(t *testing.T) {
	table := buildColorTable(t)
	table.SetStyle("frame", "all")
	if table.Style("frame") != "all" {
		t.Error("table style not stored")
	}
	if table.Nature() != NatureBody {
		t.Errorf("default table nature = %q, want body", table.Nature())
	}
}

func cellTexts(cells []*Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

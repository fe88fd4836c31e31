package model

import (
	"errors"
	"testing"
)

// ============================================================================
// Content Tests
// ============================================================================

func TestAppendContent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Content
		expected Content
	}{
		{"text text", Text("A"), Text("B"), Text("AB")},
		{"fragment fragment", Fragment("<p>a</p>"), Fragment("<p>b</p>"), Fragment("<p>a</p><p>b</p>")},
		{"nil left", nil, Text("B"), Text("B")},
		{"nil right", Text("A"), nil, Text("A")},
		{"nil both", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendContent(tt.a, tt.b)
			if err != nil {
				t.Fatalf("AppendContent error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("AppendContent = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppendContentMismatch(t *testing.T) {
	if _, err := AppendContent(Text("A"), Fragment("<p/>")); !errors.Is(err, ErrContentMismatch) {
		t.Errorf("error = %v, want ErrContentMismatch", err)
	}
}

// ============================================================================
// Cell Tests
// ============================================================================

func TestNewCellDefaults(t *testing.T) {
	c := NewCell(Text("c1"))
	if c.Min() != (Coord{1, 1}) {
		t.Errorf("Min = %v, want (1,1)", c.Min())
	}
	if c.Size() != (Size{1, 1}) {
		t.Errorf("Size = %v, want (1 x 1)", c.Size())
	}
	if c.Nature() != NatureBody {
		t.Errorf("Nature = %q, want body", c.Nature())
	}
	if c.String() != "c1" {
		t.Errorf("String = %q, want c1", c.String())
	}
}

func TestNewSpannedCell(t *testing.T) {
	c, err := NewSpannedCell(Text("c"), Coord{5, 3}, Size{3, 2})
	if err != nil {
		t.Fatalf("NewSpannedCell error: %v", err)
	}
	if c.Box() != mustBox(t, 5, 3, 7, 4) {
		t.Errorf("Box = %v, want E3:G4", c.Box())
	}

	if _, err := NewSpannedCell(Text("c"), Coord{0, 1}, Size{1, 1}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("invalid position error = %v, want ErrInvalidBounds", err)
	}
}

func TestCellMoveTo(t *testing.T) {
	c, err := NewSpannedCell(Text("c1"), Coord{1, 1}, Size{3, 2})
	if err != nil {
		t.Fatalf("NewSpannedCell error: %v", err)
	}
	moved, err := c.MoveTo(Coord{5, 3})
	if err != nil {
		t.Fatalf("MoveTo error: %v", err)
	}
	if moved.Min() != (Coord{5, 3}) || moved.Max() != (Coord{7, 4}) {
		t.Errorf("moved box = %v, want E3:G4", moved.Box())
	}
	if c.Min() != (Coord{1, 1}) {
		t.Error("MoveTo mutated the receiver")
	}
}

func TestCellStylesCopied(t *testing.T) {
	styles := map[string]string{"color": "red"}
	c := NewCell(Text("c"))
	c.SetStyles(styles)
	styles["color"] = "blue"
	if c.Style("color") != "red" {
		t.Error("SetStyles did not copy the map")
	}

	moved, err := c.MoveTo(Coord{2, 2})
	if err != nil {
		t.Fatalf("MoveTo error: %v", err)
	}
	moved.SetStyle("color", "green")
	if c.Style("color") != "red" {
		t.Error("transformed cell aliases the original style map")
	}
}

func TestCellContainsCoord(t *testing.T) {
	c, err := NewSpannedCell(Text("c"), Coord{5, 3}, Size{3, 2})
	if err != nil {
		t.Fatalf("NewSpannedCell error: %v", err)
	}
	if !c.ContainsCoord(Coord{7, 4}) || !c.ContainsCoord(Coord{6, 3}) {
		t.Error("expected coordinates inside the cell")
	}
	if c.ContainsCoord(Coord{8, 3}) {
		t.Error("coordinate outside the cell reported inside")
	}
}

func TestCellLess(t *testing.T) {
	a := NewCell(Text("a"))
	b, err := NewCellAt(Text("b"), Coord{2, 1})
	if err != nil {
		t.Fatalf("NewCellAt error: %v", err)
	}
	if !a.Less(b) || b.Less(a) {
		t.Error("cells should order by box")
	}
}

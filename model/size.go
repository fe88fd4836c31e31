package model

import "fmt"

// Size is the extent of a cell: Width is the number of spanned columns and
// Height the number of spanned rows. A cell cannot have a null or negative
// size, but intermediate calculations (shrinking a span, for instance) may
// produce one.
type Size struct {
	Width, Height int
}

// String returns a "(w x h)" form, e.g. "(2 x 1)".
func (s Size) String() string {
	return fmt.Sprintf("(%d x %d)", s.Width, s.Height)
}

// Add increases the size by another size.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub decreases the size by another size.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Scale multiplies both dimensions by a factor.
func (s Size) Scale(factor int) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Neg negates both dimensions.
func (s Size) Neg() Size {
	return Size{Width: -s.Width, Height: -s.Height}
}

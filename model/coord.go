package model

import (
	"fmt"
	"strconv"
)

// Coord is the position of a cell in a grid: X is the left column, Y is the
// top row. Grid coordinates are 1-indexed; (1, 1) is the top-left cell.
type Coord struct {
	X, Y int
}

// String returns the spreadsheet-style form of the coordinate, e.g. "E6"
// for (5, 6).
func (c Coord) String() string {
	letters, err := IntToAlphabet(c.X)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return letters + strconv.Itoa(c.Y)
}

// ParseCoord parses a spreadsheet-style coordinate like "E6" or "AA100".
func ParseCoord(s string) (Coord, error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return Coord{}, fmt.Errorf("%w: invalid coordinate %q", ErrInvalidBounds, s)
	}
	x, err := AlphabetToInt(s[:i])
	if err != nil {
		return Coord{}, err
	}
	y, err := strconv.Atoi(s[i:])
	if err != nil || y < 1 {
		return Coord{}, fmt.Errorf("%w: invalid row number in %q", ErrInvalidBounds, s)
	}
	return Coord{X: x, Y: y}, nil
}

// Add moves the coordinate by the given size.
func (c Coord) Add(s Size) Coord {
	return Coord{X: c.X + s.Width, Y: c.Y + s.Height}
}

// Sub moves the coordinate back by the given size.
func (c Coord) Sub(s Size) Coord {
	return Coord{X: c.X - s.Width, Y: c.Y - s.Height}
}

// Less orders coordinates by row first, then by column.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

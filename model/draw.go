package model

import "strings"

// Grid rendering is tile based: every (column, row) slot of the bounding
// box is painted with a small character tile whose borders depend on
// whether the slot starts a cell ("left"/"top") and whether it sits on the
// grid's outer edge ("right"/"bottom"). Cell text appears once, in the
// center slot of the cell's box.

const tileBodyWidth = 9

// tileLines renders one slot as two or three text lines.
func tileLines(text string, left, top, right, bottom bool) []string {
	border := func(l bool) string {
		s := "-"
		if l {
			s = "+"
		}
		s += strings.Repeat("-", tileBodyWidth+2)
		if right {
			s += "+"
		}
		return s
	}

	var first string
	if top {
		first = border(left)
	} else {
		first = " "
		if left {
			first = "|"
		}
		first += strings.Repeat(" ", tileBodyWidth+2)
		if right {
			first += "|"
		}
	}

	mid := "  "
	if left {
		mid = "| "
	}
	mid += center(text, tileBodyWidth) + " "
	if right {
		mid += "|"
	}

	lines := []string{first, mid}
	if bottom {
		lines = append(lines, border(left))
	}
	return lines
}

// center pads the text to the given width, centered, truncating if needed.
func center(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	pad := width - len(runes)
	leftPad := pad / 2
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", pad-leftPad)
}

// drawGrid renders a grid as text, one tile per bounding-box slot.
// An empty grid renders as "".
func drawGrid(g *Grid) string {
	bb, ok := g.BoundingBox()
	if !ok {
		return ""
	}
	var out []string
	for rowIdx := bb.Min.Y; rowIdx <= bb.Max.Y; rowIdx++ {
		var tiles [][]string
		for colIdx := bb.Min.X; colIdx <= bb.Max.X; colIdx++ {
			at := Coord{X: colIdx, Y: rowIdx}
			box := BoxAt(at)
			text := ""
			if cell, err := g.Get(at); err == nil {
				box = cell.Box()
				text = cell.String()
			}
			// The text is painted only in the center slot of the box.
			if (box.Min.X+box.Max.X)/2 != colIdx || (box.Min.Y+box.Max.Y)/2 != rowIdx {
				text = ""
			}
			tiles = append(tiles, tileLines(text,
				box.Min.X == colIdx,
				box.Min.Y == rowIdx,
				bb.Max.X == colIdx,
				bb.Max.Y == rowIdx,
			))
		}
		for line := range tiles[0] {
			var sb strings.Builder
			for _, tile := range tiles {
				sb.WriteString(tile[line])
			}
			out = append(out, sb.String())
		}
	}
	return strings.Join(out, "\n")
}

// Package ooxml parses tables from wordprocessing markup (w:tbl) into the
// shared table model. Wordprocessing documents are a source dialect only:
// there is no builder.
//
// Vertical merges are encoded as vMerge restart/continue runs; a continue
// cell grows the merge group started on an earlier row instead of becoming
// a cell of its own.
package ooxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/tableconv/colors"
	"github.com/tsawler/tableconv/internal/xmlutil"
	"github.com/tsawler/tableconv/model"
	"github.com/tsawler/tableconv/units"
)

var vAlignStyles = map[string]string{
	"top":    "top",
	"center": "middle",
	"bottom": "bottom",
	"both":   "w-both",
}

var jcStyles = map[string]string{
	"start":      "left",
	"left":       "left",
	"end":        "right",
	"right":      "right",
	"center":     "center",
	"both":       "justify",
	"distribute": "justify",
}

// Parser reads wordprocessing tables into model tables.
type Parser struct {
	// Placeholder is the content given to cells created to pad ragged rows.
	Placeholder model.Content
}

// NewParser returns a wordprocessing parser.
func NewParser() *Parser { return &Parser{} }

// Parse returns one model table per top-level w:tbl element found in the
// document.
func (p *Parser) Parse(r io.Reader) ([]*model.Table, error) {
	dec := xmlutil.NewDecoder(r)
	var tables []*model.Table
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return tables, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ooxml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "tbl" {
			continue
		}
		var src tblXML
		if err := dec.DecodeElement(&src, &start); err != nil {
			return nil, fmt.Errorf("ooxml: decode table: %w", err)
		}
		table, err := p.parseTable(&src)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
}

func (p *Parser) parseTable(src *tblXML) (*model.Table, error) {
	table, err := model.NewTable()
	if err != nil {
		return nil, err
	}
	if src.Props.Style.Val != "" {
		table.SetStyle("x-tbl-style", src.Props.Style.Val)
	}
	if bg := fillColor(src.Props.Shd); bg != "" {
		table.SetStyle("background-color", bg)
	}

	for i, gridCol := range src.Grid.Cols {
		if w, err := strconv.ParseFloat(gridCol.W, 64); err == nil {
			pts, err := units.Convert(w, units.Twip, units.Point)
			if err != nil {
				return nil, err
			}
			table.Col(i + 1).SetStyle("width", fmt.Sprintf("%.2fpt", pts))
		}
	}

	for i := range src.Rows {
		if err := p.parseRow(table, &src.Rows[i], i+1); err != nil {
			return nil, err
		}
	}
	if bb, ok := table.BoundingBox(); ok {
		if err := table.FillMissing(bb, p.Placeholder, model.NatureBody); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (p *Parser) parseRow(table *model.Table, src *trXML, pos int) error {
	nature := model.NatureBody
	if h := src.Props.TblHeader; h != nil && h.Val != "false" && h.Val != "0" {
		nature = model.NatureHeader
	}
	row := table.Row(pos)
	row.SetNature(nature)

	if h := src.Props.Height; h != nil {
		if style, ok := map[string]string{"atLeast": "min-height", "exact": "height"}[h.HRule]; ok {
			if twips, err := strconv.ParseFloat(h.Val, 64); err == nil {
				pts, err := units.Convert(twips, units.Twip, units.Point)
				if err != nil {
					return err
				}
				row.SetStyle(style, fmt.Sprintf("%.2fpt", pts))
			}
		}
	}

	colPos := 0
	for i := range src.Cells {
		if err := p.parseCell(table, row, &src.Cells[i], pos, &colPos); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseCell(table *model.Table, row *model.RowView, src *tcXML, rowPos int, colPos *int) error {
	width := 1
	if gs := src.Props.GridSpan; gs != nil {
		if n, err := strconv.Atoi(gs.Val); err == nil && n > 1 {
			width = n
		}
	}
	*colPos += width

	// A vMerge cell with no val, or val "continue", extends the merge
	// group started above it; only "restart" opens a fresh cell.
	if vm := src.Props.VMerge; vm != nil && (vm.Val == "" || vm.Val == "continue") {
		_, err := table.Expand(model.Coord{X: *colPos, Y: rowPos - 1}, 0, 1, nil)
		if err != nil {
			return fmt.Errorf("ooxml: vMerge continuation at row %d, col %d: %w", rowPos, *colPos, err)
		}
		return nil
	}

	styles := map[string]string{}
	if va := src.Props.VAlign; va != nil {
		val := va.Val
		if val == "" {
			val = "top"
		}
		if v, ok := vAlignStyles[val]; ok {
			styles["vertical-align"] = v
		}
	}
	if align := dominantAlignment(src.Paras); align != "" {
		styles["align"] = align
	}
	if bg := fillColor(src.Props.Shd); bg != "" {
		styles["background-color"] = bg
	}

	var content model.Content
	if text := cellText(src.Paras); text != "" {
		content = model.Text(text)
	}

	cell, err := row.InsertCell(content, width, 1)
	if err != nil {
		return err
	}
	cell.MergeStyles(styles)
	return nil
}

// dominantAlignment picks the most common paragraph justification of the
// cell; empty when most paragraphs carry none.
func dominantAlignment(paras []pXML) string {
	counts := map[string]int{}
	order := []string{}
	for _, para := range paras {
		val := ""
		if para.Props.Jc != nil {
			val = para.Props.Jc.Val
		}
		if counts[val] == 0 {
			order = append(order, val)
		}
		counts[val]++
	}
	best, bestCount := "", 0
	for _, val := range order {
		if counts[val] > bestCount {
			best, bestCount = val, counts[val]
		}
	}
	return jcStyles[best]
}

func cellText(paras []pXML) string {
	var lines []string
	for _, para := range paras {
		var sb strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Texts {
				sb.WriteString(t)
			}
		}
		lines = append(lines, sb.String())
	}
	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

// fillColor normalizes a shading fill to a hex color style value.
func fillColor(shd *shdXML) string {
	if shd == nil || shd.Fill == "" || shd.Fill == "auto" {
		return ""
	}
	c, err := colors.ParseHex("#" + shd.Fill)
	if err != nil {
		return ""
	}
	return colors.FormatHex6(c)
}

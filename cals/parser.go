// Package cals converts between CALS table markup and the shared table
// model. The parser reads table/tgroup/colspec/thead/tbody/tfoot/row/entry
// elements; the builder emits them back, recomputing spans and separator
// attributes from cell geometry.
package cals

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/tableconv/internal/xmlutil"
	"github.com/tsawler/tableconv/model"
	"github.com/tsawler/tableconv/units"
)

var orientStyles = map[string]string{"land": "landscape", "port": "portrait"}
var pgwideStyles = map[string]string{"0": "2", "1": "1"}
var valignStyles = map[string]string{"top": "top", "middle": "middle", "bottom": "bottom"}
var alignStyles = map[string]string{
	"left": "left", "right": "right", "center": "center", "justify": "justify", "char": "left",
}

// Parser reads CALS markup into model tables.
type Parser struct {
	// WidthUnit is the unit table and column widths are normalized to.
	WidthUnit units.Unit

	// Placeholder is the content given to cells created to pad ragged rows.
	Placeholder model.Content
}

// NewParser returns a parser normalizing widths to millimeters.
func NewParser() *Parser {
	return &Parser{WidthUnit: units.Millimeter}
}

// Parse returns one model table per top-level <table> element found in the
// document. Tables nested inside entries stay embedded in the cell content.
func (p *Parser) Parse(r io.Reader) ([]*model.Table, error) {
	dec := xmlutil.NewDecoder(r)
	var tables []*model.Table
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return tables, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cals: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "table" {
			continue
		}
		var src tableXML
		if err := dec.DecodeElement(&src, &start); err != nil {
			return nil, fmt.Errorf("cals: decode table: %w", err)
		}
		table, err := p.parseTable(&src)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
}

func (p *Parser) parseTable(src *tableXML) (*model.Table, error) {
	table, err := model.NewTable()
	if err != nil {
		return nil, err
	}

	styles := frameStyles(src.Frame)
	if v, ok := sepValues[src.Colsep]; ok {
		styles["x-cell-border-right"] = v
	}
	if v, ok := sepValues[src.Rowsep]; ok {
		styles["x-cell-border-bottom"] = v
	}
	if v, ok := orientStyles[src.Orient]; ok {
		styles["x-sect-orient"] = v
	}
	if v, ok := pgwideStyles[src.Pgwide]; ok {
		styles["x-sect-cols"] = v
	}
	if src.Bgcolor != "" {
		styles["background-color"] = src.Bgcolor
	}
	if src.Width != "" {
		styles["width"] = formatWidth(src.Width, p.WidthUnit)
	}
	table.MergeStyles(styles)
	if src.Tabstyle != "" {
		table.SetNature(src.Tabstyle)
	}

	rowPos := 0
	for i := range src.Groups {
		if err := p.parseGroup(table, &src.Groups[i], &rowPos); err != nil {
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

func (p *Parser) parseGroup(table *model.Table, group *tgroupXML, rowPos *int) error {
	if v, ok := sepValues[group.Colsep]; ok {
		table.SetStyle("x-cell-border-right", v)
	}
	if v, ok := sepValues[group.Rowsep]; ok {
		table.SetStyle("x-cell-border-bottom", v)
	}
	if group.Tgroupstyle != "" {
		table.SetNature(groupNature(table.Nature(), group.Tgroupstyle))
	}

	for i := range group.Colspecs {
		p.parseColspec(table, &group.Colspecs[i], i+1)
	}

	if group.Head != nil {
		if err := p.parseSection(table, group.Head, model.NatureHeader, rowPos); err != nil {
			return err
		}
	}
	if group.Foot != nil {
		if err := p.parseSection(table, group.Foot, model.NatureFooter, rowPos); err != nil {
			return err
		}
	}
	for i := range group.Bodies {
		if err := p.parseSection(table, &group.Bodies[i], model.NatureBody, rowPos); err != nil {
			return err
		}
	}
	return nil
}

// groupNature folds a @tgroupstyle into the table nature: the style
// replaces the last word of the current nature, or becomes the nature when
// there is none yet.
func groupNature(nature, tgroupstyle string) string {
	if nature == "" || nature == model.NatureBody {
		return tgroupstyle
	}
	parts := strings.Fields(nature)
	parts[len(parts)-1] = tgroupstyle
	return strings.Join(parts, " ")
}

func (p *Parser) parseColspec(table *model.Table, spec *colspecXML, pos int) {
	if n, err := strconv.Atoi(spec.Colnum); err == nil && n > 0 {
		pos = n
	}
	col := table.Col(pos)
	if v, ok := sepValues[spec.Colsep]; ok {
		col.SetStyle("border-right", v)
	}
	if v, ok := sepValues[spec.Rowsep]; ok {
		col.SetStyle("border-bottom", v)
	}
	if spec.Colwidth != "" {
		col.SetStyle("width", spec.Colwidth)
	}
	if v, ok := alignStyles[spec.Align]; ok {
		col.SetStyle("align", v)
	}
}

func (p *Parser) parseSection(table *model.Table, section *sectionXML, nature string, rowPos *int) error {
	for i := range section.Rows {
		*rowPos++
		if err := p.parseRow(table, &section.Rows[i], section, nature, *rowPos); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseRow(table *model.Table, src *rowXML, section *sectionXML, nature string, rowPos int) error {
	styles := map[string]string{}
	if v, ok := valignStyles[section.Valign]; ok {
		styles["vertical-align"] = v
	}
	if v, ok := valignStyles[src.Valign]; ok {
		styles["vertical-align"] = v
	}
	if v, ok := sepValues[src.Rowsep]; ok {
		styles["border-bottom"] = v
	}
	if src.Bgcolor != "" {
		styles["background-color"] = src.Bgcolor
	}
	if src.Rowstyle != "" {
		styles["rowstyle"] = src.Rowstyle
	}

	row := table.Row(rowPos)
	row.SetNature(nature)
	row.SetStyles(styles)

	for i := range src.Entries {
		if err := p.parseEntry(row, &src.Entries[i]); err != nil {
			return err
		}
	}

	// pad the row to the declared column count
	if cols := len(table.Cols()); cols > 0 {
		box, err := model.NewBox(1, rowPos, cols, rowPos)
		if err != nil {
			return err
		}
		if err := table.FillMissing(box, p.Placeholder, nature); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseEntry(row *model.RowView, entry *entryXML) error {
	styles := map[string]string{}
	if v, ok := sepValues[entry.Colsep]; ok {
		styles["border-right"] = v
	}
	if v, ok := sepValues[entry.Rowsep]; ok {
		styles["border-bottom"] = v
	}
	if entry.Bgcolor != "" {
		styles["background-color"] = entry.Bgcolor
	}
	if v, ok := valignStyles[entry.Valign]; ok {
		styles["vertical-align"] = v
	}
	if v, ok := alignStyles[entry.Align]; ok {
		styles["align"] = v
	}
	if entry.Cellstyle != "" {
		styles["cellstyle"] = entry.Cellstyle
	}

	width := 1
	if start, end := leadingNumber(entry.Namest), leadingNumber(entry.Nameend); start > 0 && end >= start {
		width = end - start + 1
	}
	height := 1
	if more, err := strconv.Atoi(entry.Morerows); err == nil && more > 0 {
		height = more + 1
	}

	var content model.Content
	if strings.TrimSpace(entry.Inner) != "" {
		content = model.Fragment(entry.Inner)
	} else {
		styles["x-cell-empty"] = "true"
	}

	cell, err := row.InsertCell(content, width, height)
	if err != nil {
		return err
	}
	cell.MergeStyles(styles)
	return nil
}

// leadingNumber extracts the column number out of a column name like "c3";
// zero when there is none.
func leadingNumber(name string) int {
	start := -1
	for i := 0; i < len(name); i++ {
		if name[i] >= '0' && name[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(name[start:end])
	return n
}

package cals

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"

	"github.com/tsawler/tableconv/model"
	"github.com/tsawler/tableconv/units"
)

// natureOrder sorts row groups into the CALS content model order:
// thead, tfoot, then tbody.
var natureOrder = map[string]int{
	model.NatureHeader: 0,
	model.NatureFooter: 1,
	model.NatureBody:   2,
}

var buildValign = map[string]string{
	"top": "top", "middle": "middle", "bottom": "bottom",
	"baseline": "bottom",
	// extension emitted by the wordprocessing parser
	"w-both": "bottom",
}

// Builder writes model tables as CALS markup.
type Builder struct {
	// WidthUnit is the unit used for @width and @colwidth attributes.
	WidthUnit units.Unit

	// TableInTgroup moves @colsep, @rowsep and the style attribute from
	// <table> down to <tgroup>.
	TableInTgroup bool
}

// NewBuilder returns a builder emitting widths in millimeters.
func NewBuilder() *Builder {
	return &Builder{WidthUnit: units.Millimeter}
}

// Build renders the table as an indented CALS <table> element.
func (b *Builder) Build(table *model.Table) ([]byte, error) {
	elem, err := b.buildTable(table)
	if err != nil {
		return nil, err
	}
	out, err := xml.MarshalIndent(elem, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cals: %w", err)
	}
	return out, nil
}

func (b *Builder) buildTable(table *model.Table) (*tableXML, error) {
	styles := table.Styles()

	elem := &tableXML{Frame: frameAttr(styles)}
	tableColsep := orDefault(sepAttr(styles, "x-cell-border-right"), "0")
	tableRowsep := orDefault(sepAttr(styles, "x-cell-border-bottom"), "0")
	if !b.TableInTgroup {
		elem.Colsep = tableColsep
		elem.Rowsep = tableRowsep
		if nature := table.Nature(); nature != model.NatureBody {
			elem.Tabstyle = nature
		}
	}
	if v, ok := styles["x-sect-orient"]; ok {
		elem.Orient = map[string]string{"landscape": "land", "portrait": "port"}[v]
	}
	if v, ok := styles["x-sect-cols"]; ok {
		if v == "1" {
			elem.Pgwide = "1"
		} else {
			elem.Pgwide = "0"
		}
	}
	if v, ok := styles["background-color"]; ok {
		elem.Bgcolor = v
	}
	if v, ok := styles["width"]; ok {
		elem.Width = formatWidth(v, b.WidthUnit)
	}

	group, err := b.buildGroup(table, tableColsep, tableRowsep)
	if err != nil {
		return nil, err
	}
	elem.Groups = []tgroupXML{*group}
	return elem, nil
}

func (b *Builder) buildGroup(table *model.Table, tableColsep, tableRowsep string) (*tgroupXML, error) {
	group := &tgroupXML{Cols: strconv.Itoa(len(table.Cols()))}
	if b.TableInTgroup {
		group.Colsep = tableColsep
		group.Rowsep = tableRowsep
		if nature := table.Nature(); nature != model.NatureBody {
			group.Tgroupstyle = nature
		}
	}

	for _, col := range table.Cols() {
		group.Colspecs = append(group.Colspecs, b.buildColspec(col, tableColsep, tableRowsep))
	}

	bb, _ := table.BoundingBox()
	type rowGroup struct {
		nature string
		rows   []rowXML
	}
	var groups []*rowGroup
	for _, row := range table.Rows() {
		elem, err := b.buildRow(table, row, bb, tableColsep, tableRowsep)
		if err != nil {
			return nil, err
		}
		nature := row.Nature()
		if len(groups) == 0 || groups[len(groups)-1].nature != nature {
			groups = append(groups, &rowGroup{nature: nature})
		}
		last := groups[len(groups)-1]
		last.rows = append(last.rows, *elem)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return sectionRank(groups[i].nature) < sectionRank(groups[j].nature)
	})

	for _, g := range groups {
		switch g.nature {
		case model.NatureHeader:
			if group.Head == nil {
				group.Head = &sectionXML{}
			}
			group.Head.Rows = append(group.Head.Rows, g.rows...)
		case model.NatureFooter:
			if group.Foot == nil {
				group.Foot = &sectionXML{}
			}
			group.Foot.Rows = append(group.Foot.Rows, g.rows...)
		default:
			group.Bodies = append(group.Bodies, sectionXML{Rows: g.rows})
		}
	}
	return group, nil
}

func sectionRank(nature string) int {
	if rank, ok := natureOrder[nature]; ok {
		return rank
	}
	return natureOrder[model.NatureBody]
}

func (b *Builder) buildColspec(col *model.ColView, tableColsep, tableRowsep string) colspecXML {
	styles := col.Styles()
	spec := colspecXML{
		Colnum:  strconv.Itoa(col.Pos()),
		Colname: fmt.Sprintf("c%d", col.Pos()),
	}
	if v, ok := styles["width"]; ok {
		spec.Colwidth = formatWidth(v, b.WidthUnit)
	}
	if v, ok := styles["align"]; ok && v != "" {
		spec.Align = v
	}
	if sep := sepAttr(styles, "border-right"); sep != "" && sep != tableColsep {
		spec.Colsep = sep
	}
	if sep := sepAttr(styles, "border-bottom"); sep != "" && sep != tableRowsep {
		spec.Rowsep = sep
	}
	return spec
}

func (b *Builder) buildRow(table *model.Table, row *model.RowView, bb model.Box, tableColsep, tableRowsep string) (*rowXML, error) {
	styles := row.Styles()
	elem := &rowXML{}
	if v, ok := buildValign[styles["vertical-align"]]; ok {
		elem.Valign = v
	}
	if sep := sepAttr(styles, "border-bottom"); sep != "" && sep != tableRowsep {
		elem.Rowsep = sep
	}
	if v, ok := styles["background-color"]; ok {
		elem.Bgcolor = v
	}
	if v, ok := styles["rowstyle"]; ok {
		elem.Rowstyle = v
	}

	for _, cell := range row.OwnedCells() {
		entry, err := b.buildEntry(cell, bb, tableColsep, tableRowsep)
		if err != nil {
			return nil, err
		}
		elem.Entries = append(elem.Entries, *entry)
	}
	return elem, nil
}

func (b *Builder) buildEntry(cell *model.Cell, bb model.Box, tableColsep, tableRowsep string) (*entryXML, error) {
	styles := cell.Styles()
	entry := &entryXML{}

	// separators on the outer edge are the frame's concern
	if cell.Max().X != bb.Max.X {
		if sep := sepAttr(styles, "border-right"); sep != "" && sep != tableColsep {
			entry.Colsep = sep
		}
	}
	if cell.Max().Y != bb.Max.Y {
		if sep := sepAttr(styles, "border-bottom"); sep != "" && sep != tableRowsep {
			entry.Rowsep = sep
		}
	}
	if v, ok := buildValign[styles["vertical-align"]]; ok {
		entry.Valign = v
	}
	if v, ok := styles["align"]; ok && v != "" {
		entry.Align = v
	}
	if cell.Width() > 1 {
		entry.Namest = fmt.Sprintf("c%d", cell.Min().X)
		entry.Nameend = fmt.Sprintf("c%d", cell.Max().X)
	}
	if cell.Height() > 1 {
		entry.Morerows = strconv.Itoa(cell.Height() - 1)
	}
	if v, ok := styles["background-color"]; ok {
		entry.Bgcolor = v
	}
	if v, ok := styles["cellstyle"]; ok {
		entry.Cellstyle = v
	}

	inner, err := contentMarkup(cell.Content)
	if err != nil {
		return nil, err
	}
	entry.Inner = inner
	return entry, nil
}

// contentMarkup renders cell content as raw inner XML: fragments pass
// through, plain text gets escaped.
func contentMarkup(content model.Content) (string, error) {
	switch c := content.(type) {
	case nil:
		return "", nil
	case model.Fragment:
		return string(c), nil
	case model.Text:
		var buf bytes.Buffer
		if err := xml.EscapeText(&buf, []byte(c)); err != nil {
			return "", fmt.Errorf("cals: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("cals: unsupported content %T", content)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

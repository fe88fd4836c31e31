// Package formex converts between Formex 4 table corpora and the shared
// table model. Formex is the format of the publications of the European
// Union; a table body is a CORPUS of ROW elements holding CELL elements.
//
// Empty cells are marked with an explicit <IE/> tag on output and
// recognized on input.
package formex

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/tableconv/internal/xmlutil"
	"github.com/tsawler/tableconv/model"
)

// typeNatures maps ROW/@TYPE and CELL/@TYPE values to natures. ALIAS rows
// repeat column headers on later pages, so they count as headers.
var typeNatures = map[string]string{
	"ALIAS":  model.NatureHeader,
	"HEADER": model.NatureHeader,
	"NORMAL": model.NatureBody,
	"NOTCOL": model.NatureBody,
	"TOTAL":  model.NatureBody,
}

type corpusXML struct {
	XMLName xml.Name    `xml:"CORPUS"`
	Rows    []fmxRowXML `xml:"ROW"`
}

type fmxRowXML struct {
	Type  string       `xml:"TYPE,attr,omitempty"`
	Cells []fmxCellXML `xml:"CELL"`
}

type fmxCellXML struct {
	Col     string `xml:"COL,attr,omitempty"`
	Colspan string `xml:"COLSPAN,attr,omitempty"`
	Rowspan string `xml:"ROWSPAN,attr,omitempty"`
	Type    string `xml:"TYPE,attr,omitempty"`
	Inner   string `xml:",innerxml"`
}

var ieTag = regexp.MustCompile(`^<IE\s*(/>|>\s*</IE>)$`)

// Parser reads Formex corpora into model tables.
type Parser struct {
	// Placeholder is the content given to cells created to pad ragged rows.
	Placeholder model.Content
}

// NewParser returns a Formex parser.
func NewParser() *Parser { return &Parser{} }

// Parse returns one model table per <CORPUS> element found in the document.
func (p *Parser) Parse(r io.Reader) ([]*model.Table, error) {
	dec := xmlutil.NewDecoder(r)
	var tables []*model.Table
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return tables, nil
		}
		if err != nil {
			return nil, fmt.Errorf("formex: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "CORPUS" {
			continue
		}
		var src corpusXML
		if err := dec.DecodeElement(&src, &start); err != nil {
			return nil, fmt.Errorf("formex: decode corpus: %w", err)
		}
		table, err := p.parseCorpus(&src)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
}

func (p *Parser) parseCorpus(src *corpusXML) (*model.Table, error) {
	table, err := model.NewTable()
	if err != nil {
		return nil, err
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

func (p *Parser) parseRow(table *model.Table, src *fmxRowXML, pos int) error {
	nature, ok := typeNatures[src.Type]
	if !ok {
		nature = model.NatureBody
	}
	row := table.Row(pos)
	row.SetNature(nature)
	if src.Type != "" {
		// the original @TYPE survives conversion through the rowstyle
		row.SetStyle("rowstyle", "ROW-"+src.Type)
	}

	for i := range src.Cells {
		if err := p.parseCell(row, &src.Cells[i], src.Type); err != nil {
			return err
		}
	}

	// pad the row to the widest row seen so far
	if cols := len(table.Cols()); cols > 0 {
		box, err := model.NewBox(1, pos, cols, pos)
		if err != nil {
			return err
		}
		if err := table.FillMissing(box, p.Placeholder, nature); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseCell(row *model.RowView, src *fmxCellXML, rowType string) error {
	width := spanValue(src.Colspan)
	height := spanValue(src.Rowspan)

	styles := map[string]string{}
	nature := row.Nature()
	if n, ok := typeNatures[src.Type]; ok {
		nature = n
	}
	if orNormal(src.Type) != orNormal(rowType) {
		styles["cellstyle"] = src.Type
	}

	var content model.Content
	inner := strings.TrimSpace(src.Inner)
	switch {
	case inner == "" || ieTag.MatchString(inner):
		styles["x-cell-empty"] = "true"
	default:
		content = model.Fragment(src.Inner)
	}

	cell, err := row.InsertCell(content, width, height)
	if err != nil {
		return err
	}
	cell.SetNature(nature)
	cell.MergeStyles(styles)
	return nil
}

func spanValue(attr string) int {
	if n, err := strconv.Atoi(attr); err == nil && n > 1 {
		return n
	}
	return 1
}

// NORMAL is the implicit default of @TYPE.
func orNormal(t string) string {
	if t == "" {
		return "NORMAL"
	}
	return t
}

// Builder writes model tables as Formex corpora.
type Builder struct{}

// NewBuilder returns a Formex builder.
func NewBuilder() *Builder { return &Builder{} }

// Build renders the table as an indented <CORPUS> element.
func (b *Builder) Build(table *model.Table) ([]byte, error) {
	corpus := &corpusXML{}
	for _, row := range table.Rows() {
		elem := fmxRowXML{}
		if row.Nature() == model.NatureHeader {
			elem.Type = "HEADER"
		}
		for _, cell := range row.OwnedCells() {
			centry, err := b.buildCell(cell, row)
			if err != nil {
				return nil, err
			}
			elem.Cells = append(elem.Cells, *centry)
		}
		corpus.Rows = append(corpus.Rows, elem)
	}
	out, err := xml.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("formex: %w", err)
	}
	return out, nil
}

func (b *Builder) buildCell(cell *model.Cell, row *model.RowView) (*fmxCellXML, error) {
	elem := &fmxCellXML{Col: strconv.Itoa(cell.Min().X)}
	if cell.Nature() != row.Nature() {
		elem.Type = map[string]string{
			model.NatureHeader: "HEADER",
			model.NatureBody:   "NORMAL",
		}[cell.Nature()]
	}
	if v := cell.Style("cellstyle"); v != "" {
		elem.Type = v
	}
	if cell.Width() > 1 {
		elem.Colspan = strconv.Itoa(cell.Width())
	}
	if cell.Height() > 1 {
		elem.Rowspan = strconv.Itoa(cell.Height())
	}

	if cell.Style("x-cell-empty") == "true" || cell.Content == nil {
		elem.Inner = "<IE/>"
		return elem, nil
	}
	switch c := cell.Content.(type) {
	case model.Fragment:
		elem.Inner = string(c)
	case model.Text:
		var buf bytes.Buffer
		if err := xml.EscapeText(&buf, []byte(c)); err != nil {
			return nil, fmt.Errorf("formex: %w", err)
		}
		elem.Inner = buf.String()
	default:
		return nil, fmt.Errorf("formex: unsupported content %T", cell.Content)
	}
	return elem, nil
}

// Package htmltab converts between HTML tables and the shared table model.
// The parser walks a full document or fragment and collects every top-level
// <table>; the builder renders a model table back to markup with thead,
// tbody and tfoot sections.
package htmltab

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tableconv/colors"
	"github.com/tsawler/tableconv/model"
)

// Parser reads HTML tables into model tables.
type Parser struct {
	// Placeholder is the content given to cells created to pad ragged rows.
	Placeholder model.Content
}

// NewParser returns an HTML parser.
func NewParser() *Parser { return &Parser{} }

// Parse returns one model table per <table> element found in the document.
// Tables nested inside cells are flattened into the text of their outer
// cell, not returned separately.
func (p *Parser) Parse(r io.Reader) ([]*model.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmltab: parsing HTML: %w", err)
	}
	var tables []*model.Table
	for _, node := range findTables(doc) {
		table, err := p.parseTable(node)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// findTables collects table elements, without descending into them.
func findTables(n *html.Node) []*html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return []*html.Node{n}
	}
	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, findTables(c)...)
	}
	return found
}

func (p *Parser) parseTable(node *html.Node) (*model.Table, error) {
	table, err := model.NewTable()
	if err != nil {
		return nil, err
	}
	pos := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			err = p.parseSection(table, c, model.NatureHeader, &pos)
		case "tfoot":
			err = p.parseSection(table, c, model.NatureFooter, &pos)
		case "tbody":
			err = p.parseSection(table, c, model.NatureBody, &pos)
		case "tr":
			pos++
			err = p.parseRow(table, c, model.NatureBody, pos)
		}
		if err != nil {
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

func (p *Parser) parseSection(table *model.Table, section *html.Node, nature string, pos *int) error {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			*pos++
			if err := p.parseRow(table, c, nature, *pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) parseRow(table *model.Table, tr *html.Node, nature string, pos int) error {
	row := table.Row(pos)
	row.SetNature(nature)
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		if err := p.parseCell(row, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseCell(row *model.RowView, node *html.Node) error {
	width, height := 1, 1
	styles := map[string]string{}
	nature := row.Nature()
	if node.Data == "th" {
		nature = model.NatureHeader
	}
	for _, attr := range node.Attr {
		switch attr.Key {
		case "colspan":
			if n, err := strconv.Atoi(attr.Val); err == nil && n > 1 {
				width = n
			}
		case "rowspan":
			if n, err := strconv.Atoi(attr.Val); err == nil && n > 1 {
				height = n
			}
		case "align":
			styles["align"] = attr.Val
		case "valign":
			styles["vertical-align"] = attr.Val
		case "bgcolor":
			if c, err := colors.Parse(attr.Val); err == nil {
				styles["background-color"] = colors.FormatHex6(c)
			}
		case "style":
			parseCSS(attr.Val, styles)
		}
	}

	var content model.Content
	if text := textContent(node); text != "" {
		content = model.Text(text)
	}

	cell, err := row.InsertCell(content, width, height)
	if err != nil {
		return err
	}
	cell.SetNature(nature)
	cell.MergeStyles(styles)
	return nil
}

// parseCSS reads the style properties the builder emits back into the
// model's style keys. Unknown properties are ignored.
func parseCSS(css string, styles map[string]string) {
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		switch name {
		case "text-align":
			styles["align"] = value
		case "vertical-align":
			styles["vertical-align"] = value
		case "background-color":
			styles["background-color"] = value
		}
	}
}

// textContent extracts the text of a node and its descendants. A <br>
// becomes a newline.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// Builder writes model tables as HTML.
type Builder struct{}

// NewBuilder returns an HTML builder.
func NewBuilder() *Builder { return &Builder{} }

// Build renders the table as a <table> element. Header rows go to a thead,
// footer rows to a tfoot, everything else to a tbody, in that order.
func (b *Builder) Build(table *model.Table) ([]byte, error) {
	root := elem("table")
	var head, body, foot *html.Node
	for _, row := range table.Rows() {
		tr := elem("tr")
		for _, cell := range row.OwnedCells() {
			td, err := b.buildCell(cell)
			if err != nil {
				return nil, err
			}
			tr.AppendChild(td)
		}
		switch row.Nature() {
		case model.NatureHeader:
			if head == nil {
				head = elem("thead")
			}
			head.AppendChild(tr)
		case model.NatureFooter:
			if foot == nil {
				foot = elem("tfoot")
			}
			foot.AppendChild(tr)
		default:
			if body == nil {
				body = elem("tbody")
			}
			body.AppendChild(tr)
		}
	}
	for _, section := range []*html.Node{head, body, foot} {
		if section != nil {
			root.AppendChild(section)
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("htmltab: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) buildCell(cell *model.Cell) (*html.Node, error) {
	name := "td"
	if cell.Nature() == model.NatureHeader {
		name = "th"
	}
	node := elem(name)
	if cell.Width() > 1 {
		node.Attr = append(node.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.Width())})
	}
	if cell.Height() > 1 {
		node.Attr = append(node.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.Height())})
	}
	if css := inlineStyle(cell); css != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: css})
	}

	switch c := cell.Content.(type) {
	case nil:
	case model.Text:
		node.AppendChild(&html.Node{Type: html.TextNode, Data: string(c)})
	case model.Fragment:
		children, err := html.ParseFragment(strings.NewReader(string(c)), node)
		if err != nil {
			return nil, fmt.Errorf("htmltab: parsing fragment: %w", err)
		}
		for _, child := range children {
			node.AppendChild(child)
		}
	default:
		return nil, fmt.Errorf("htmltab: unsupported content %T", cell.Content)
	}
	return node, nil
}

// inlineStyle renders the cell styles the builder understands as CSS.
func inlineStyle(cell *model.Cell) string {
	var parts []string
	if v := cell.Style("background-color"); v != "" {
		parts = append(parts, "background-color: "+v)
	}
	if v := cell.Style("align"); v != "" {
		parts = append(parts, "text-align: "+v)
	}
	if v := cell.Style("vertical-align"); v != "" {
		parts = append(parts, "vertical-align: "+v)
	}
	return strings.Join(parts, "; ")
}

func elem(name string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
}

package tableconv

import (
	"bytes"
	"fmt"

	"github.com/tsawler/tableconv/cals"
	"github.com/tsawler/tableconv/format"
	"github.com/tsawler/tableconv/formex"
	"github.com/tsawler/tableconv/htmltab"
	"github.com/tsawler/tableconv/model"
	"github.com/tsawler/tableconv/ooxml"
	"github.com/tsawler/tableconv/units"
)

// Converter provides a fluent interface for converting table markup.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	source  []byte
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter with a copy of options. This
// ensures immutability; each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		source:  c.source,
		options: c.options.clone(),
		err:     c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Dialect sets the source dialect explicitly, skipping content detection.
//
// Example:
//
//	out, err := tableconv.Open("doc.xml").Dialect(format.OOXML).ToHTML()
func (c *Converter) Dialect(d format.Dialect) *Converter {
	newConv := c.clone()
	newConv.options.dialect = d
	return newConv
}

// WidthUnit sets the unit CALS widths are normalized to. The default is
// millimeters.
func (c *Converter) WidthUnit(u units.Unit) *Converter {
	newConv := c.clone()
	newConv.options.widthUnit = u
	return newConv
}

// CALS declares the source to be CALS markup.
func (c *Converter) CALS() *Converter { return c.Dialect(format.CALS) }

// Formex declares the source to be a Formex corpus.
func (c *Converter) Formex() *Converter { return c.Dialect(format.Formex) }

// OOXML declares the source to be wordprocessing markup.
func (c *Converter) OOXML() *Converter { return c.Dialect(format.OOXML) }

// HTML declares the source to be HTML.
func (c *Converter) HTML() *Converter { return c.Dialect(format.HTML) }

// Placeholder sets the content given to cells created to pad ragged rows.
// The default is empty cells.
func (c *Converter) Placeholder(content model.Content) *Converter {
	newConv := c.clone()
	newConv.options.placeholder = content
	return newConv
}

// CALSTableInTgroup moves table-level CALS attributes down to the tgroup
// element on output.
func (c *Converter) CALSTableInTgroup() *Converter {
	newConv := c.clone()
	newConv.options.calsTableInTgroup = true
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// SourceDialect returns the dialect the source was detected (or declared)
// to be.
func (c *Converter) SourceDialect() (format.Dialect, error) {
	if c.err != nil {
		return format.Unknown, c.err
	}
	if c.options.dialect != format.Unknown {
		return c.options.dialect, nil
	}
	return format.DetectFromContent(c.source), nil
}

// Tables parses the source and returns the model tables it contains.
func (c *Converter) Tables() ([]*model.Table, error) {
	dialect, err := c.SourceDialect()
	if err != nil {
		return nil, err
	}
	src := bytes.NewReader(c.source)
	switch dialect {
	case format.CALS:
		p := cals.NewParser()
		p.WidthUnit = c.options.widthUnit
		p.Placeholder = c.options.placeholder
		return p.Parse(src)
	case format.Formex:
		p := formex.NewParser()
		p.Placeholder = c.options.placeholder
		return p.Parse(src)
	case format.OOXML:
		p := ooxml.NewParser()
		p.Placeholder = c.options.placeholder
		return p.Parse(src)
	case format.HTML:
		p := htmltab.NewParser()
		p.Placeholder = c.options.placeholder
		return p.Parse(src)
	default:
		return nil, fmt.Errorf("tableconv: cannot determine source dialect")
	}
}

// ToCALS converts the source to CALS markup. Multiple tables are emitted
// one after another, separated by newlines.
func (c *Converter) ToCALS() ([]byte, error) {
	b := cals.NewBuilder()
	b.WidthUnit = c.options.widthUnit
	b.TableInTgroup = c.options.calsTableInTgroup
	return c.build(func(t *model.Table) ([]byte, error) { return b.Build(t) })
}

// ToFormex converts the source to Formex corpus markup.
func (c *Converter) ToFormex() ([]byte, error) {
	b := formex.NewBuilder()
	return c.build(func(t *model.Table) ([]byte, error) { return b.Build(t) })
}

// ToHTML converts the source to HTML markup.
func (c *Converter) ToHTML() ([]byte, error) {
	b := htmltab.NewBuilder()
	return c.build(func(t *model.Table) ([]byte, error) { return b.Build(t) })
}

func (c *Converter) build(buildOne func(*model.Table) ([]byte, error)) ([]byte, error) {
	tables, err := c.Tables()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for i, table := range tables {
		if i > 0 {
			buf.WriteByte('\n')
		}
		out, err := buildOne(table)
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

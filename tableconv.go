// Package tableconv provides a fluent API for converting tables between
// markup dialects: CALS, Formex 4, wordprocessing (w:tbl) and HTML.
//
// Basic usage:
//
//	out, err := tableconv.Open("table.xml").ToHTML()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	out, err := tableconv.Open("doc.xml").
//	    Dialect(format.OOXML).
//	    WidthUnit(units.Point).
//	    ToCALS()
//
// For advanced use cases, the model package and the per-dialect packages
// (cals, formex, ooxml, htmltab) are also available.
package tableconv

import (
	"io"
	"os"

	"github.com/tsawler/tableconv/format"
)

// Open reads a file and returns a Converter for fluent configuration. The
// dialect is detected from the content unless set explicitly with Dialect.
//
// Example:
//
//	tables, err := tableconv.Open("table.xml").Tables()
func Open(filename string) *Converter {
	data, err := os.ReadFile(filename)
	conv := &Converter{
		source:  data,
		options: defaultOptions(),
		err:     err,
	}
	if err == nil && conv.options.dialect == format.Unknown {
		conv.options.dialect = format.Detect(filename)
	}
	return conv
}

// From creates a Converter from an io.Reader. The reader is consumed
// immediately.
func From(r io.Reader) *Converter {
	data, err := io.ReadAll(r)
	return &Converter{
		source:  data,
		options: defaultOptions(),
		err:     err,
	}
}

// FromBytes creates a Converter from markup already held in memory.
func FromBytes(data []byte) *Converter {
	return &Converter{
		source:  data,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	out := tableconv.Must(tableconv.Open("table.xml").ToHTML())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Package format provides table dialect detection for the tableconv library.
package format

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Dialect represents a supported table markup dialect.
type Dialect int

const (
	// Unknown indicates an unrecognized dialect.
	Unknown Dialect = iota
	// CALS indicates a CALS (OASIS exchange) table.
	CALS
	// Formex indicates a Formex 4 table corpus.
	Formex
	// OOXML indicates a wordprocessing (w:tbl) table.
	OOXML
	// HTML indicates an HTML table.
	HTML
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case CALS:
		return "CALS"
	case Formex:
		return "Formex"
	case OOXML:
		return "OOXML"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Detect determines the dialect from the filename extension. Most dialects
// live in plain .xml files, so extension detection only resolves HTML;
// use DetectFromContent for everything else.
func Detect(filename string) Dialect {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent inspects markup to determine its dialect. The first
// distinctive element decides:
//
//	CORPUS or TBL        Formex
//	tgroup or colspec    CALS
//	tbl (lowercase)      OOXML
//	html, tr, td, th     HTML
//
// A bare <table> element is ambiguous between CALS and HTML, so scanning
// continues until a child element resolves it.
func DetectFromContent(data []byte) Dialect {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	sawTable := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "CORPUS", "TBL":
			return Formex
		case "tgroup", "colspec", "entry":
			return CALS
		case "tbl":
			return OOXML
		case "html", "tr", "td", "th", "thead", "tbody", "tfoot":
			return HTML
		case "table":
			sawTable = true
		}
	}
	// A table element with no recognizable children, or markup too broken
	// to tokenize; HTML in the wild is rarely well-formed XML.
	if sawTable || containsTag(data, "<table") || containsTag(data, "<html") {
		return HTML
	}
	return Unknown
}

// DetectFromReader reads and inspects content to determine its dialect.
func DetectFromReader(r io.Reader) (Dialect, error) {
	data, err := io.ReadAll(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return Unknown, err
	}
	return DetectFromContent(data), nil
}

func containsTag(data []byte, tag string) bool {
	return strings.Contains(strings.ToLower(string(data)), tag)
}

// Package xmlutil provides charset-aware XML decoding shared by the dialect
// parsers. Legacy corpora are frequently served in ISO-8859-1 or Windows-1252
// rather than UTF-8.
package xmlutil

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// NewDecoder returns an XML decoder that honors the encoding declared in
// the document prolog, converting the input to UTF-8 on the fly.
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// DecodeReader wraps r so it yields UTF-8, decoding from the named charset.
// An empty label leaves the reader untouched.
func DecodeReader(r io.Reader, label string) (io.Reader, error) {
	if label == "" {
		return r, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

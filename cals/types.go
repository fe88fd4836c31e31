package cals

import "encoding/xml"

// XML mapping of the CALS table model. The same structs serve the parser
// and the builder; entry content travels as raw inner markup.
//
// titles, spanspec and entrytbl are not supported.

type tableXML struct {
	XMLName  xml.Name    `xml:"table"`
	Frame    string      `xml:"frame,attr,omitempty"`
	Colsep   string      `xml:"colsep,attr,omitempty"`
	Rowsep   string      `xml:"rowsep,attr,omitempty"`
	Orient   string      `xml:"orient,attr,omitempty"`
	Pgwide   string      `xml:"pgwide,attr,omitempty"`
	Bgcolor  string      `xml:"bgcolor,attr,omitempty"`
	Tabstyle string      `xml:"tabstyle,attr,omitempty"`
	Width    string      `xml:"width,attr,omitempty"`
	Groups   []tgroupXML `xml:"tgroup"`
}

type tgroupXML struct {
	Cols        string       `xml:"cols,attr,omitempty"`
	Colsep      string       `xml:"colsep,attr,omitempty"`
	Rowsep      string       `xml:"rowsep,attr,omitempty"`
	Tgroupstyle string       `xml:"tgroupstyle,attr,omitempty"`
	Colspecs    []colspecXML `xml:"colspec"`
	Head        *sectionXML  `xml:"thead"`
	Foot        *sectionXML  `xml:"tfoot"`
	Bodies      []sectionXML `xml:"tbody"`
}

type colspecXML struct {
	Colnum   string `xml:"colnum,attr,omitempty"`
	Colname  string `xml:"colname,attr,omitempty"`
	Colwidth string `xml:"colwidth,attr,omitempty"`
	Align    string `xml:"align,attr,omitempty"`
	Colsep   string `xml:"colsep,attr,omitempty"`
	Rowsep   string `xml:"rowsep,attr,omitempty"`
}

type sectionXML struct {
	Valign string   `xml:"valign,attr,omitempty"`
	Rows   []rowXML `xml:"row"`
}

type rowXML struct {
	Valign   string     `xml:"valign,attr,omitempty"`
	Rowsep   string     `xml:"rowsep,attr,omitempty"`
	Bgcolor  string     `xml:"bgcolor,attr,omitempty"`
	Rowstyle string     `xml:"rowstyle,attr,omitempty"`
	Entries  []entryXML `xml:"entry"`
}

type entryXML struct {
	Namest    string `xml:"namest,attr,omitempty"`
	Nameend   string `xml:"nameend,attr,omitempty"`
	Morerows  string `xml:"morerows,attr,omitempty"`
	Colsep    string `xml:"colsep,attr,omitempty"`
	Rowsep    string `xml:"rowsep,attr,omitempty"`
	Valign    string `xml:"valign,attr,omitempty"`
	Align     string `xml:"align,attr,omitempty"`
	Bgcolor   string `xml:"bgcolor,attr,omitempty"`
	Cellstyle string `xml:"cellstyle,attr,omitempty"`
	Inner     string `xml:",innerxml"`
}

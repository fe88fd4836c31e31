package ooxml

import "encoding/xml"

// XML mapping of the wordprocessing table markup. Field tags match local
// names, so the w: namespace prefix is irrelevant to decoding.

type tblXML struct {
	XMLName xml.Name   `xml:"tbl"`
	Props   tblPrXML   `xml:"tblPr"`
	Grid    tblGridXML `xml:"tblGrid"`
	Rows    []trXML    `xml:"tr"`
}

type tblPrXML struct {
	Style valXML  `xml:"tblStyle"`
	Shd   *shdXML `xml:"shd"`
}

type tblGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W string `xml:"w,attr"`
}

type trXML struct {
	Props trPrXML `xml:"trPr"`
	Cells []tcXML `xml:"tc"`
}

type trPrXML struct {
	TblHeader *valXML      `xml:"tblHeader"`
	Height    *trHeightXML `xml:"trHeight"`
}

type trHeightXML struct {
	Val   string `xml:"val,attr"`
	HRule string `xml:"hRule,attr"`
}

type tcXML struct {
	Props tcPrXML `xml:"tcPr"`
	Paras []pXML  `xml:"p"`
}

type tcPrXML struct {
	GridSpan *valXML `xml:"gridSpan"`
	VMerge   *valXML `xml:"vMerge"`
	VAlign   *valXML `xml:"vAlign"`
	Shd      *shdXML `xml:"shd"`
}

type shdXML struct {
	Fill string `xml:"fill,attr"`
}

type pXML struct {
	Props pPrXML  `xml:"pPr"`
	Runs  []rXML  `xml:"r"`
}

type pPrXML struct {
	Jc *valXML `xml:"jc"`
}

type rXML struct {
	Texts []string `xml:"t"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

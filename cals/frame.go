package cals

import (
	"fmt"
	"strings"

	"github.com/tsawler/tableconv/units"
)

// Border style values stored for @frame, @colsep and @rowsep flags.
const (
	BorderSolid = "solid 1pt black"
	BorderNone  = "none"
)

var sepValues = map[string]string{"0": BorderNone, "1": BorderSolid}

var frameEdges = map[string][4]bool{
	// top, bottom, left, right
	"none":   {false, false, false, false},
	"all":    {true, true, true, true},
	"topbot": {true, true, false, false},
	"sides":  {false, false, true, true},
	"top":    {true, false, false, false},
	"bottom": {false, true, false, false},
}

// frameStyles expands a @frame keyword into the four border styles. An
// unknown or empty keyword yields no styles.
func frameStyles(frame string) map[string]string {
	edges, ok := frameEdges[frame]
	if !ok {
		return map[string]string{}
	}
	pick := func(on bool) string {
		if on {
			return BorderSolid
		}
		return BorderNone
	}
	return map[string]string{
		"border-top":    pick(edges[0]),
		"border-bottom": pick(edges[1]),
		"border-left":   pick(edges[2]),
		"border-right":  pick(edges[3]),
	}
}

// frameAttr derives the @frame keyword back from the border styles.
func frameAttr(styles map[string]string) string {
	on := func(key string) bool {
		v := borderValue(styles, key)
		return v != "" && v != "none"
	}
	edges := [4]bool{on("border-top"), on("border-bottom"), on("border-left"), on("border-right")}
	for name, e := range frameEdges {
		if name != "none" && e == edges {
			return name
		}
	}
	return "none"
}

// borderValue extracts the line style from a border shorthand like
// "solid 1pt black": the last token that is neither a width nor a color.
func borderValue(styles map[string]string, key string) string {
	value := ""
	for _, part := range strings.Fields(styles[key]) {
		if strings.HasSuffix(part, "pt") || part == "auto" || strings.HasPrefix(part, "#") {
			continue
		}
		value = part
	}
	return value
}

// sepAttr derives a "0"/"1" separator attribute from a border style; empty
// when the style is absent.
func sepAttr(styles map[string]string, key string) string {
	value := borderValue(styles, key)
	switch value {
	case "":
		return ""
	case "none":
		return "0"
	default:
		return "1"
	}
}

// formatWidth converts a measure to the given unit with two decimals.
// Values that carry no unit or cannot be converted pass through unchanged.
func formatWidth(width string, unit units.Unit) string {
	value, from, err := units.Parse(width)
	if err != nil || from == "" {
		return width
	}
	converted, err := units.Convert(value, from, unit)
	if err != nil {
		return width
	}
	return fmt.Sprintf("%.2f%s", converted, unit)
}

// Package colors parses, formats and converts the color values found in
// table style attributes: hex notations, rgb()/rgba(), hsl()/hsla(),
// cmyk()/cmyka() and CSS color names.
//
// The pivot type is [Color], an RGB triple on the 0..255 scale with an
// optional alpha on 0..1. Every other space converts through it.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scales of the supported color spaces.
const (
	RGBScale  = 255
	CMYKScale = 100
	HueScale  = 360
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB color with an optional alpha channel. R, G and B range
// over 0..255; A ranges over 0..1 and is meaningful only when Alpha is set.
type Color struct {
	R, G, B float64
	A       float64
	Alpha   bool
}

// RGB builds an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA builds a color with an explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, Alpha: true}
}

// Parse parses any supported color notation: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", "rgb(...)", "rgba(...)", "hsl(...)", "hsla(...)",
// "cmyk(...)", "cmyka(...)", a CSS color name, or a darkened name like
// "50%teal".
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return ParseHex(s)
	case strings.HasPrefix(lower, "rgb"):
		return ParseRGB(s)
	case strings.HasPrefix(lower, "hsl"):
		hsl, err := ParseHSL(s)
		if err != nil {
			return Color{}, err
		}
		return hsl.RGB(), nil
	case strings.HasPrefix(lower, "cmyk"):
		cmyk, err := ParseCMYK(s)
		if err != nil {
			return Color{}, err
		}
		return cmyk.RGB(), nil
	default:
		return ParseName(s)
	}
}

// parseNumValue parses a plain number or a percentage relative to scale.
func parseNumValue(value string, scale float64) (float64, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		return v * scale / 100, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return v, nil
}

// splitArgs splits the inside of a functional notation like "rgb(a, b, c)"
// and checks the argument count against the allowed arities.
func splitArgs(text, inner string, arities ...int) ([]string, error) {
	open := strings.IndexByte(inner, '(')
	if open < 0 || !strings.HasSuffix(inner, ")") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	parts := strings.Split(inner[open+1:len(inner)-1], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for _, n := range arities {
		if len(parts) == n {
			return parts, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, text)
}

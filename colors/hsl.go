package colors

import (
	"fmt"
	"math"
	"strings"
)

// HSL is a hue/saturation/lightness color. H ranges over 0..360, S and L
// over 0..1, A over 0..1 when Alpha is set.
type HSL struct {
	H, S, L float64
	A       float64
	Alpha   bool
}

// ParseHSL parses "hsl(h, s, l)" and "hsla(h, s, l, a)". The hue is a
// degree value or a percentage of a turn; saturation, lightness and alpha
// are 0..1 numbers or percentages.
func ParseHSL(text string) (HSL, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if !strings.HasPrefix(lower, "hsl") {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	parts, err := splitArgs(text, strings.TrimSpace(text), 3, 4)
	if err != nil {
		return HSL{}, err
	}
	var c HSL
	if c.H, err = parseNumValue(parts[0], HueScale); err != nil {
		return HSL{}, err
	}
	if c.S, err = parseNumValue(parts[1], 1); err != nil {
		return HSL{}, err
	}
	if c.L, err = parseNumValue(parts[2], 1); err != nil {
		return HSL{}, err
	}
	if len(parts) == 4 {
		if c.A, err = parseNumValue(parts[3], 1); err != nil {
			return HSL{}, err
		}
		c.Alpha = true
	}
	return c, nil
}

// FormatHSL formats as "hsl(h, s, l)" or "hsla(h, s, l, a)" with the hue
// rounded to a degree and the other channels to two decimals.
func FormatHSL(c HSL) string {
	h := formatNum(math.Round(c.H))
	s := formatNum(round2(c.S))
	l := formatNum(round2(c.L))
	if !c.Alpha {
		return fmt.Sprintf("hsl(%s, %s, %s)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s, %s, %s)", h, s, l, formatNum(round2(c.A)))
}

// FormatHSLPercent formats with all channels as percentages.
func FormatHSLPercent(c HSL) string {
	h := formatNum(round2(c.H / HueScale * 100))
	s := formatNum(round2(c.S * 100))
	l := formatNum(round2(c.L * 100))
	if !c.Alpha {
		return fmt.Sprintf("hsl(%s%%, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s%%, %s%%, %s%%, %s%%)", h, s, l, formatNum(round2(c.A*100)))
}

// RGB converts to the RGB space, carrying the alpha through.
func (c HSL) RGB() Color {
	r, g, b := hlsToRGB(c.H/HueScale, c.L, c.S)
	out := RGB(r*RGBScale, g*RGBScale, b*RGBScale)
	out.A, out.Alpha = c.A, c.Alpha
	return out
}

// HSL converts to the HSL space, carrying the alpha through.
func (c Color) HSL() HSL {
	h, l, s := rgbToHLS(c.R/RGBScale, c.G/RGBScale, c.B/RGBScale)
	return HSL{H: h * HueScale, S: s, L: l, A: c.A, Alpha: c.Alpha}
}

// rgbToHLS converts r, g, b on 0..1 to hue, lightness, saturation on 0..1.
func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (minc + maxc) / 2
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2 - maxc - minc)
	}
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}
	return h, l, s
}

// hlsToRGB converts hue, lightness, saturation on 0..1 to r, g, b on 0..1.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hlsValue(m1, m2, h+1.0/3), hlsValue(m1, m2, h), hlsValue(m1, m2, h-1.0/3)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

package colors

import (
	"fmt"
	"math"
	"strings"
)

// CMYK is a cyan/magenta/yellow/black color. The four channels range over
// 0..100, A over 0..1 when Alpha is set.
type CMYK struct {
	C, M, Y, K float64
	A          float64
	Alpha      bool
}

// ParseCMYK parses "cmyk(c, m, y, k)" and "cmyka(c, m, y, k, a)". Channels
// are plain 0..100 numbers or percentages.
func ParseCMYK(text string) (CMYK, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if !strings.HasPrefix(lower, "cmyk") {
		return CMYK{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	parts, err := splitArgs(text, strings.TrimSpace(text), 4, 5)
	if err != nil {
		return CMYK{}, err
	}
	var c CMYK
	channels := []*float64{&c.C, &c.M, &c.Y, &c.K}
	for i, ch := range channels {
		if *ch, err = parseNumValue(parts[i], CMYKScale); err != nil {
			return CMYK{}, err
		}
	}
	if len(parts) == 5 {
		if c.A, err = parseNumValue(parts[4], 1); err != nil {
			return CMYK{}, err
		}
		c.Alpha = true
	}
	return c, nil
}

// FormatCMYK formats as "cmyk(c, m, y, k)" or "cmyka(c, m, y, k, a)" with
// channels rounded to integers.
func FormatCMYK(c CMYK) string {
	cc := formatNum(math.Round(c.C))
	m := formatNum(math.Round(c.M))
	y := formatNum(math.Round(c.Y))
	k := formatNum(math.Round(c.K))
	if !c.Alpha {
		return fmt.Sprintf("cmyk(%s, %s, %s, %s)", cc, m, y, k)
	}
	return fmt.Sprintf("cmyka(%s, %s, %s, %s, %s)", cc, m, y, k, formatNum(round2(c.A)))
}

// FormatCMYKPercent formats with all channels as percentages.
func FormatCMYKPercent(c CMYK) string {
	cc := formatNum(round2(c.C / CMYKScale * 100))
	m := formatNum(round2(c.M / CMYKScale * 100))
	y := formatNum(round2(c.Y / CMYKScale * 100))
	k := formatNum(round2(c.K / CMYKScale * 100))
	if !c.Alpha {
		return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)", cc, m, y, k)
	}
	return fmt.Sprintf("cmyka(%s%%, %s%%, %s%%, %s%%, %s%%)", cc, m, y, k, formatNum(round2(c.A*100)))
}

// RGB converts to the RGB space, carrying the alpha through.
func (c CMYK) RGB() Color {
	r := RGBScale * (1 - c.C/CMYKScale) * (1 - c.K/CMYKScale)
	g := RGBScale * (1 - c.M/CMYKScale) * (1 - c.K/CMYKScale)
	b := RGBScale * (1 - c.Y/CMYKScale) * (1 - c.K/CMYKScale)
	out := RGB(r, g, b)
	out.A, out.Alpha = c.A, c.Alpha
	return out
}

// CMYK converts to the CMYK space, carrying the alpha through. Pure black
// maps to cmyk(0, 0, 0, 100).
func (c Color) CMYK() CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{K: CMYKScale, A: c.A, Alpha: c.Alpha}
	}
	cy := 1 - c.R/RGBScale
	m := 1 - c.G/RGBScale
	y := 1 - c.B/RGBScale
	minCMY := math.Min(cy, math.Min(m, y))
	cy = (cy - minCMY) / (1 - minCMY)
	m = (m - minCMY) / (1 - minCMY)
	y = (y - minCMY) / (1 - minCMY)
	return CMYK{
		C:     cy * CMYKScale,
		M:     m * CMYKScale,
		Y:     y * CMYKScale,
		K:     minCMY * CMYKScale,
		A:     c.A,
		Alpha: c.Alpha,
	}
}

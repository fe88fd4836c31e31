package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses the four hex notations: "#rgb", "#rgba", "#rrggbb" and
// "#rrggbbaa". Short digits are doubled, so "#1af" is "#11aaff".
func ParseHex(text string) (Color, error) {
	s := strings.TrimPrefix(text, "#")
	if len(text) == len(s) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	var digits []string
	switch len(s) {
	case 3, 4:
		digits = make([]string, len(s))
		for i := 0; i < len(s); i++ {
			digits[i] = string(s[i]) + string(s[i])
		}
	case 6, 8:
		digits = make([]string, len(s)/2)
		for i := range digits {
			digits[i] = s[2*i : 2*i+2]
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}

	values := make([]float64, len(digits))
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
		}
		values[i] = float64(v)
	}
	c := RGB(values[0], values[1], values[2])
	if len(values) == 4 {
		c.A = values[3] / 255
		c.Alpha = true
	}
	return c, nil
}

// FormatHex6 formats as "#rrggbb", dropping any alpha.
func FormatHex6(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", round8(c.R), round8(c.G), round8(c.B))
}

// FormatHex8 formats as "#rrggbbaa" when the color carries an alpha,
// "#rrggbb" otherwise.
func FormatHex8(c Color) string {
	if !c.Alpha {
		return FormatHex6(c)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", round8(c.R), round8(c.G), round8(c.B), round8(c.A*255))
}

// FormatHex3 formats as "#rgb" with each channel rounded to one hex digit.
func FormatHex3(c Color) string {
	return fmt.Sprintf("#%01x%01x%01x", round4(c.R), round4(c.G), round4(c.B))
}

// FormatHex4 formats as "#rgba" when the color carries an alpha, "#rgb"
// otherwise.
func FormatHex4(c Color) string {
	if !c.Alpha {
		return FormatHex3(c)
	}
	return fmt.Sprintf("#%01x%01x%01x%01x", round4(c.R), round4(c.G), round4(c.B), round4(c.A*255))
}

func round8(v float64) int {
	return clamp(int(math.Round(v)), 0, 255)
}

func round4(v float64) int {
	return clamp(int(math.Round(v/17)), 0, 15)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseRGB parses "rgb(r, g, b)" and "rgba(r, g, b, a)". Channels are plain
// 0..255 numbers or percentages; alpha is a 0..1 number or a percentage.
func ParseRGB(text string) (Color, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if !strings.HasPrefix(lower, "rgb") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	parts, err := splitArgs(text, strings.TrimSpace(text), 3, 4)
	if err != nil {
		return Color{}, err
	}
	values := make([]float64, 3)
	for i := 0; i < 3; i++ {
		if values[i], err = parseNumValue(parts[i], RGBScale); err != nil {
			return Color{}, err
		}
	}
	c := RGB(values[0], values[1], values[2])
	if len(parts) == 4 {
		if c.A, err = parseNumValue(parts[3], 1); err != nil {
			return Color{}, err
		}
		c.Alpha = true
	}
	return c, nil
}

// FormatRGB formats as "rgb(r, g, b)" or "rgba(r, g, b, a)" with channels
// rounded to integers.
func FormatRGB(c Color) string {
	if !c.Alpha {
		return fmt.Sprintf("rgb(%d, %d, %d)", round8(c.R), round8(c.G), round8(c.B))
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", round8(c.R), round8(c.G), round8(c.B), formatNum(c.A))
}

// FormatRGBPercent formats with all channels as percentages.
func FormatRGBPercent(c Color) string {
	r := formatNum(round2(c.R / RGBScale * 100))
	g := formatNum(round2(c.G / RGBScale * 100))
	b := formatNum(round2(c.B / RGBScale * 100))
	if !c.Alpha {
		return fmt.Sprintf("rgb(%s%%, %s%%, %s%%)", r, g, b)
	}
	return fmt.Sprintf("rgba(%s%%, %s%%, %s%%, %s%%)", r, g, b, formatNum(round2(c.A*100)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNum(v float64) string {
	return fmt.Sprintf("%g", v)
}

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseName resolves a CSS color name like "teal" to its RGB value. A name
// may carry a darkening prefix, "50%teal", scaling the channels by the
// percentage; 100% is the color itself, 0% is black.
func ParseName(text string) (Color, error) {
	name := strings.TrimSpace(text)
	factor := 1.0
	if i := strings.IndexByte(name, '%'); i >= 0 {
		percent, err := strconv.ParseFloat(strings.TrimSpace(name[:i]), 64)
		if err != nil || percent < 0 || percent > 100 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
		}
		factor = percent / 100
		name = name[i+1:]
	}
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, text)
	}
	return RGB(
		float64(rgba.R)*factor,
		float64(rgba.G)*factor,
		float64(rgba.B)*factor,
	), nil
}

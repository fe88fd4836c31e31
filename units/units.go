// Package units converts lengths between the measurement units found in
// table markup: the usual print and screen units plus the wordprocessing
// units twip and EMU.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned when a unit symbol is not recognized.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is a length unit symbol.
type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Decimeter  Unit = "dm"
	Meter      Unit = "m"
	Inch       Unit = "in"
	Foot       Unit = "ft"
	Pixel      Unit = "px"
	Point      Unit = "pt"
	Pica       Unit = "pc"

	// Twip is a twentieth of a point, the unit of most OOXML widths.
	Twip Unit = "twip"

	// EMU is an English Metric Unit, 1/914400 inch, used for drawing extents.
	EMU Unit = "emu"
)

// lengths in meters
var lengths = map[Unit]float64{
	Millimeter: 0.001,
	Decimeter:  0.1,
	Centimeter: 0.01,
	Meter:      1.0,
	Inch:       0.001 * 25.4,
	Foot:       0.3048,
	Pixel:      0.001 * 25.4 / 72,
	Point:      0.001 * 25.4 / 72,
	Pica:       0.001 * 25.4 / 12,
	Twip:       0.001 * 25.4 / 72 / 20,
	EMU:        0.001 * 25.4 / 914400,
}

// Convert converts a value from one unit to another, rounded to three
// decimal places:
//
//	v, _ := units.Convert(1, units.Point, units.Millimeter) // 0.353
func Convert(value float64, from, to Unit) (float64, error) {
	fl, ok := lengths[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	tl, ok := lengths[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	return math.Round(value*fl/tl*1000) / 1000, nil
}

// Parse splits a measure like "3.5mm" or "-2 pt" into its value and unit.
// A bare number is returned with an empty unit so the caller can apply its
// dialect's default.
func Parse(s string) (float64, Unit, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		i--
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid measure %q: %w", s, err)
	}
	unit := Unit(strings.TrimSpace(s[i:]))
	if unit == "" {
		return value, "", nil
	}
	if _, ok := lengths[unit]; !ok {
		return 0, "", fmt.Errorf("%w: %q in measure %q", ErrUnknownUnit, unit, s)
	}
	return value, unit, nil
}

package colors

import (
	"errors"
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func approxColor(t *testing.T, got, want Color, what string) {
	t.Helper()
	approx(t, got.R, want.R, 0.5, what+" R")
	approx(t, got.G, want.G, 0.5, what+" G")
	approx(t, got.B, want.B, 0.5, what+" B")
	if got.Alpha != want.Alpha {
		t.Errorf("%s alpha presence = %v, want %v", what, got.Alpha, want.Alpha)
	}
	if want.Alpha {
		approx(t, got.A, want.A, 0.01, what+" A")
	}
}

// ============================================================================
// Hex Tests
// ============================================================================

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#b22222", RGB(178, 34, 34)},
		{"#B22222", RGB(178, 34, 34)},
		{"#1af", RGB(17, 170, 255)},
		{"#00ff0080", RGBA(0, 255, 0, 128.0/255)},
		{"#0f08", RGBA(0, 255, 0, 136.0/255)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			approxColor(t, got, tt.expected, tt.in)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "b22222", "#xyzxyz", "#b2222", "#b222222"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestFormatHex(t *testing.T) {
	c := RGB(178, 34, 34)
	if got := FormatHex6(c); got != "#b22222" {
		t.Errorf("FormatHex6 = %q, want #b22222", got)
	}
	if got := FormatHex8(RGBA(0, 255, 0, 0.5)); got != "#00ff0080" {
		t.Errorf("FormatHex8 = %q, want #00ff0080", got)
	}
	if got := FormatHex3(RGB(17, 170, 255)); got != "#1af" {
		t.Errorf("FormatHex3 = %q, want #1af", got)
	}
	if got := FormatHex4(RGBA(17, 170, 255, 1)); got != "#1aff" {
		t.Errorf("FormatHex4 = %q, want #1aff", got)
	}
	// no alpha channel: the 8 and 4 digit forms fall back
	if got := FormatHex8(c); got != "#b22222" {
		t.Errorf("FormatHex8 without alpha = %q, want #b22222", got)
	}
}

// ============================================================================
// Functional Notation Tests
// ============================================================================

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"rgb(178, 34, 34)", RGB(178, 34, 34)},
		{"rgb(100%, 0%, 50%)", RGB(255, 0, 127.5)},
		{"rgba(0, 255, 0, 0.5)", RGBA(0, 255, 0, 0.5)},
		{"rgba(0, 255, 0, 50%)", RGBA(0, 255, 0, 0.5)},
		{"RGB(1, 2, 3)", RGB(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			if err != nil {
				t.Fatalf("ParseRGB(%q) error: %v", tt.in, err)
			}
			approxColor(t, got, tt.expected, tt.in)
		})
	}
}

func TestParseRGBInvalid(t *testing.T) {
	for _, in := range []string{"rgb(1, 2)", "rgb(1, 2, 3, 4, 5)", "rgb(a, b, c)", "hsl(1, 2, 3)"} {
		if _, err := ParseRGB(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseRGB(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestFormatRGB(t *testing.T) {
	if got := FormatRGB(RGB(178, 34, 34)); got != "rgb(178, 34, 34)" {
		t.Errorf("FormatRGB = %q", got)
	}
	if got := FormatRGB(RGBA(178, 34, 34, 0.5)); got != "rgba(178, 34, 34, 0.5)" {
		t.Errorf("FormatRGB with alpha = %q", got)
	}
	if got := FormatRGBPercent(RGB(255, 0, 0)); got != "rgb(100%, 0%, 0%)" {
		t.Errorf("FormatRGBPercent = %q", got)
	}
}

// ============================================================================
// HSL Tests
// ============================================================================

func TestParseHSL(t *testing.T) {
	c, err := ParseHSL("hsl(120, 1, 0.5)")
	if err != nil {
		t.Fatalf("ParseHSL error: %v", err)
	}
	if c.H != 120 || c.S != 1 || c.L != 0.5 || c.Alpha {
		t.Errorf("ParseHSL = %+v", c)
	}

	c, err = ParseHSL("hsla(120, 100%, 50%, 0.25)")
	if err != nil {
		t.Fatalf("ParseHSL error: %v", err)
	}
	if c.H != 120 || c.S != 1 || c.L != 0.5 || !c.Alpha || c.A != 0.25 {
		t.Errorf("ParseHSL with alpha = %+v", c)
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name     string
		in       HSL
		expected Color
	}{
		{"green", HSL{H: 120, S: 1, L: 0.5}, RGB(0, 255, 0)},
		{"white", HSL{H: 0, S: 0, L: 1}, RGB(255, 255, 255)},
		{"black", HSL{H: 0, S: 0, L: 0}, RGB(0, 0, 0)},
		{"firebrick", HSL{H: 0, S: 0.68, L: 0.42}, RGB(180, 34, 34)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxColor(t, tt.in.RGB(), tt.expected, tt.name)
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	hsl := RGB(0, 255, 0).HSL()
	approx(t, hsl.H, 120, 0.01, "H")
	approx(t, hsl.S, 1, 0.01, "S")
	approx(t, hsl.L, 0.5, 0.01, "L")
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(178, 34, 34), RGB(9, 83, 224), RGB(128, 128, 128)} {
		approxColor(t, c.HSL().RGB(), c, "round trip")
	}
}

func TestFormatHSL(t *testing.T) {
	if got := FormatHSL(HSL{H: 120, S: 1, L: 0.5}); got != "hsl(120, 1, 0.5)" {
		t.Errorf("FormatHSL = %q", got)
	}
	if got := FormatHSLPercent(HSL{H: 180, S: 0.5, L: 0.25}); got != "hsl(50%, 50%, 25%)" {
		t.Errorf("FormatHSLPercent = %q", got)
	}
}

// ============================================================================
// CMYK Tests
// ============================================================================

func TestRGBToCMYK(t *testing.T) {
	cmyk := RGB(9, 83, 224).CMYK()
	approx(t, cmyk.C, 96, 0.5, "C")
	approx(t, cmyk.M, 63, 0.5, "M")
	approx(t, cmyk.Y, 0, 0.5, "Y")
	approx(t, cmyk.K, 12, 0.5, "K")

	black := RGB(0, 0, 0).CMYK()
	if black.C != 0 || black.M != 0 || black.Y != 0 || black.K != 100 {
		t.Errorf("black CMYK = %+v, want (0, 0, 0, 100)", black)
	}
}

func TestCMYKToRGB(t *testing.T) {
	approxColor(t, CMYK{C: 96, M: 63, Y: 0, K: 12}.RGB(), RGB(9, 83, 224), "blue")
	approxColor(t, CMYK{K: 100}.RGB(), RGB(0, 0, 0), "black")
}

func TestParseCMYK(t *testing.T) {
	c, err := ParseCMYK("cmyk(96, 63, 0, 12)")
	if err != nil {
		t.Fatalf("ParseCMYK error: %v", err)
	}
	if c.C != 96 || c.M != 63 || c.Y != 0 || c.K != 12 || c.Alpha {
		t.Errorf("ParseCMYK = %+v", c)
	}

	c, err = ParseCMYK("cmyka(0, 0, 0, 100, 0.5)")
	if err != nil {
		t.Fatalf("ParseCMYK error: %v", err)
	}
	if !c.Alpha || c.A != 0.5 {
		t.Errorf("ParseCMYK with alpha = %+v", c)
	}
}

func TestFormatCMYK(t *testing.T) {
	if got := FormatCMYK(CMYK{C: 96, M: 63, Y: 0, K: 12}); got != "cmyk(96, 63, 0, 12)" {
		t.Errorf("FormatCMYK = %q", got)
	}
	if got := FormatCMYKPercent(CMYK{C: 50, M: 0, Y: 0, K: 25}); got != "cmyk(50%, 0%, 0%, 25%)" {
		t.Errorf("FormatCMYKPercent = %q", got)
	}
}

// ============================================================================
// CSS Name and Dispatch Tests
// ============================================================================

func TestParseName(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"teal", RGB(0, 128, 128)},
		{"Teal", RGB(0, 128, 128)},
		{"firebrick", RGB(178, 34, 34)},
		{"50%teal", RGB(0, 64, 64)},
		{"100%black", RGB(0, 0, 0)},
		{"0%white", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseName(tt.in)
			if err != nil {
				t.Fatalf("ParseName(%q) error: %v", tt.in, err)
			}
			approxColor(t, got, tt.expected, tt.in)
		})
	}
}

func TestParseNameInvalid(t *testing.T) {
	for _, in := range []string{"notacolor", "150%teal", "-10%teal", "%teal"} {
		if _, err := ParseName(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseName(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#b22222", RGB(178, 34, 34)},
		{"rgb(178, 34, 34)", RGB(178, 34, 34)},
		{"hsl(120, 1, 0.5)", RGB(0, 255, 0)},
		{"cmyk(0, 0, 0, 100)", RGB(0, 0, 0)},
		{"firebrick", RGB(178, 34, 34)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			approxColor(t, got, tt.expected, tt.in)
		})
	}

	if _, err := Parse("not a color"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Parse error = %v, want ErrInvalidColor", err)
	}
}

package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a straight-alpha colour. In YAML it is written "#RRGGBB" or
// "#AARRGGBB".
type Color color.NRGBA

// ARGB builds a colour in the argument order used by the widget defaults.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Named colours used by the defaults.
var (
	White  = RGB(0xff, 0xff, 0xff)
	Black  = RGB(0, 0, 0)
	Red    = RGB(0xff, 0, 0)
	Green  = RGB(0, 0xff, 0)
	DkGray = RGB(0x44, 0x44, 0x44)
	LtGray = RGB(0xcc, 0xcc, 0xcc)
)

// NRGBA returns c as a standard library colour.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseColor accepts "#RRGGBB" and "#AARRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid colour %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

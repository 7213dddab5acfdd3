package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor is an RGBA color stored in config files as "#rgb", "#rrggbb" or
// "#aarrggbb".
type HexColor color.RGBA

// RGBA implements color.Color.
func (c HexColor) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// ParseHexColor parses a hex color string. The leading '#' is optional.
func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}

// String formats the color, including alpha only when it is not opaque.
func (c HexColor) String() string {
	if c.A < 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *HexColor) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

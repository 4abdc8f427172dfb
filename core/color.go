package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xRRGGBB value
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xffffff
)

// ParseColor accepts "#rrggbb", "0xrrggbb" or "rrggbb"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// MustColor is ParseColor for compile-time literals
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the 8-bit channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Floats returns the channels in [0, 1]
func (c Color) Floats() (r, g, b float32) {
	r8, g8, b8 := c.RGB()
	return float32(r8) / 255, float32(g8) / 255, float32(b8) / 255
}

// FromFloats packs [0, 1] channels, saturating out-of-range values
func FromFloats(r, g, b float32) Color {
	q := func(v float32) uint32 {
		return uint32(Clamp(v, 0, 1)*255 + 0.5)
	}
	return Color(q(r)<<16 | q(g)<<8 | q(b))
}

// Add sums two colors channel-wise with saturation
func (c Color) Add(o Color) Color {
	r1, g1, b1 := c.Floats()
	r2, g2, b2 := o.Floats()
	return FromFloats(r1+r2, g1+g2, b1+b2)
}

// Scale multiplies every channel by f
func (c Color) Scale(f float32) Color {
	r, g, b := c.Floats()
	return FromFloats(r*f, g*f, b*f)
}

// Modulate multiplies two colors channel-wise
func (c Color) Modulate(o Color) Color {
	r1, g1, b1 := c.Floats()
	r2, g2, b2 := o.Floats()
	return FromFloats(r1*r2, g1*g2, b1*b2)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// MarshalText encodes as "#rrggbb" for JSON and YAML
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents a concrete RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// NewRGB creates an opaque RGB color.
func NewRGB(r, g, b float64) Color {
	return Color{
		R: clamp(r, 0, 1),
		G: clamp(g, 0, 1),
		B: clamp(b, 0, 1),
		A: 1,
	}
}

// NewGray creates an opaque grayscale color.
func NewGray(gray float64) Color {
	return NewRGB(gray, gray, gray)
}

// Black returns a black color.
func Black() Color {
	return NewGray(0)
}

// White returns a white color.
func White() Color {
	return NewGray(1)
}

// ParseHex parses a CSS-style hex color string: #RGB, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		// Expand shorthand: each nibble doubles
		r, err1 := strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8)
		g, err2 := strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8)
		b, err3 := strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}, nil

	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xFF
		}
		return Color{
			R: float64(v>>24&0xFF) / 255,
			G: float64(v>>16&0xFF) / 255,
			B: float64(v>>8&0xFF) / 255,
			A: float64(v&0xFF) / 255,
		}, nil
	}

	return Color{}, fmt.Errorf("invalid hex color %q", s)
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) Hex() string {
	rgba := c.ToNRGBA()
	if rgba.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", rgba.R, rgba.G, rgba.B, rgba.A)
}

// ToRGBA converts the color to a premultiplied RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * c.A * 255),
		G: uint8(clamp(c.G, 0, 1) * c.A * 255),
		B: uint8(clamp(c.B, 0, 1) * c.A * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// ToNRGBA converts the color to a non-premultiplied RGBA.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp(alpha, 0, 1)
	return c
}

// Lerp linearly interpolates between two colors. t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = clamp(t, 0, 1)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Luminance returns the relative luminance of the color.
func (c Color) Luminance() float64 {
	// ITU-R BT.709 luma coefficients
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package paint_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinct/pkg/paint"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#000", color.NRGBA{0, 0, 0, 255}},
		{"#F0A", color.NRGBA{255, 0, 170, 255}},
		{"#33669980", color.NRGBA{51, 102, 153, 128}},
		{"336699", color.NRGBA{51, 102, 153, 255}},
		{"  #FFFFFF ", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := paint.ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ToNRGBA())
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#GGGGGG", "red", "@primary"} {
		t.Run(in, func(t *testing.T) {
			_, err := paint.ParseHex(in)
			assert.Error(t, err)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := paint.ParseHex("#336699")
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex())

	translucent := c.WithAlpha(0.5)
	reparsed, err := paint.ParseHex(translucent.Hex())
	require.NoError(t, err)
	assert.Equal(t, translucent.ToNRGBA(), reparsed.ToNRGBA())
}

func TestLerp(t *testing.T) {
	black := paint.Black()
	white := paint.White()

	assert.Equal(t, black, paint.Lerp(black, white, 0))
	assert.Equal(t, white, paint.Lerp(black, white, 1))

	mid := paint.Lerp(black, white, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.G, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)

	// t is clamped
	assert.Equal(t, white, paint.Lerp(black, white, 2))
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0, paint.Black().Luminance(), 1e-9)
	assert.InDelta(t, 1, paint.White().Luminance(), 1e-9)
	assert.Greater(t, paint.NewRGB(0, 1, 0).Luminance(), paint.NewRGB(0, 0, 1).Luminance())
}

func TestStyleClone(t *testing.T) {
	s := &paint.Style{
		Fill:        "@primary",
		Stroke:      "#000",
		LineWidth:   2,
		DashPattern: []float64{4, 2},
		Extra:       map[string]any{"z-index": 3},
	}

	clone := s.Clone()
	require.NotSame(t, s, clone)

	clone.Fill = "#FFF"
	clone.DashPattern[0] = 99
	clone.Extra["z-index"] = 7

	assert.Equal(t, "@primary", s.Fill)
	assert.Equal(t, 4.0, s.DashPattern[0])
	assert.Equal(t, 3, s.Extra["z-index"])
}

func TestGradientClone(t *testing.T) {
	g := paint.NewLinear(
		paint.Stop{Offset: 0, Color: "@primary"},
		paint.Stop{Offset: 1, Color: "#000"},
	)

	clone := g.Clone()
	require.NotSame(t, g, clone)

	clone.Stops[0].Color = "#FFF"
	assert.Equal(t, "@primary", g.Stops[0].Color)
	assert.Equal(t, paint.GradientLinear, clone.Kind)
	assert.Equal(t, 1.0, clone.X2)
}

func TestNewRadialDefaults(t *testing.T) {
	g := paint.NewRadial(paint.Stop{Offset: 0, Color: "#FFF"})
	assert.Equal(t, paint.GradientRadial, g.Kind)
	assert.Equal(t, 0.5, g.CX)
	assert.Equal(t, 0.5, g.CY)
	assert.Equal(t, 0.5, g.Radius)
}

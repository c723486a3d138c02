package swatch_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinct/pkg/paint"
	"tinct/pkg/swatch"
	"tinct/pkg/tokens"
)

func testRenderer(ns tokens.Namespace) *swatch.Renderer {
	r := tokens.NewResolver()
	r.Register(ns)
	return swatch.NewRenderer(r, ns)
}

func pixelNear(t *testing.T, img *image.RGBA, x, y int, want color.RGBA, tolerance int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	assert.InDelta(t, int(want.R), int(got.R), float64(tolerance), "R at (%d,%d)", x, y)
	assert.InDelta(t, int(want.G), int(got.G), float64(tolerance), "G at (%d,%d)", x, y)
	assert.InDelta(t, int(want.B), int(got.B), float64(tolerance), "B at (%d,%d)", x, y)
	assert.InDelta(t, int(want.A), int(got.A), float64(tolerance), "A at (%d,%d)", x, y)
}

func TestRenderSheetLayout(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"colors": {
			"primary":   "#FF0000",
			"secondary": "#0000FF",
		},
	})

	img := rd.RenderSheet(
		swatch.SwatchSize(16),
		swatch.Padding(4),
		swatch.Columns(2),
		swatch.CornerRadius(0),
	)

	// 2 columns, 1 row: width = 2*(16+4)+4, height = 1*(16+4)+4
	assert.Equal(t, 44, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	// Sorted token order: primary first, secondary second
	pixelNear(t, img, 12, 12, color.RGBA{255, 0, 0, 255}, 2)
	pixelNear(t, img, 32, 12, color.RGBA{0, 0, 255, 255}, 2)

	// Padding area keeps the background
	pixelNear(t, img, 1, 1, color.RGBA{255, 255, 255, 255}, 2)
}

func TestRenderSheetResolvesReferences(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"base":    {"brand": "#00FF00"},
		"aliases": {"surface": "@brand"},
	})

	img := rd.RenderSheet(
		swatch.SwatchSize(16),
		swatch.Padding(4),
		swatch.Columns(1),
		swatch.CornerRadius(0),
	)

	// Two bands of one swatch each, both resolving to brand green
	pixelNear(t, img, 12, 12, color.RGBA{0, 255, 0, 255}, 2)
	pixelNear(t, img, 12, 32, color.RGBA{0, 255, 0, 255}, 2)
}

func TestRenderSheetUnresolvedChecker(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"colors": {"ghost": "@missing"},
	})

	img := rd.RenderSheet(
		swatch.SwatchSize(32),
		swatch.Padding(4),
		swatch.Columns(1),
		swatch.CornerRadius(0),
	)

	// A checkerboard placeholder has at least two distinct tones inside
	// one swatch.
	a := img.RGBAAt(6, 6)
	b := img.RGBAAt(6+4, 6)
	assert.NotEqual(t, a, b)
}

func TestRenderSheetGradient(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"colors": {
			"primary": "#FF0000",
			"ramp": paint.NewLinear(
				paint.Stop{Offset: 0, Color: "@primary"},
				paint.Stop{Offset: 1, Color: "#000000"},
			),
		},
	})

	img, err := rd.RenderCategory("colors",
		swatch.SwatchSize(32),
		swatch.Padding(0),
		swatch.Columns(2),
		swatch.CornerRadius(0),
	)
	require.NoError(t, err)

	// primary sorts before ramp; the gradient occupies the second cell,
	// red on the left fading to black on the right.
	pixelNear(t, img, 33, 16, color.RGBA{250, 0, 0, 255}, 16)
	pixelNear(t, img, 62, 16, color.RGBA{5, 0, 0, 255}, 16)
}

func TestRenderCategoryUnknown(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"colors": {"primary": "#FF0000"},
	})

	_, err := rd.RenderCategory("nope")
	assert.Error(t, err)
}

func TestRenderSkipsNonColorTokens(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"spacing": {"gap": 8, "unit": "rem"},
		"colors":  {"primary": "#FF0000"},
	})

	assert.Equal(t, []string{"colors"}, rd.Categories())

	_, err := rd.RenderCategory("spacing")
	assert.Error(t, err)
}

func TestTransparentBackground(t *testing.T) {
	rd := testRenderer(tokens.Namespace{
		"colors": {"primary": "#FF0000"},
	})

	img := rd.RenderSheet(
		swatch.SwatchSize(8),
		swatch.Padding(4),
		swatch.Columns(1),
		swatch.Transparent(),
	)

	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestCanvasFillRect(t *testing.T) {
	c := swatch.NewCanvas(10, 10)
	c.FillRect(2, 2, 6, 6, color.RGBA{0, 0, 255, 255})

	pixelNear(t, c.Image(), 5, 5, color.RGBA{0, 0, 255, 255}, 2)
	pixelNear(t, c.Image(), 0, 0, color.RGBA{255, 255, 255, 255}, 2)
}

package swatch

import (
	"image"
	"image/color"
	"math"
	"sort"

	"tinct/pkg/paint"
)

// ramp is a gradient's color ramp with every stop reduced to a concrete
// color, sorted by offset.
type ramp struct {
	stops []rampStop
}

type rampStop struct {
	offset float64
	col    paint.Color
}

// newRamp builds a ramp from a gradient whose stop colors have already
// been through token resolution. Stops whose color cannot be interpreted
// fall back to mid-gray so a broken stop is visible rather than fatal.
func newRamp(g *paint.Gradient) *ramp {
	stops := make([]rampStop, 0, len(g.Stops))
	for _, s := range g.Stops {
		col, ok := colorFromValue(s.Color)
		if !ok {
			col = paint.NewGray(0.5)
		}
		if s.Opacity > 0 && s.Opacity < 1 {
			col = col.WithAlpha(s.Opacity)
		}
		stops = append(stops, rampStop{offset: clampOffset(s.Offset), col: col})
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].offset < stops[j].offset
	})

	return &ramp{stops: stops}
}

func clampOffset(o float64) float64 {
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// colorAt returns the ramp color at position t in [0, 1].
func (r *ramp) colorAt(t float64) paint.Color {
	if len(r.stops) == 0 {
		return paint.NewGray(0.5)
	}
	if t <= r.stops[0].offset {
		return r.stops[0].col
	}
	last := r.stops[len(r.stops)-1]
	if t >= last.offset {
		return last.col
	}

	for i := 1; i < len(r.stops); i++ {
		lo, hi := r.stops[i-1], r.stops[i]
		if t > hi.offset {
			continue
		}
		span := hi.offset - lo.offset
		if span <= 0 {
			return hi.col
		}
		return paint.Lerp(lo.col, hi.col, (t-lo.offset)/span)
	}

	return last.col
}

// colorFromValue interprets a resolved color value as a concrete color.
func colorFromValue(v any) (paint.Color, bool) {
	switch c := v.(type) {
	case paint.Color:
		return c, true
	case string:
		parsed, err := paint.ParseHex(c)
		if err != nil {
			return paint.Color{}, false
		}
		return parsed, true
	}
	return paint.Color{}, false
}

// gradientImage paints a gradient into a target rectangle. It satisfies
// image.Image so it can be fed straight to the rasterizer; like
// image.Uniform it reports effectively unbounded dimensions.
type gradientImage struct {
	rect image.Rectangle
	g    *paint.Gradient
	ramp *ramp
}

func newGradientImage(rect image.Rectangle, g *paint.Gradient) *gradientImage {
	return &gradientImage{rect: rect, g: g, ramp: newRamp(g)}
}

func (gi *gradientImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (gi *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (gi *gradientImage) At(x, y int) color.Color {
	w := float64(gi.rect.Dx())
	h := float64(gi.rect.Dy())
	if w <= 0 || h <= 0 {
		return color.RGBA{}
	}

	// Pixel center in the gradient's unit square
	u := (float64(x-gi.rect.Min.X) + 0.5) / w
	v := (float64(y-gi.rect.Min.Y) + 0.5) / h

	var t float64
	switch gi.g.Kind {
	case paint.GradientRadial:
		radius := gi.g.Radius
		if radius <= 0 {
			radius = 0.5
		}
		dx := u - gi.g.CX
		dy := v - gi.g.CY
		t = math.Sqrt(dx*dx+dy*dy) / radius

	default:
		// Project onto the linear axis
		ax := gi.g.X2 - gi.g.X1
		ay := gi.g.Y2 - gi.g.Y1
		lenSq := ax*ax + ay*ay
		if lenSq == 0 {
			ax, ay, lenSq = 1, 0, 1
		}
		t = ((u-gi.g.X1)*ax + (v-gi.g.Y1)*ay) / lenSq
	}

	return gi.ramp.colorAt(t).ToRGBA()
}

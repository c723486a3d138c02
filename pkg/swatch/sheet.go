package swatch

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"tinct/pkg/paint"
	"tinct/pkg/tokens"
)

// Options configures sheet rendering.
type Options struct {
	// SwatchSize is the edge length of one swatch in pixels.
	// Default: 64
	SwatchSize int

	// Padding is the gap between swatches and around the sheet.
	// Default: 12
	Padding int

	// Columns is the number of swatches per row.
	// Default: 6
	Columns int

	// CornerRadius rounds the swatch corners.
	// Default: 6
	CornerRadius float64

	// Scale multiplies all pixel dimensions.
	// Default: 1.0
	Scale float64

	// Background sets the sheet background color.
	// Default: white
	Background color.Color

	// Transparent enables a transparent background (ignores Background).
	// Default: false
	Transparent bool
}

// DefaultOptions returns render options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		SwatchSize:   64,
		Padding:      12,
		Columns:      6,
		CornerRadius: 6,
		Scale:        1.0,
		Background:   color.White,
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// SwatchSize sets the swatch edge length in pixels.
func SwatchSize(px int) Option {
	return func(o *Options) {
		o.SwatchSize = px
	}
}

// Padding sets the gap between swatches.
func Padding(px int) Option {
	return func(o *Options) {
		o.Padding = px
	}
}

// Columns sets the number of swatches per row.
func Columns(n int) Option {
	return func(o *Options) {
		o.Columns = n
	}
}

// CornerRadius sets the swatch corner radius.
func CornerRadius(r float64) Option {
	return func(o *Options) {
		o.CornerRadius = r
	}
}

// Scale sets the scale factor.
func Scale(scale float64) Option {
	return func(o *Options) {
		o.Scale = scale
	}
}

// Background sets the sheet background color.
func Background(c color.Color) Option {
	return func(o *Options) {
		o.Background = c
	}
}

// Transparent enables a transparent background.
func Transparent() Option {
	return func(o *Options) {
		o.Transparent = true
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Renderer renders the color-bearing tokens of a registered namespace as
// swatch grids, one band of rows per category.
type Renderer struct {
	resolver  *tokens.Resolver
	namespace tokens.Namespace
}

// NewRenderer creates a renderer over a resolver and the namespace it was
// registered with.
func NewRenderer(resolver *tokens.Resolver, namespace tokens.Namespace) *Renderer {
	return &Renderer{
		resolver:  resolver,
		namespace: namespace,
	}
}

// Categories returns the category names that contain at least one
// renderable token, in sorted order.
func (r *Renderer) Categories() []string {
	var names []string
	for name, toks := range r.namespace {
		if len(r.renderable(toks)) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RenderSheet renders every category onto one sheet, stacked vertically.
func (r *Renderer) RenderSheet(opts ...Option) *image.RGBA {
	return r.render(r.Categories(), NewOptions(opts...))
}

// RenderCategory renders the swatches of a single category.
func (r *Renderer) RenderCategory(name string, opts ...Option) (*image.RGBA, error) {
	toks, ok := r.namespace[name]
	if !ok {
		return nil, fmt.Errorf("unknown category %q", name)
	}
	if len(r.renderable(toks)) == 0 {
		return nil, fmt.Errorf("category %q has no color tokens", name)
	}
	return r.render([]string{name}, NewOptions(opts...)), nil
}

// cell is one resolved swatch: either a concrete paint or an unresolved
// reference rendered as a checker placeholder.
type cell struct {
	value      any
	unresolved bool
}

// renderable resolves a category's values and keeps the color-bearing
// ones: parseable color strings, concrete colors, gradients, and
// still-unresolved references. Numbers and other strings are not colors
// and are skipped. Order follows sorted token names.
func (r *Renderer) renderable(toks map[string]any) []cell {
	names := make([]string, 0, len(toks))
	for name := range toks {
		names = append(names, name)
	}
	sort.Strings(names)

	var cells []cell
	for _, name := range names {
		v := r.resolver.ResolveColor(toks[name])
		switch c := v.(type) {
		case *paint.Gradient:
			cells = append(cells, cell{value: c})
		case paint.Color:
			cells = append(cells, cell{value: c})
		case string:
			if strings.HasPrefix(c, tokens.RefPrefix) {
				cells = append(cells, cell{value: c, unresolved: true})
			} else if _, err := paint.ParseHex(c); err == nil {
				cells = append(cells, cell{value: c})
			}
		}
	}
	return cells
}

func (r *Renderer) render(categories []string, o Options) *image.RGBA {
	if o.Columns < 1 {
		o.Columns = 1
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}

	size := int(math.Round(float64(o.SwatchSize) * o.Scale))
	pad := int(math.Round(float64(o.Padding) * o.Scale))
	radius := o.CornerRadius * o.Scale

	// Measure: each category is a band of full rows
	totalRows := 0
	bands := make([][]cell, 0, len(categories))
	for _, name := range categories {
		cells := r.renderable(r.namespace[name])
		if len(cells) == 0 {
			continue
		}
		bands = append(bands, cells)
		totalRows += (len(cells) + o.Columns - 1) / o.Columns
	}

	width := o.Columns*(size+pad) + pad
	height := totalRows*(size+pad) + pad
	if totalRows == 0 {
		height = pad * 2
	}

	canvas := NewCanvas(width, height)
	if o.Transparent {
		canvas.SetBackground(color.Transparent)
	} else if o.Background != nil {
		canvas.SetBackground(o.Background)
	}
	canvas.Clear()

	row := 0
	for _, cells := range bands {
		for i, c := range cells {
			col := i % o.Columns
			x := float64(pad + col*(size+pad))
			y := float64(pad + (row+i/o.Columns)*(size+pad))
			r.drawCell(canvas, c, x, y, float64(size), radius)
		}
		row += (len(cells) + o.Columns - 1) / o.Columns
	}

	return canvas.Image()
}

func (r *Renderer) drawCell(canvas *Canvas, c cell, x, y, size, radius float64) {
	if c.unresolved {
		canvas.FillChecker(x, y, size, size, radius, int(size/8))
		return
	}

	switch v := c.value.(type) {
	case *paint.Gradient:
		rect := image.Rect(int(x), int(y), int(x+size), int(y+size))
		canvas.FillRoundRect(x, y, size, size, radius, newGradientImage(rect, v))

	case paint.Color:
		canvas.FillRoundRect(x, y, size, size, radius, &image.Uniform{v.ToRGBA()})

	case string:
		parsed, err := paint.ParseHex(v)
		if err != nil {
			canvas.FillChecker(x, y, size, size, radius, int(size/8))
			return
		}
		canvas.FillRoundRect(x, y, size, size, radius, &image.Uniform{parsed.ToRGBA()})
	}
}

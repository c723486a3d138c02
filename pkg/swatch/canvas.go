// Package swatch rasterizes resolved themes into swatch-sheet images.
package swatch

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Canvas is a drawing surface for swatch rendering.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	background color.Color
}

// NewCanvas creates a canvas with the given pixel dimensions, cleared to
// a white background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.White,
	}
	c.Clear()
	return c
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetBackground sets the background color used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// FillRoundRect fills a rounded rectangle with the given source image.
// Pass an *image.Uniform for solid fills or a gradient source for ramps.
func (c *Canvas) FillRoundRect(x, y, w, h, radius float64, src image.Image) {
	r := &vector.Rasterizer{}
	r.Reset(c.width, c.height)

	roundRect(r, x, y, w, h, radius)

	r.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// FillRect fills an axis-aligned rectangle with a solid color.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.FillRoundRect(x, y, w, h, 0, &image.Uniform{col})
}

// FillChecker fills a rounded rectangle with a two-tone checkerboard.
// Used as the placeholder for unresolved token references.
func (c *Canvas) FillChecker(x, y, w, h, radius float64, cell int) {
	if cell < 1 {
		cell = 1
	}
	c.FillRoundRect(x, y, w, h, radius, &checkerImage{
		origin: image.Pt(int(x), int(y)),
		cell:   cell,
		light:  color.RGBA{0xD0, 0xD0, 0xD0, 0xFF},
		dark:   color.RGBA{0x90, 0x90, 0x90, 0xFF},
	})
}

// roundRect appends a rounded rectangle outline to the rasterizer. The
// corner arcs are cubic Bezier approximations of quarter circles.
func roundRect(r *vector.Rasterizer, x, y, w, h, radius float64) {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	if radius <= 0 {
		r.MoveTo(float32(x), float32(y))
		r.LineTo(float32(x+w), float32(y))
		r.LineTo(float32(x+w), float32(y+h))
		r.LineTo(float32(x), float32(y+h))
		r.ClosePath()
		return
	}

	// Magic number for cubic bezier approximation of a quarter circle
	k := 0.5522847498307936
	rx, ry := radius, radius

	r.MoveTo(float32(x+rx), float32(y))
	r.LineTo(float32(x+w-rx), float32(y))
	r.CubeTo(
		float32(x+w-rx+rx*k), float32(y),
		float32(x+w), float32(y+ry-ry*k),
		float32(x+w), float32(y+ry),
	)
	r.LineTo(float32(x+w), float32(y+h-ry))
	r.CubeTo(
		float32(x+w), float32(y+h-ry+ry*k),
		float32(x+w-rx+rx*k), float32(y+h),
		float32(x+w-rx), float32(y+h),
	)
	r.LineTo(float32(x+rx), float32(y+h))
	r.CubeTo(
		float32(x+rx-rx*k), float32(y+h),
		float32(x), float32(y+h-ry+ry*k),
		float32(x), float32(y+h-ry),
	)
	r.LineTo(float32(x), float32(y+ry))
	r.CubeTo(
		float32(x), float32(y+ry-ry*k),
		float32(x+rx-rx*k), float32(y),
		float32(x+rx), float32(y),
	)
	r.ClosePath()
}

// checkerImage is an unbounded checkerboard source anchored at origin.
type checkerImage struct {
	origin image.Point
	cell   int
	light  color.RGBA
	dark   color.RGBA
}

func (c *checkerImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *checkerImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (c *checkerImage) At(x, y int) color.Color {
	cx := (x - c.origin.X) / c.cell
	cy := (y - c.origin.Y) / c.cell
	if (cx+cy)%2 == 0 {
		return c.light
	}
	return c.dark
}

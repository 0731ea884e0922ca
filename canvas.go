// seehuhn.de/go/pixel - integer rasterization of 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pixel paints integer geometric primitives onto RGBA8 pixel buffers.
//
// The package draws line segments (Bresenham), circle outlines and filled
// discs (midpoint algorithm), axis-aligned rectangles, filled triangles and
// uniform cubic B-spline curves.  There is no anti-aliasing and no blending:
// every covered pixel is overwritten with the given [Color].
//
// Drawing never fails.  Pixels outside the canvas, degenerate geometry and
// under-specified input simply paint less, or nothing.
//
// A [Canvas] may be used concurrently only if the callers paint disjoint
// pixel regions.
package pixel

import (
	"image"
	"image/color"
)

// bytesPerPixel is the size of one RGBA8 pixel in Canvas.Pix.
const bytesPerPixel = 4

// Canvas is a row-major RGBA8 pixel buffer.
//
// Pix normally has length 4*Width*Height.  If it is shorter, writes which
// would fall beyond the end of Pix are dropped.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// NewCanvas allocates a zero-filled canvas of the given size.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		Pix:    make([]byte, width*height*bytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// Wrap returns a canvas which paints into the caller-owned buffer pix.
// The canvas does not copy pix; all drawing operations modify it in place.
func Wrap(pix []byte, width, height int) *Canvas {
	return &Canvas{Pix: pix, Width: width, Height: height}
}

// SetPixel sets the pixel at p to col.
// Nothing is written if p lies outside the canvas, or if the pixel would
// lie beyond the end of c.Pix.
//
// All drawing operations of this package write pixels through SetPixel.
func (c *Canvas) SetPixel(p image.Point, col Color) {
	offset, ok := c.offset(p)
	if !ok {
		return
	}
	px := c.Pix[offset : offset+bytesPerPixel : offset+bytesPerPixel]
	px[0] = col.R
	px[1] = col.G
	px[2] = col.B
	px[3] = col.A
}

// offset returns the position of the pixel p in c.Pix.
// The result is false if p lies outside the canvas or beyond the end of
// c.Pix.
func (c *Canvas) offset(p image.Point) (int, bool) {
	if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
		return 0, false
	}
	// Compare row numbers instead of offsets, since Width*p.Y may
	// overflow for huge widths.
	n := len(c.Pix) / bytesPerPixel
	if p.X >= n || p.Y > (n-p.X-1)/c.Width {
		return 0, false
	}
	return bytesPerPixel * (c.Width*p.Y + p.X), true
}

// PixelAt returns the color of the pixel at p.
// The zero Color is returned for pixels outside the canvas.
func (c *Canvas) PixelAt(p image.Point) Color {
	offset, ok := c.offset(p)
	if !ok {
		return Color{}
	}
	px := c.Pix[offset : offset+bytesPerPixel : offset+bytesPerPixel]
	return Color{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, max(c.Width, 0), max(c.Height, 0))
}

// At implements the [image.Image] interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(image.Pt(x, y))
}

// Set implements the [image/draw.Image] interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(image.Pt(x, y), ColorModel.Convert(col).(Color))
}

// ToImage returns a copy of the canvas as an [image.NRGBA].
// The channel bytes are copied verbatim.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	copy(img.Pix, c.Pix)
	return img
}

// clipRect intersects r with the canvas.  r is given by inclusive minimum
// and exclusive maximum coordinates.
func (c *Canvas) clipRect(r image.Rectangle) image.Rectangle {
	return r.Intersect(c.Bounds())
}

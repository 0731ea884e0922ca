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

// Package testcases contains drawing scenes which exercise the rasterizer.
//
// The scenes are used for reference-image tests and by the commands in the
// subdirectories, which write reference PNGs, vector previews and a YAML
// export of all scenes.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Ops    []Operation   // drawn in order onto a zero-filled canvas
	CTM    matrix.Matrix // placement of the scene (zero-value means no transform)
}

// Operation is one drawing call.
type Operation interface {
	isOperation()
}

// Colors are packed as 0xRRGGBBAA.

// Line draws a straight segment, both end points included.
type Line struct {
	From, To image.Point
	Color    uint32
}

// Circle draws a circle outline, or a disc if Filled is set.
type Circle struct {
	Center image.Point
	Radius int
	Filled bool
	Color  uint32
}

// Rect fills an axis-aligned rectangle.
type Rect struct {
	Origin image.Point
	Extent image.Point
	Color  uint32
}

// Triangle fills a triangle.  If Scanline is set, the row-by-row
// rasterizer is used instead of the bounding-box one.
type Triangle struct {
	A, B, C  image.Point
	Scanline bool
	Color    uint32
}

// Spline draws a uniform cubic B-spline.
type Spline struct {
	Points []image.Point
	Color  uint32
}

func (Line) isOperation()     {}
func (Circle) isOperation()   {}
func (Rect) isOperation()     {}
func (Triangle) isOperation() {}
func (Spline) isOperation()   {}

// Transform returns the scene's placement matrix.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Place maps a scene point to canvas coordinates, rounding to the
// nearest pixel.
func (tc TestCase) Place(p image.Point) image.Point {
	x, y := tc.Transform().Apply(float64(p.X), float64(p.Y))
	return round(vec.Vec2{X: x, Y: y})
}

// PlaceExtent maps a width/height pair to canvas coordinates.
// Only the linear part of the CTM is applied.
func (tc TestCase) PlaceExtent(e image.Point) image.Point {
	m := tc.Transform()
	x, y := m.Apply(float64(e.X), float64(e.Y))
	x0, y0 := m.Apply(0, 0)
	return round(vec.Vec2{X: x, Y: y}.Sub(vec.Vec2{X: x0, Y: y0}))
}

// PlaceRadius scales a radius by the square root of the absolute
// determinant of the CTM.  Circles stay circles only under similarity
// transforms.
func (tc TestCase) PlaceRadius(r int) int {
	m := tc.Transform()
	s := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
	return int(math.Round(float64(r) * s))
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func round(v vec.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

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

package pixel

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/pixel/testcases"
)

// BenchmarkRenderAll measures drawing all test cases.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	canvases := make([]*Canvas, len(cases))
	for i, tc := range cases {
		canvases[i] = NewCanvas(tc.Width, tc.Height)
	}

	for b.Loop() {
		for i, tc := range cases {
			RenderExample(canvases[i], tc)
		}
	}
}

// BenchmarkFillTriangle compares the two triangle rasterizers.
func BenchmarkFillTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}
	col := Packed(0xFFFFFFFF)

	for _, size := range sizes {
		p0 := image.Pt(size/10, size*9/10)
		p1 := image.Pt(size/2, size/10)
		p2 := image.Pt(size*9/10, size*7/10)

		b.Run(fmt.Sprintf("box/%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			for b.Loop() {
				c.FillTriangle(p0, p1, p2, col)
			}
		})
		b.Run(fmt.Sprintf("scanline/%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			for b.Loop() {
				c.FillTriangleScanline(p0, p1, p2, col)
			}
		})
		b.Run(fmt.Sprintf("vector/%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewNRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(p0.X), float32(p0.Y))
				r.LineTo(float32(p1.X), float32(p1.Y))
				r.LineTo(float32(p2.X), float32(p2.Y))
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillCircle compares the midpoint disc against x/image/vector
// drawing a Bézier approximation of the same disc.
func BenchmarkFillCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}
	col := Packed(0xFFFFFFFF)

	for _, size := range sizes {
		center := image.Pt(size/2, size/2)
		radius := size * 45 / 100

		b.Run(fmt.Sprintf("midpoint/%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			b.ReportAllocs()
			for b.Loop() {
				c.FillCircle(center, radius, col)
			}
		})
		b.Run(fmt.Sprintf("vector/%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewNRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, float32(center.X), float32(center.Y), float32(radius))
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}

// BenchmarkLine measures Bresenham lines of various slopes.
func BenchmarkLine(b *testing.B) {
	const size = 512
	c := NewCanvas(size, size)
	col := Packed(0xFFFFFFFF)
	ends := []image.Point{{size - 1, 0}, {size - 1, size / 3}, {size - 1, size - 1}, {size / 3, size - 1}}

	b.ReportAllocs()
	for b.Loop() {
		for _, e := range ends {
			c.Line(image.Point{}, e, col)
		}
	}
}

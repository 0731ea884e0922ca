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
	"image"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFillTriangleRight(t *testing.T) {
	a, b, d := image.Pt(0, 0), image.Pt(4, 0), image.Pt(0, 4)

	want := make(map[image.Point]bool)
	for y := 0; y <= 4; y++ {
		for x := 0; x <= 4; x++ {
			l1, l2, l3, ok := Barycentric(toVec(image.Pt(x, y)), toVec(a), toVec(b), toVec(d))
			if ok && l1 >= 0 && l2 >= 0 && l3 >= 0 {
				want[image.Pt(x, y)] = true
			}
		}
	}
	if len(want) != 15 {
		t.Fatalf("brute force found %d pixels, want 15", len(want))
	}

	for _, scanline := range []bool{false, true} {
		c := NewCanvas(8, 8)
		if scanline {
			c.FillTriangleScanline(a, b, d, Packed(0xFFFFFFFF))
		} else {
			c.FillTriangle(a, b, d, Packed(0xFFFFFFFF))
		}
		if got := painted(c); !sameSet(got, want) {
			t.Errorf("scanline=%t: got %v, want %v", scanline, got, want)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	cases := [][3]image.Point{
		{{1, 1}, {7, 7}, {14, 14}},
		{{1, 5}, {9, 5}, {3, 5}},
		{{4, 1}, {4, 12}, {4, 3}},
		{{6, 6}, {6, 6}, {6, 6}},
		{{2, 2}, {2, 2}, {10, 10}},
	}
	for _, tc := range cases {
		c := NewCanvas(16, 16)
		c.FillTriangle(tc[0], tc[1], tc[2], Packed(0xFFFFFFFF))
		c.FillTriangleScanline(tc[0], tc[1], tc[2], Packed(0xFFFFFFFF))
		if n := len(painted(c)); n != 0 {
			t.Errorf("degenerate triangle %v painted %d pixels", tc, n)
		}
	}
}

func TestFillTriangleVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const size = 24
	for range 2000 {
		var v [3]image.Point
		for i := range v {
			v[i] = image.Pt(rng.IntN(size+12)-6, rng.IntN(size+12)-6)
		}

		c1 := NewCanvas(size, size)
		c1.FillTriangle(v[0], v[1], v[2], Packed(0xFFFFFFFF))
		c2 := NewCanvas(size, size)
		c2.FillTriangleScanline(v[0], v[1], v[2], Packed(0xFFFFFFFF))

		if got, want := painted(c2), painted(c1); !sameSet(got, want) {
			t.Fatalf("triangle %v: scanline fill differs from bounding-box fill", v)
		}
	}
}

func TestFillTriangleVertexOrder(t *testing.T) {
	a, b, d := image.Pt(3, 20), image.Pt(27, 4), image.Pt(17, 29)
	orders := [][3]image.Point{
		{a, b, d}, {a, d, b}, {b, a, d}, {b, d, a}, {d, a, b}, {d, b, a},
	}

	ref := NewCanvas(32, 32)
	ref.FillTriangle(a, b, d, Packed(0xFFFFFFFF))
	want := painted(ref)
	if len(want) == 0 {
		t.Fatal("triangle painted nothing")
	}
	for _, o := range orders {
		c := NewCanvas(32, 32)
		c.FillTriangle(o[0], o[1], o[2], Packed(0xFFFFFFFF))
		if !sameSet(painted(c), want) {
			t.Errorf("vertex order %v changes the result", o)
		}
	}
}

func TestFillTriangleSharedEdge(t *testing.T) {
	// Both triangles include the shared diagonal.
	c1 := NewCanvas(8, 8)
	c1.FillTriangle(image.Pt(0, 0), image.Pt(7, 0), image.Pt(0, 7), Packed(0xFFFFFFFF))
	c2 := NewCanvas(8, 8)
	c2.FillTriangle(image.Pt(7, 0), image.Pt(7, 7), image.Pt(0, 7), Packed(0xFFFFFFFF))

	p1, p2 := painted(c1), painted(c2)
	for i := range 8 {
		p := image.Pt(7-i, i)
		if !p1[p] || !p2[p] {
			t.Errorf("diagonal pixel %v not painted by both triangles", p)
		}
	}
	if n := len(p1) + len(p2); n != 64+8 {
		t.Errorf("total %d pixels, want %d", n, 64+8)
	}
}

func TestBarycentric(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 8, Y: 0}
	c := vec.Vec2{X: 0, Y: 8}

	l1, l2, l3, ok := Barycentric(vec.Vec2{X: 2, Y: 4}, a, b, c)
	if !ok {
		t.Fatal("triangle reported as degenerate")
	}
	if l1 != 0.25 || l2 != 0.25 || l3 != 0.5 {
		t.Errorf("weights = %g, %g, %g, want 0.25, 0.25, 0.5", l1, l2, l3)
	}

	_, _, _, ok = Barycentric(vec.Vec2{X: 1, Y: 1}, a, b, vec.Vec2{X: 16, Y: 0})
	if ok {
		t.Error("collinear triangle not reported as degenerate")
	}
}

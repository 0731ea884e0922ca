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
	"math"

	"seehuhn.de/go/geom/vec"
)

// FillTriangle fills the triangle with vertices p0, p1 and p2.
//
// A pixel is painted if its integer coordinates lie inside the closed
// triangle, i.e. if all three barycentric coordinates are non-negative.
// Points on an edge belong to the triangle, so two triangles which share
// an edge both paint the pixels on that edge: the fill rule does not
// partition the plane.  Triangles with collinear vertices paint nothing.
func (c *Canvas) FillTriangle(p0, p1, p2 image.Point, col Color) {
	a, b, d := toVec(p0), toVec(p1), toVec(p2)
	if area2(a, b, d) == 0 {
		return
	}

	box := image.Rectangle{
		Min: image.Pt(min(p0.X, p1.X, p2.X), min(p0.Y, p1.Y, p2.Y)),
		Max: image.Pt(max(p0.X, p1.X, p2.X)+1, max(p0.Y, p1.Y, p2.Y)+1),
	}
	box = c.clipRect(box)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if inTriangle(vec.Vec2{X: float64(x), Y: float64(y)}, a, b, d) {
				c.SetPixel(image.Pt(x, y), col)
			}
		}
	}
}

// Barycentric returns the barycentric coordinates of p with respect to
// the triangle abc, so that p = l1*a + l2*b + l3*c and l1+l2+l3 = 1.
// If the triangle has zero area, ok is false and the weights are zero.
func Barycentric(p, a, b, c vec.Vec2) (l1, l2, l3 float64, ok bool) {
	n1, n2, det := baryNumerators(p, a, b, c)
	if det == 0 {
		return 0, 0, 0, false
	}
	l1 = n1 / det
	l2 = n2 / det
	l3 = 1 - l1 - l2
	return l1, l2, l3, true
}

// baryNumerators returns the numerators of the first two barycentric
// weights of p, together with their common denominator.
//
// For integer input coordinates below 2^26 in magnitude all three values
// are exact.
func baryNumerators(p, a, b, c vec.Vec2) (n1, n2, det float64) {
	det = (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	n1 = (b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)
	n2 = (c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)
	return n1, n2, det
}

// inTriangle reports whether p lies in the closed triangle abc.
// The weights are compared against the denominator instead of being
// divided by it, so that points on an edge are classified exactly.
func inTriangle(p, a, b, c vec.Vec2) bool {
	n1, n2, det := baryNumerators(p, a, b, c)
	switch {
	case det > 0:
		return n1 >= 0 && n2 >= 0 && n1+n2 <= det
	case det < 0:
		return n1 <= 0 && n2 <= 0 && n1+n2 >= det
	default:
		return false
	}
}

// area2 returns twice the signed area of the triangle abc.
func area2(a, b, c vec.Vec2) float64 {
	u := b.Sub(a)
	v := c.Sub(a)
	return u.X*v.Y - u.Y*v.X
}

// FillTriangleScanline fills the triangle with vertices p0, p1 and p2 row
// by row.  It paints the same pixels as [Canvas.FillTriangle], but only
// visits rows and columns covered by the triangle.
func (c *Canvas) FillTriangleScanline(p0, p1, p2 image.Point, col Color) {
	// sort by y
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}
	if area2(toVec(p0), toVec(p1), toVec(p2)) == 0 {
		return
	}

	// p0-p2 spans every row.  The other side consists of p0-p1 above the
	// row of p1 and of p1-p2 from there on.
	yMin := max(p0.Y, 0)
	yMax := min(p2.Y, c.Height-1)
	for y := yMin; y <= yMax; y++ {
		lo := edgeX(p0, p2, y)
		hi := lo

		u, v := p0, p1
		if y >= p1.Y {
			u, v = p1, p2
		}
		if u.Y == v.Y {
			lo = min(lo, float64(u.X), float64(v.X))
			hi = max(hi, float64(u.X), float64(v.X))
		} else {
			x := edgeX(u, v, y)
			lo = min(lo, x)
			hi = max(hi, x)
		}

		x0 := int(math.Ceil(lo))
		x1 := int(math.Floor(hi))
		if x0 > x1 {
			continue
		}
		c.hLine(x0, x1, y, col)
	}
}

// edgeX returns the x coordinate where the edge from u to v crosses row y.
// The edge must not be horizontal.
func edgeX(u, v image.Point, y int) float64 {
	// The numerator is an exact integer, so that crossings at integer
	// positions come out exact.
	return float64(u.X) + float64((y-u.Y)*(v.X-u.X))/float64(v.Y-u.Y)
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

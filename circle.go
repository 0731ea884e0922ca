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
	"math/big"
)

// largeRadius is the radius from which circles are drawn only in the rows
// and columns of the canvas, instead of following the whole outline.
const largeRadius = 1 << 16

// Circle draws the outline of the circle with the given center and radius,
// using the midpoint circle algorithm.
// A radius of 0 plots only the center; a negative radius draws nothing.
func (c *Canvas) Circle(center image.Point, radius int, col Color) {
	cx, cy := center.X, center.Y
	plot := func(x, y int) {
		c.SetPixel(image.Pt(satAdd(cx, x), satAdd(cy, y)), col)
		c.SetPixel(image.Pt(satAdd(cx, -x), satAdd(cy, y)), col)
		c.SetPixel(image.Pt(satAdd(cx, x), satAdd(cy, -y)), col)
		c.SetPixel(image.Pt(satAdd(cx, -x), satAdd(cy, -y)), col)
		c.SetPixel(image.Pt(satAdd(cx, y), satAdd(cy, x)), col)
		c.SetPixel(image.Pt(satAdd(cx, -y), satAdd(cy, x)), col)
		c.SetPixel(image.Pt(satAdd(cx, y), satAdd(cy, -x)), col)
		c.SetPixel(image.Pt(satAdd(cx, -y), satAdd(cy, -x)), col)
	}
	if radius < largeRadius {
		midpointCircle(radius, plot)
		return
	}

	if c.Width <= 0 || c.Height <= 0 {
		return
	}
	rowLo, rowHi := reach(cy, c.Height, radius)
	colLo, colHi := reach(cx, c.Width, radius)
	if rowLo > rowHi || colLo > colHi {
		return
	}
	// An octant point (x, y) can only reach the canvas if y is the
	// distance of a canvas row or a canvas column from the center.
	last := octantEnd(radius)
	for y := rowLo; y <= min(rowHi, last); y++ {
		plot(octantX(radius, y), y)
	}
	for y := colLo; y <= min(colHi, last); y++ {
		plot(octantX(radius, y), y)
	}
}

// FillCircle draws the disc with the given center and radius.
// The disc contains all pixels of the corresponding [Canvas.Circle] outline.
// A radius of 0 plots only the center; a negative radius draws nothing.
func (c *Canvas) FillCircle(center image.Point, radius int, col Color) {
	cx, cy := center.X, center.Y
	if radius < largeRadius {
		midpointCircle(radius, func(x, y int) {
			// Every step advances y by one and x by at most one,
			// so the chords leave no rows uncovered.
			c.hLine(satAdd(cx, -x), satAdd(cx, x), satAdd(cy, y), col)
			c.hLine(satAdd(cx, -y), satAdd(cx, y), satAdd(cy, x), col)
			c.hLine(satAdd(cx, -x), satAdd(cx, x), satAdd(cy, -y), col)
			c.hLine(satAdd(cx, -y), satAdd(cx, y), satAdd(cy, -x), col)
		})
		return
	}

	// Draw the widest chord of every canvas row directly.  Row offset d
	// receives the chord of half-width x(d) from the octant point in
	// row d, and the chords of half-width y from all octant points with
	// x(y) = d.
	last := octantEnd(radius)
	xLast := octantX(radius, last)
	for py := range c.Height {
		d, ok := dist(py, cy, radius)
		if !ok {
			continue
		}
		half := -1
		if d <= last {
			half = octantX(radius, d)
		}
		if d >= xLast {
			half = max(half, octantLastRow(radius, d, last))
		}
		if half >= 0 {
			c.hLine(satAdd(cx, -half), satAdd(cx, half), py, col)
		}
	}
}

// midpointCircle calls visit for every point (x, y) of the first octant
// (x >= y >= 0) of the circle outline with the given radius.
func midpointCircle(radius int, visit func(x, y int)) {
	x, y := radius, 0
	e := 0
	for x >= y {
		visit(x, y)

		y++
		e += 1 + 2*y
		if 2*(e-x)+1 > 0 {
			x--
			e += 1 - 2*x
		}
	}
}

// octantX returns the x coordinate of the point in row y which
// midpointCircle visits, without walking through the rows before y.
// The result is exact for radius >= 2 and 0 <= y <= octantEnd(radius).
func octantX(radius, y int) int {
	if y == 0 {
		return radius
	}
	// midpointCircle moves x by at most one per row
	return max(octantBound(radius, y), octantBound(radius, y-1)-1)
}

// octantBound returns the largest x for which midpointCircle, on entering
// row y at column x, does not step to x-1.
func octantBound(radius, y int) int {
	// The step is skipped iff (2x-3)² <= 4(r-y-2)(r+y) + 7.
	r := big.NewInt(int64(radius))
	yy := big.NewInt(int64(y))
	d := new(big.Int).Sub(r, yy)
	d.Sub(d, big.NewInt(2))
	d.Mul(d, new(big.Int).Add(r, yy))
	d.Lsh(d, 2)
	d.Add(d, big.NewInt(7))
	if d.Sign() < 0 {
		return -1
	}
	d.Sqrt(d)
	d.Add(d, big.NewInt(3))
	d.Rsh(d, 1)
	return int(d.Int64())
}

// octantEnd returns the last row visited by midpointCircle.
func octantEnd(radius int) int {
	lo, hi := 0, radius
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if octantX(radius, mid) >= mid {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// octantLastRow returns the last row y <= last of the octant in which
// the outline is at least x away from the center.
func octantLastRow(radius, x, last int) int {
	lo, hi := 0, last
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if octantX(radius, mid) >= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// dist returns |a-b|.  The result is false if the distance exceeds limit.
func dist(a, b, limit int) (int, bool) {
	var d uint64
	if a >= b {
		d = uint64(a) - uint64(b)
	} else {
		d = uint64(b) - uint64(a)
	}
	if d > uint64(limit) {
		return 0, false
	}
	return int(d), true
}

// reach returns the smallest and the largest distance between v and the
// coordinates 0, ..., size-1, with distances capped at limit.
// If all distances exceed limit, lo > hi.
func reach(v, size, limit int) (lo, hi int) {
	lo, ok := dist(v, min(max(v, 0), size-1), limit)
	if !ok {
		return 0, -1
	}
	d0, ok0 := dist(v, 0, limit)
	d1, ok1 := dist(v, size-1, limit)
	if ok0 && ok1 {
		return lo, max(d0, d1)
	}
	return lo, limit
}

// satAdd returns a+b, saturated to the range of int.
func satAdd(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}

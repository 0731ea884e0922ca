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
	"math/bits"
)

// Line draws the straight segment from a to b, both end points included,
// using Bresenham's algorithm.
//
// The segment is always traced starting at its left-most (then top-most)
// end point, so that Line(a, b) and Line(b, a) paint the same pixels.
// Only the steps which fall into the canvas are visited, so the cost
// does not depend on how far the end points lie outside.
func (c *Canvas) Line(a, b image.Point, col Color) {
	if b.X < a.X || b.X == a.X && b.Y < a.Y {
		a, b = b, a
	}
	if b.X < 0 || a.X >= c.Width || max(a.Y, b.Y) < 0 || min(a.Y, b.Y) >= c.Height {
		return
	}

	// The differences are exact for all int end points.
	dx := uint64(b.X) - uint64(a.X)
	dy := uint64(b.Y) - uint64(a.Y)
	sy := 1
	if b.Y < a.Y {
		dy = uint64(a.Y) - uint64(b.Y)
		sy = -1
	}

	// With the error term starting at dx/2, Bresenham's algorithm moves
	// the minor coordinate (k·dy + dx-1-dx/2) / dx times during the first
	// k steps along the major axis.  Steep lines swap the roles of dx and dy.
	switch {
	case dx > dy:
		k0, k1, ok := stepRange(a.X, 1, dx, c.Width)
		if !ok {
			return
		}
		for k := k0; ; k++ {
			m := mulDiv(k, dy, dx-1-dx/2, dx)
			c.SetPixel(image.Pt(a.X+int(k), a.Y+sy*int(m)), col)
			if k == k1 {
				break
			}
		}
	case dy == 0:
		c.SetPixel(a, col)
	default:
		k0, k1, ok := stepRange(a.Y, sy, dy, c.Height)
		if !ok {
			return
		}
		for k := k0; ; k++ {
			m := mulDiv(k, dx, dy-1-dy/2, dy)
			c.SetPixel(image.Pt(a.X+int(m), a.Y+sy*int(k)), col)
			if k == k1 {
				break
			}
		}
	}
}

// stepRange returns the range k0 <= k <= k1 of steps k in [0, n] for which
// from+sign*k lies in [0, size).
func stepRange(from, sign int, n uint64, size int) (k0, k1 uint64, ok bool) {
	if size <= 0 {
		return 0, 0, false
	}
	if sign < 0 {
		if from < 0 {
			return 0, 0, false
		}
		k1 = min(n, uint64(from))
		if from >= size {
			k0 = uint64(from) - uint64(size-1)
		}
	} else {
		if from >= size {
			return 0, 0, false
		}
		k1 = min(n, uint64(size-1)-uint64(from))
		if from < 0 {
			k0 = -uint64(from)
		}
	}
	return k0, k1, k0 <= k1
}

// mulDiv returns (k*m + add) / d, computed without overflow.
// The caller must ensure k <= d and add < d.
func mulDiv(k, m, add, d uint64) uint64 {
	hi, lo := bits.Mul64(k, m)
	lo, carry := bits.Add64(lo, add, 0)
	q, _ := bits.Div64(hi+carry, lo, d)
	return q
}

// Polyline draws the segments connecting consecutive points.
// A single point is plotted on its own; an empty slice draws nothing.
func (c *Canvas) Polyline(points []image.Point, col Color) {
	switch len(points) {
	case 0:
		return
	case 1:
		c.SetPixel(points[0], col)
		return
	}
	for i := 1; i < len(points); i++ {
		c.Line(points[i-1], points[i], col)
	}
}

// hLine draws the horizontal run of pixels between x0 and x1 (inclusive)
// in row y.  The run is clipped to the canvas before it is drawn.
func (c *Canvas) hLine(x0, x1, y int, col Color) {
	if y < 0 || y >= c.Height {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width-1)
	if x0 > x1 {
		return
	}
	c.Line(image.Pt(x0, y), image.Pt(x1, y), col)
}

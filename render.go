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

//go:generate go run ./testcases/genpng
//go:generate go run ./testcases/export

import (
	"image"

	"seehuhn.de/go/pixel/testcases"
)

// RenderExample draws the operations of a test case onto c, in order.
// The CTM of the test case is applied to all coordinates before drawing.
func RenderExample(c *Canvas, tc testcases.TestCase) {
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			c.Line(tc.Place(op.From), tc.Place(op.To), Packed(op.Color))
		case testcases.Circle:
			center := tc.Place(op.Center)
			radius := tc.PlaceRadius(op.Radius)
			if op.Filled {
				c.FillCircle(center, radius, Packed(op.Color))
			} else {
				c.Circle(center, radius, Packed(op.Color))
			}
		case testcases.Rect:
			c.FillRect(tc.Place(op.Origin), tc.PlaceExtent(op.Extent), Packed(op.Color))
		case testcases.Triangle:
			a, b, d := tc.Place(op.A), tc.Place(op.B), tc.Place(op.C)
			if op.Scanline {
				c.FillTriangleScanline(a, b, d, Packed(op.Color))
			} else {
				c.FillTriangle(a, b, d, Packed(op.Color))
			}
		case testcases.Spline:
			pts := make([]image.Point, len(op.Points))
			for i, p := range op.Points {
				pts[i] = tc.Place(p)
			}
			c.Spline(pts, Packed(op.Color))
		}
	}
}

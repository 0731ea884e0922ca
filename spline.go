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

	"seehuhn.de/go/geom/vec"
)

// SplineSamples is the number of points sampled per spline segment.
const SplineSamples = 32

// Spline draws the uniform cubic B-spline with the given control points.
//
// Every window of four consecutive control points defines one segment of
// the curve.  The segments are sampled with [SplinePoints] and the samples
// are joined into a single polyline.  The curve does not, in general, pass
// through the control points.  To draw a closed curve, repeat the first
// three control points at the end.
//
// If fewer than four control points are given, nothing is drawn.
func (c *Canvas) Spline(points []image.Point, col Color) {
	samples := SplinePoints(points)
	if samples == nil {
		return
	}
	c.Polyline(samples, col)
}

// SplinePoints returns the sample points of the uniform cubic B-spline with
// the given control points, [SplineSamples] points per segment.  Segment i
// uses the control points i, ..., i+3 and is sampled at t = k/SplineSamples
// for k = 0, ..., SplineSamples-1.  Sample coordinates are truncated
// towards zero.
//
// If fewer than four control points are given, the result is nil.
func SplinePoints(points []image.Point) []image.Point {
	if len(points) < 4 {
		return nil
	}

	res := make([]image.Point, 0, (len(points)-3)*SplineSamples)
	for i := 0; i+3 < len(points); i++ {
		p0 := toVec(points[i])
		p1 := toVec(points[i+1])
		p2 := toVec(points[i+2])
		p3 := toVec(points[i+3])

		// 6·B(t) = a0 + a1·t + a2·t² + a3·t³
		a0 := p0.Add(p1.Mul(4)).Add(p2)
		a1 := p2.Sub(p0).Mul(3)
		a2 := p0.Sub(p1.Mul(2)).Add(p2).Mul(3)
		a3 := p3.Sub(p0).Add(p1.Sub(p2).Mul(3))

		for k := range SplineSamples {
			t := float64(k) / SplineSamples
			q := a0.Add(a1.Mul(t)).Add(a2.Mul(t * t)).Add(a3.Mul(t * t * t))
			res = append(res, image.Pt(int(q.X/6), int(q.Y/6)))
		}
	}
	return res
}

// BezierSegments converts the uniform cubic B-spline with the given control
// points into cubic Bézier segments.  Each element of the result holds the
// start point, the two control points and the end point of one segment.
//
// If fewer than four control points are given, the result is nil.
func BezierSegments(points []image.Point) [][4]vec.Vec2 {
	if len(points) < 4 {
		return nil
	}

	res := make([][4]vec.Vec2, 0, len(points)-3)
	for i := 0; i+3 < len(points); i++ {
		p0 := toVec(points[i])
		p1 := toVec(points[i+1])
		p2 := toVec(points[i+2])
		p3 := toVec(points[i+3])
		res = append(res, [4]vec.Vec2{
			p0.Add(p1.Mul(4)).Add(p2).Mul(1.0 / 6),
			p1.Mul(2).Add(p2).Mul(1.0 / 3),
			p1.Add(p2.Mul(2)).Mul(1.0 / 3),
			p1.Add(p2.Mul(4)).Add(p3).Mul(1.0 / 6),
		})
	}
	return res
}

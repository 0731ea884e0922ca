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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
)

var demoCases = []TestCase{
	{
		Name:   "face",
		Width:  64,
		Height: 64,
		Ops:    Face(),
	},
	{
		Name:   "face_scaled",
		Width:  256,
		Height: 192,
		Ops:    Face(),
		CTM:    matrix.Scale(2, 2).Translate(64, 32),
	},
	{
		Name:   "scene",
		Width:  320,
		Height: 240,
		Ops:    Demo(320, 240),
	},
}

// Face returns a stylized cat face built from discs and lines.
// The face fits into a 64x64 canvas.
func Face() []Operation {
	const (
		body    = 0xFFFFFFFF
		ear     = 0xFF888888
		eye     = 0xFF000000
		nose    = 0xFFFF00FF
		whisker = 0xFF0000FF
		mouth   = 0xFF000000
	)
	return []Operation{
		// body
		Circle{Center: pt(32, 32), Radius: 30, Filled: true, Color: body},
		Circle{Center: pt(32, 38), Radius: 26, Filled: true, Color: body},
		Circle{Center: pt(32, 44), Radius: 22, Filled: true, Color: body},

		// ears
		Circle{Center: pt(15, 15), Radius: 7, Filled: true, Color: ear},
		Circle{Center: pt(49, 15), Radius: 7, Filled: true, Color: ear},

		// eyes
		Circle{Center: pt(22, 22), Radius: 4, Filled: true, Color: eye},
		Circle{Center: pt(42, 22), Radius: 4, Filled: true, Color: eye},

		// nose
		Line{From: pt(32, 32), To: pt(32, 37), Color: nose},
		Circle{Center: pt(32, 37), Radius: 2, Filled: true, Color: nose},

		// whiskers
		Line{From: pt(27, 35), To: pt(32, 45), Color: whisker},
		Line{From: pt(37, 35), To: pt(32, 45), Color: whisker},

		// mouth
		Line{From: pt(32, 40), To: pt(32, 44), Color: mouth},
	}
}

// Demo returns a scene which uses every primitive at least once,
// for a canvas of the given size.
func Demo(width, height int) []Operation {
	size := pt(width, height)
	ops := []Operation{
		Rect{Origin: pt(0, 0), Extent: size, Color: 0x005511FF},
		Triangle{A: pt(width, 0), B: pt(0, height), C: size.Sub(pt(20, 20)), Color: 0x552211FF},

		Line{From: pt(0, 0), To: pt(100, 100), Color: 0xFF0000FF},
		Line{From: pt(0, 50), To: pt(100, 50), Color: 0x00FF00FF},
		Line{From: pt(50, 0), To: pt(50, 100), Color: 0x0000FFFF},
		Line{From: pt(0, 0), To: pt(50, 100), Color: 0xFFFF00FF},
		Line{From: pt(0, 0), To: pt(100, 50), Color: 0xFFFF00FF},

		Circle{Center: pt(50, 50), Radius: 10, Filled: true, Color: 0xFF00FFFF},
	}
	ops = append(ops, Face()...)
	ops = append(ops,
		Circle{Center: pt(100, 100), Radius: 50, Color: 0xFFFFFFFF},
		Rect{Origin: pt(200, 100), Extent: pt(50, 30), Color: 0x0055FFFF},
		Spline{
			Points: []image.Point{
				pt(50, 50),
				pt(width-50, 50),
				pt(width-50, height-50),
				pt(50, height-50),
				pt(50, 50),
			},
			Color: 0xFF0000FF,
		},
	)
	return ops
}

package testcases

import "image"

var splineCases = []TestCase{
	{
		Name:   "open",
		Width:  64,
		Height: 64,
		Ops: []Operation{Spline{
			Points: []image.Point{pt(4, 60), pt(10, 4), pt(32, 60), pt(54, 4), pt(60, 60)},
			Color:  0xFF0000FF,
		}},
	},
	{
		// The first three control points are repeated to close the curve.
		Name:   "closed",
		Width:  64,
		Height: 64,
		Ops: []Operation{Spline{
			Points: []image.Point{
				pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52),
				pt(12, 12), pt(52, 12), pt(52, 52),
			},
			Color: 0xFFFF00FF,
		}},
	},
	{
		Name:   "too_few",
		Width:  16,
		Height: 16,
		Ops: []Operation{Spline{
			Points: []image.Point{pt(1, 1), pt(14, 1), pt(14, 14)},
			Color:  0xFFFFFFFF,
		}},
	},
}

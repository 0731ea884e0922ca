package testcases

import "image"

// boundsCases use coordinates far outside of the canvas.
var boundsCases = []TestCase{
	{
		Name:   "far_line",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Line{From: pt(-70000, -70000), To: pt(70000, 70000), Color: 0xFFFFFFFF},
			Line{From: pt(-100, 5), To: pt(-1, 5), Color: 0xFF0000FF},
		},
	},
	{
		Name:   "far_shapes",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Circle{Center: pt(8, 8), Radius: 100000, Filled: true, Color: 0x00FF00FF},
			Circle{Center: pt(-50000, 8), Radius: 50004, Color: 0xFF0000FF},
			Rect{Origin: pt(-1 << 20, -1 << 20), Extent: pt(1<<20+4, 1<<20+4), Color: 0x0000FFFF},
			Triangle{A: pt(-70000, 0), B: pt(70000, 0), C: pt(0, 70000), Color: 0xFFFF00FF},
			Spline{
				Points: []image.Point{pt(-70000, 8), pt(0, 8), pt(16, 8), pt(70000, 8)},
				Color:  0xFF00FFFF,
			},
		},
	},
}

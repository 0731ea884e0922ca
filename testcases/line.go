package testcases

import "math"

var lineCases = []TestCase{
	{
		Name:   "diagonal",
		Width:  10,
		Height: 10,
		Ops:    []Operation{Line{From: pt(0, 0), To: pt(9, 9), Color: 0xFF0000FF}},
	},
	{
		Name:   "shallow",
		Width:  32,
		Height: 16,
		Ops:    []Operation{Line{From: pt(1, 2), To: pt(30, 13), Color: 0xFFFFFFFF}},
	},
	{
		Name:   "steep",
		Width:  16,
		Height: 32,
		Ops:    []Operation{Line{From: pt(13, 30), To: pt(2, 1), Color: 0xFFFFFFFF}},
	},
	{
		Name:   "axes",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			Line{From: pt(0, 16), To: pt(31, 16), Color: 0x00FF00FF},
			Line{From: pt(16, 0), To: pt(16, 31), Color: 0x0000FFFF},
		},
	},
	{
		Name:   "point",
		Width:  8,
		Height: 8,
		Ops:    []Operation{Line{From: pt(3, 4), To: pt(3, 4), Color: 0xFFFF00FF}},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Ops:    star(32, 32, 28, 24, 0xFFFFFFFF),
	},
}

// star builds n lines from the center to points on a circle.
func star(cx, cy, r float64, n int, color uint32) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		to := pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
		ops[i] = Line{From: pt(int(cx), int(cy)), To: to, Color: color}
	}
	return ops
}

package testcases

var circleCases = []TestCase{
	{
		Name:   "outline_r0",
		Width:  8,
		Height: 8,
		Ops:    []Operation{Circle{Center: pt(4, 4), Radius: 0, Color: 0xFFFFFFFF}},
	},
	{
		Name:   "outline_r5",
		Width:  16,
		Height: 16,
		Ops:    []Operation{Circle{Center: pt(8, 8), Radius: 5, Color: 0xFFFFFFFF}},
	},
	{
		Name:   "outline_r25",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Circle{Center: pt(32, 32), Radius: 25, Color: 0xFFFFFFFF}},
	},
	{
		Name:   "disc_r2",
		Width:  10,
		Height: 10,
		Ops:    []Operation{Circle{Center: pt(5, 5), Radius: 2, Filled: true, Color: 0x00FF00FF}},
	},
	{
		Name:   "disc_r25",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Circle{Center: pt(32, 32), Radius: 25, Filled: true, Color: 0xFF00FFFF}},
	},
	{
		Name:   "disc_with_outline",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Circle{Center: pt(32, 32), Radius: 20, Filled: true, Color: 0x0000FFFF},
			Circle{Center: pt(32, 32), Radius: 20, Color: 0xFFFFFFFF},
		},
	},
	{
		Name:   "corner",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			Circle{Center: pt(0, 0), Radius: 12, Filled: true, Color: 0xFF0000FF},
			Circle{Center: pt(31, 31), Radius: 12, Color: 0x00FF00FF},
		},
	},
}

package testcases

var rectCases = []TestCase{
	{
		Name:   "inside",
		Width:  32,
		Height: 32,
		Ops:    []Operation{Rect{Origin: pt(4, 6), Extent: pt(20, 10), Color: 0x0055FFFF}},
	},
	{
		Name:   "overlapping_edge",
		Width:  32,
		Height: 32,
		Ops:    []Operation{Rect{Origin: pt(-8, 24), Extent: pt(20, 20), Color: 0x0055FFFF}},
	},
	{
		Name:   "empty",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Rect{Origin: pt(4, 4), Extent: pt(0, 8), Color: 0xFFFFFFFF},
			Rect{Origin: pt(4, 4), Extent: pt(8, -3), Color: 0xFFFFFFFF},
		},
	},
}

var triangleCases = []TestCase{
	{
		Name:   "right",
		Width:  8,
		Height: 8,
		Ops:    []Operation{Triangle{A: pt(0, 0), B: pt(4, 0), C: pt(0, 4), Color: 0xFFFFFFFF}},
	},
	{
		Name:   "general",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Triangle{A: pt(10, 50), B: pt(32, 10), C: pt(54, 50), Color: 0x552211FF}},
	},
	{
		Name:   "general_scanline",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Triangle{A: pt(10, 50), B: pt(32, 10), C: pt(54, 50), Scanline: true, Color: 0x552211FF}},
	},
	{
		Name:   "flat_top",
		Width:  32,
		Height: 32,
		Ops:    []Operation{Triangle{A: pt(2, 3), B: pt(29, 3), C: pt(11, 28), Color: 0xFF8800FF}},
	},
	{
		Name:   "flat_bottom",
		Width:  32,
		Height: 32,
		Ops:    []Operation{Triangle{A: pt(20, 2), B: pt(3, 27), C: pt(30, 27), Scanline: true, Color: 0xFF8800FF}},
	},
	{
		Name:   "adjacent",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			Triangle{A: pt(2, 2), B: pt(29, 2), C: pt(2, 29), Color: 0xFF0000FF},
			Triangle{A: pt(29, 2), B: pt(29, 29), C: pt(2, 29), Color: 0x00FF00FF},
		},
	},
	{
		Name:   "degenerate",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Triangle{A: pt(1, 1), B: pt(7, 7), C: pt(14, 14), Color: 0xFFFFFFFF},
			Triangle{A: pt(1, 1), B: pt(7, 7), C: pt(14, 14), Scanline: true, Color: 0xFFFFFFFF},
		},
	},
}

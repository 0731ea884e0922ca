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
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
)

// file is the YAML representation of a list of test cases.
type file struct {
	TestCases []yamlTestCase `yaml:"testcases"`
}

type yamlTestCase struct {
	Name   string    `yaml:"name"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	CTM    []float64 `yaml:"ctm,omitempty,flow"`
	Ops    []yamlOp  `yaml:"ops"`
}

type yamlOp struct {
	Op       string   `yaml:"op"`
	Points   [][2]int `yaml:"points,flow"`
	Extent   *[2]int  `yaml:"extent,omitempty,flow"`
	Radius   int      `yaml:"radius,omitempty"`
	Scanline bool     `yaml:"scanline,omitempty"`
	Color    string   `yaml:"color"`
}

// Operation names used in the YAML representation.
const (
	opLine     = "line"
	opCircle   = "circle"
	opDisc     = "disc"
	opRect     = "rect"
	opTriangle = "triangle"
	opSpline   = "spline"
)

// Encode writes the test cases to w in YAML format.
func Encode(w io.Writer, cases []TestCase) error {
	var out file
	for _, tc := range cases {
		ytc := yamlTestCase{
			Name:   tc.Name,
			Width:  tc.Width,
			Height: tc.Height,
		}
		if tc.CTM != (matrix.Matrix{}) {
			ytc.CTM = tc.CTM[:]
		}
		for _, op := range tc.Ops {
			ytc.Ops = append(ytc.Ops, toYAML(op))
		}
		out.TestCases = append(out.TestCases, ytc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding test cases: %w", err)
	}
	return enc.Close()
}

// Decode reads test cases in the format written by [Encode].
func Decode(r io.Reader) ([]TestCase, error) {
	var in file
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding test cases: %w", err)
	}

	cases := make([]TestCase, 0, len(in.TestCases))
	for _, ytc := range in.TestCases {
		tc := TestCase{
			Name:   ytc.Name,
			Width:  ytc.Width,
			Height: ytc.Height,
		}
		if tc.Width < 0 || tc.Height < 0 {
			return nil, fmt.Errorf("%s: invalid canvas size %dx%d", tc.Name, tc.Width, tc.Height)
		}
		switch len(ytc.CTM) {
		case 0:
			// no transform
		case 6:
			copy(tc.CTM[:], ytc.CTM)
		default:
			return nil, fmt.Errorf("%s: ctm needs 6 entries, got %d", tc.Name, len(ytc.CTM))
		}
		for i, yop := range ytc.Ops {
			op, err := fromYAML(yop)
			if err != nil {
				return nil, fmt.Errorf("%s: op %d: %w", tc.Name, i, err)
			}
			tc.Ops = append(tc.Ops, op)
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

func toYAML(op Operation) yamlOp {
	switch op := op.(type) {
	case Line:
		return yamlOp{Op: opLine, Points: points(op.From, op.To), Color: formatColor(op.Color)}
	case Circle:
		name := opCircle
		if op.Filled {
			name = opDisc
		}
		return yamlOp{Op: name, Points: points(op.Center), Radius: op.Radius, Color: formatColor(op.Color)}
	case Rect:
		return yamlOp{
			Op:     opRect,
			Points: points(op.Origin),
			Extent: &[2]int{op.Extent.X, op.Extent.Y},
			Color:  formatColor(op.Color),
		}
	case Triangle:
		return yamlOp{
			Op:       opTriangle,
			Points:   points(op.A, op.B, op.C),
			Scanline: op.Scanline,
			Color:    formatColor(op.Color),
		}
	case Spline:
		return yamlOp{Op: opSpline, Points: points(op.Points...), Color: formatColor(op.Color)}
	default:
		panic(fmt.Sprintf("unexpected operation %T", op))
	}
}

var errPointCount = errors.New("wrong number of points")

func fromYAML(yop yamlOp) (Operation, error) {
	color, err := parseColor(yop.Color)
	if err != nil {
		return nil, err
	}

	pts := make([]image.Point, len(yop.Points))
	for i, p := range yop.Points {
		pts[i] = pt(p[0], p[1])
	}
	want := map[string]int{
		opLine:     2,
		opCircle:   1,
		opDisc:     1,
		opRect:     1,
		opTriangle: 3,
	}
	if n, ok := want[yop.Op]; ok && len(pts) != n {
		return nil, fmt.Errorf("%s: %w (want %d, got %d)", yop.Op, errPointCount, n, len(pts))
	}

	switch yop.Op {
	case opLine:
		return Line{From: pts[0], To: pts[1], Color: color}, nil
	case opCircle, opDisc:
		return Circle{Center: pts[0], Radius: yop.Radius, Filled: yop.Op == opDisc, Color: color}, nil
	case opRect:
		if yop.Extent == nil {
			return nil, errors.New("rect: missing extent")
		}
		return Rect{Origin: pts[0], Extent: pt(yop.Extent[0], yop.Extent[1]), Color: color}, nil
	case opTriangle:
		return Triangle{A: pts[0], B: pts[1], C: pts[2], Scanline: yop.Scanline, Color: color}, nil
	case opSpline:
		return Spline{Points: pts, Color: color}, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", yop.Op)
	}
}

func points(pts ...image.Point) [][2]int {
	res := make([][2]int, len(pts))
	for i, p := range pts {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}

// formatColor writes a packed color as "#rrggbbaa".
func formatColor(c uint32) string {
	return fmt.Sprintf("#%08x", c)
}

// parseColor reads colors in the form "#rrggbbaa" or "#rrggbb".
// The alpha channel defaults to 0xff.
func parseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 8:
		return uint32(v), nil
	case 6:
		return uint32(v)<<8 | 0xFF, nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}

package testcases

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

const sampleScene = `
testcases:
  - name: sample
    width: 32
    height: 24
    ctm: [2, 0, 0, 2, 1, 1]
    ops:
      - {op: rect, points: [[0, 0]], extent: [32, 24], color: "#005511"}
      - {op: line, points: [[0, 0], [9, 9]], color: "#ff0000ff"}
      - {op: disc, points: [[5, 5]], radius: 2, color: "#00ff00ff"}
      - {op: circle, points: [[5, 5]], radius: 4, color: "#ffffffff"}
      - {op: triangle, points: [[0, 0], [4, 0], [0, 4]], scanline: true, color: "#552211ff"}
      - {op: spline, points: [[1, 1], [8, 1], [8, 8], [1, 8]], color: "#ffff00ff"}
`

func TestDecode(t *testing.T) {
	cases, err := Decode(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 1 {
		t.Fatalf("got %d test cases, want 1", len(cases))
	}
	tc := cases[0]
	if tc.Name != "sample" || tc.Width != 32 || tc.Height != 24 {
		t.Errorf("header = %q %dx%d", tc.Name, tc.Width, tc.Height)
	}
	if tc.CTM != (matrix.Matrix{2, 0, 0, 2, 1, 1}) {
		t.Errorf("CTM = %v", tc.CTM)
	}

	want := []Operation{
		Rect{Origin: pt(0, 0), Extent: pt(32, 24), Color: 0x005511FF},
		Line{From: pt(0, 0), To: pt(9, 9), Color: 0xFF0000FF},
		Circle{Center: pt(5, 5), Radius: 2, Filled: true, Color: 0x00FF00FF},
		Circle{Center: pt(5, 5), Radius: 4, Color: 0xFFFFFFFF},
		Triangle{A: pt(0, 0), B: pt(4, 0), C: pt(0, 4), Scanline: true, Color: 0x552211FF},
	}
	if len(tc.Ops) != len(want)+1 {
		t.Fatalf("got %d operations, want %d", len(tc.Ops), len(want)+1)
	}
	for i, op := range want {
		if tc.Ops[i] != op {
			t.Errorf("op %d = %#v, want %#v", i, tc.Ops[i], op)
		}
	}
	spline, ok := tc.Ops[len(want)].(Spline)
	if !ok || len(spline.Points) != 4 || spline.Points[2] != pt(8, 8) || spline.Color != 0xFFFF00FF {
		t.Errorf("spline = %#v", tc.Ops[len(want)])
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name, op string
	}{
		{"bad_color", `{op: line, points: [[0, 0], [1, 1]], color: "#12345"}`},
		{"not_hex", `{op: line, points: [[0, 0], [1, 1]], color: "red"}`},
		{"points", `{op: triangle, points: [[0, 0], [1, 1]], color: "#ffffff"}`},
		{"unknown", `{op: ellipse, points: [[0, 0]], color: "#ffffff"}`},
		{"extent", `{op: rect, points: [[0, 0]], color: "#ffffff"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := "testcases:\n  - name: x\n    width: 4\n    height: 4\n    ops:\n      - " + tc.op + "\n"
			if _, err := Decode(strings.NewReader(in)); err == nil {
				t.Errorf("no error for %s", tc.op)
			}
		})
	}

	in := "testcases:\n  - name: x\n    width: 4\n    height: 4\n    ops:\n      - {op: line, points: [[0, 0]], color: \"#ffffff\"}\n"
	_, err := Decode(strings.NewReader(in))
	if !errors.Is(err, errPointCount) {
		t.Errorf("got %v, want errPointCount", err)
	}

	in = "testcases:\n  - name: x\n    width: 4\n    height: 4\n    ctm: [1, 2, 3]\n"
	if _, err := Decode(strings.NewReader(in)); err == nil {
		t.Error("no error for short ctm")
	}
}

func TestEncodeNames(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(buf, []TestCase{{
		Name:   "tiny",
		Width:  2,
		Height: 2,
		Ops:    []Operation{Line{From: pt(0, 0), To: pt(1, 1), Color: 0xFF0000FF}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"name: tiny", "op: line", "ff0000ff", "points:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ctm") {
		t.Errorf("identity placement written:\n%s", out)
	}
}

func TestPlace(t *testing.T) {
	tc := TestCase{CTM: matrix.Matrix{2, 0, 0, 2, 10, 20}}
	if got := tc.Place(pt(3, 4)); got != pt(16, 28) {
		t.Errorf("Place = %v", got)
	}
	if got := tc.PlaceExtent(pt(3, 4)); got != pt(6, 8) {
		t.Errorf("PlaceExtent = %v", got)
	}
	if got := tc.PlaceRadius(5); got != 10 {
		t.Errorf("PlaceRadius = %d", got)
	}

	var identity TestCase
	if got := identity.Place(image.Pt(-7, 9)); got != pt(-7, 9) {
		t.Errorf("identity Place = %v", got)
	}

	// quarter turn about the origin, then a shift
	rot := TestCase{CTM: matrix.Matrix{0, 1, -1, 0, 5, 5}}
	if got := rot.Place(pt(3, 4)); got != pt(1, 8) {
		t.Errorf("rotated Place = %v", got)
	}
	if got := rot.PlaceExtent(pt(3, 4)); got != pt(-4, 3) {
		t.Errorf("rotated PlaceExtent = %v", got)
	}
	if got := rot.PlaceRadius(5); got != 5 {
		t.Errorf("rotated PlaceRadius = %d", got)
	}
}

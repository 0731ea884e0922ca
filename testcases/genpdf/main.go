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

// Command genpdf writes vector previews of the test cases.
// Every scene is drawn as a PDF page with ideal (unrasterized) geometry,
// so that rasterizer output can be compared against it by eye.  With -png,
// the pages are additionally rendered to PNG using Ghostscript.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

const previewDir = "testdata/preview"

func main() {
	withPNG := flag.Bool("png", false, "also render the previews using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(previewDir, 0755); err != nil {
		slog.Error("cannot create output directory", "dir", previewDir, "error", err)
		os.Exit(1)
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				slog.Error("cannot write preview", "name", name, "error", err)
				os.Exit(1)
			}
			if *withPNG {
				pngPath := filepath.Join(previewDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					slog.Error("cannot render preview", "name", name, "error", err)
					os.Exit(1)
				}
			}
			count++
		}
	}
	slog.Info("previews written", "count", count, "dir", previewDir)
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// Pixel (x, y) covers the unit square to the lower right of (x, y),
	// so integer coordinates are moved to the pixel centers.
	page.Transform(matrix.Identity.Translate(0.5, 0.5))
	if m := tc.Transform(); m != matrix.Identity {
		page.Transform(m)
	}

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			page.SetStrokeColor(deviceRGB(op.Color))
			page.MoveTo(float64(op.From.X), float64(op.From.Y))
			page.LineTo(float64(op.To.X), float64(op.To.Y))
			page.Stroke()

		case testcases.Circle:
			if op.Radius < 0 {
				continue
			}
			addCircle(page, float64(op.Center.X), float64(op.Center.Y), float64(op.Radius))
			if op.Filled {
				page.SetFillColor(deviceRGB(op.Color))
				page.Fill()
			} else {
				page.SetStrokeColor(deviceRGB(op.Color))
				page.Stroke()
			}

		case testcases.Rect:
			if op.Extent.X <= 0 || op.Extent.Y <= 0 {
				continue
			}
			page.SetFillColor(deviceRGB(op.Color))
			page.Rectangle(float64(op.Origin.X)-0.5, float64(op.Origin.Y)-0.5,
				float64(op.Extent.X), float64(op.Extent.Y))
			page.Fill()

		case testcases.Triangle:
			page.SetFillColor(deviceRGB(op.Color))
			page.MoveTo(float64(op.A.X), float64(op.A.Y))
			page.LineTo(float64(op.B.X), float64(op.B.Y))
			page.LineTo(float64(op.C.X), float64(op.C.Y))
			page.ClosePath()
			page.Fill()

		case testcases.Spline:
			segs := pixel.BezierSegments(op.Points)
			if segs == nil {
				continue
			}
			page.SetStrokeColor(deviceRGB(op.Color))
			page.MoveTo(segs[0][0].X, segs[0][0].Y)
			for _, s := range segs {
				page.CurveTo(s[1].X, s[1].Y, s[2].X, s[2].Y, s[3].X, s[3].Y)
			}
			page.Stroke()
		}
	}

	return page.Close()
}

// rgb returns the red, green and blue channels of a packed 0xRRGGBBAA
// color, scaled to [0, 1].  Alpha is ignored.
func rgb(c uint32) (r, g, b float64) {
	r = float64(c>>24&0xFF) / 255
	g = float64(c>>16&0xFF) / 255
	b = float64(c>>8&0xFF) / 255
	return r, g, b
}

// deviceRGB converts a packed 0xRRGGBBAA color to a PDF DeviceRGB color.
func deviceRGB(c uint32) color.DeviceRGB {
	r, g, b := rgb(c)
	return color.DeviceRGB{r, g, b}
}

// pathBuilder is the part of the page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// addCircle adds a circle to the current path using cubic Bézier curves.
func addCircle(page pathBuilder, cx, cy, r float64) {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	c := vec.Vec2{X: cx, Y: cy}
	at := func(dx, dy float64) vec.Vec2 { return c.Add(vec.Vec2{X: dx, Y: dy}) }
	curve := func(p1, p2, p3 vec.Vec2) { page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y) }

	start := at(0, -r)
	page.MoveTo(start.X, start.Y)
	curve(at(kr, -r), at(r, -kr), at(r, 0))
	curve(at(r, kr), at(kr, r), at(0, r))
	curve(at(-kr, r), at(-r, kr), at(-r, 0))
	curve(at(-r, -kr), at(-kr, -r), start)
	page.ClosePath()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript: %w", err)
	}
	return nil
}

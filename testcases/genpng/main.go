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

// Command genpng writes the reference images for the rasterizer tests.
// Run from the module root directory.
//
// With -scene, the test cases are read from a YAML file (in the format
// written by the export command) instead.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	scene := flag.String("scene", "", "render the test cases from this YAML `file`")
	verbose := flag.Bool("v", false, "log every image written")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cases, err := loadCases(*scene)
	if err == nil {
		err = writeAll(logger, *outDir, cases)
	}
	if err != nil {
		logger.Error("genpng failed", "error", err)
		os.Exit(1)
	}
}

// loadCases returns the test cases to render.  Built-in test cases are
// prefixed with their category name.
func loadCases(scene string) ([]testcases.TestCase, error) {
	if scene != "" {
		f, err := os.Open(scene)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return testcases.Decode(f)
	}

	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			cases = append(cases, tc)
		}
	}
	return cases, nil
}

func writeAll(logger *slog.Logger, outDir string, cases []testcases.TestCase) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, tc := range cases {
		c := pixel.NewCanvas(tc.Width, tc.Height)
		pixel.RenderExample(c, tc)

		fname := filepath.Join(outDir, tc.Name+".png")
		if err := writePNG(fname, c); err != nil {
			return fmt.Errorf("%s: %w", tc.Name, err)
		}
		logger.Debug("wrote reference image", "name", tc.Name, "file", fname)
	}
	logger.Info("reference images written", "count", len(cases), "dir", outDir)
	return nil
}

func writePNG(fname string, c *pixel.Canvas) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.ToImage())
}

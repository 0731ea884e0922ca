// Command export writes all test case definitions to testdata/testcases.yaml.
// Run from the module root directory.
package main

import (
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel/testcases"
)

const outFile = "testdata/testcases.yaml"

func main() {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			cases = append(cases, tc)
		}
	}

	if err := write(cases); err != nil {
		slog.Error("export failed", "file", outFile, "error", err)
		os.Exit(1)
	}
	slog.Info("test cases exported", "count", len(cases), "file", outFile)
}

func write(cases []testcases.TestCase) (err error) {
	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return testcases.Encode(f, cases)
}

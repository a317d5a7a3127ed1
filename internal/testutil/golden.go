package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/advkit/pkg/ir"
)

// AssertGolden compares the indented JSON form of v against
// testdata/golden/{name}.golden, relative to the calling package.
//
// To regenerate golden files, run:
//
//	go test ./pkg/advancement -update
//
// The stored form is ir.MarshalIndent output followed by a newline.
func AssertGolden(t *testing.T, name string, v ir.Value) {
	t.Helper()

	data := append(ir.MarshalIndent(v, "  "), '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// AssertGoldenBytes compares raw output against a golden file.
func AssertGoldenBytes(t *testing.T, name string, data []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

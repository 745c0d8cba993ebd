package testutil

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenFile provides golden file testing utilities.
type GoldenFile struct {
	g *goldie.Goldie
}

// newGoldenFile creates a new GoldenFile tester rooted at dir.
func newGoldenFile(t *testing.T, dir string) *GoldenFile {
	t.Helper()

	return &GoldenFile{
		g: goldie.New(t,
			goldie.WithFixtureDir(dir),
			goldie.WithNameSuffix(".golden"),
		),
	}
}

// NewGoldenFileInTestdata creates a GoldenFile tester using testdata/golden directory.
// This is a convenience method for the common case.
func NewGoldenFileInTestdata(t *testing.T) *GoldenFile {
	t.Helper()
	return newGoldenFile(t, filepath.Join("testdata", "golden"))
}

// Assert compares the actual data against the golden file.
// If they differ, the test fails with a detailed diff.
func (gf *GoldenFile) Assert(t *testing.T, name string, actual []byte) {
	t.Helper()
	gf.g.Assert(t, name, actual)
}

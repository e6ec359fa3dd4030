package testfixtures

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent golden files across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Flag for updating golden files (shared across all tests)
var UpdateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual output with golden file.
// Use -update flag to regenerate golden files.
func CompareGolden(t *testing.T, goldenPath, actual string) {
	t.Helper()

	if *UpdateGolden {
		dir := filepath.Dir(goldenPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}

		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if actual != string(expected) {
		t.Errorf("output does not match golden file %s\n\nExpected:\n%s\n\nActual:\n%s",
			goldenPath, string(expected), actual)
	}
}

// GoldenPath builds a path to a golden file in the testdata directory.
// Example: GoldenPath("results_spicy.golden") -> "testdata/results_spicy.golden"
func GoldenPath(filename string) string {
	return filepath.Join("testdata", filename)
}

// Render draws content onto a canonical-size screen buffer and returns the plain text.
func Render(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: TestTermWidth, Y: TestTermHeight},
	})
	return canvas.Render()
}

// Package testsupport keeps golden file handling for tag output consistent
// across packages. Set UPDATE_GOLDENS=1 to rewrite goldens from the current
// output.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateGoldens reports whether golden files should be rewritten.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if !UpdateGoldens() {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its content with the
// trailing newline editors tend to add removed.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimSuffix(string(MustReadGolden(t, path)), "\n")
}

// AssertGolden compares got with the golden at path, rewriting it instead when
// UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got+"\n")) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(strings.Split(want, "\n"), strings.Split(got, "\n")); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

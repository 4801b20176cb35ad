// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/onomast-labs/onomast/internal/cli/output"
)

// SetupTestProject creates a temporary project with a config file and a
// small language spec, and returns its directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	cfg := `language: language.yaml
state_path: ledger.db
seed: 42
output: json
`
	if err := os.WriteFile(filepath.Join(tmpDir, "onomast.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("failed to create onomast.yaml: %v", err)
	}

	language := `pattern: CVC
phonemes:
  C: [p, t, k, b, d, g, m, n, l, r, s]
  V: [a, e, i, o, u]
min_syllables: 1
max_syllables: 2
restrictions:
  forbidden: [rl, lr]
  no_doubles: true
orthography:
  joiner: " "
`
	if err := os.WriteFile(filepath.Join(tmpDir, "language.yaml"), []byte(language), 0644); err != nil {
		t.Fatalf("failed to create language.yaml: %v", err)
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the captured stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// TestProject is the project file written by SetupTestProject.
const TestProject = `name: demo
modules:
  - name: shared
    targets:
      - configurator: commonTarget
      - configurator: jvmTarget
      - configurator: jsBrowser
        name: web
  - name: server
    targets:
      - configurator: jvmTarget
      - configurator: jsNode
`

// SetupTestProject creates a temporary project with a config file and a
// project file and returns its directory.
func SetupTestProject(t *testing.T, configYAML string) string {
	t.Helper()

	tmpDir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	files := map[string]string{
		"mpwizard.yaml": configYAML,
		"project.yaml":  TestProject,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// Chdir switches into dir until the test ends.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
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

// AssertValidMarkdown checks that headers have content and code fences are balanced.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if fenceCount := strings.Count(md, "```"); fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}

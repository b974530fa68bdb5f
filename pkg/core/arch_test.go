package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// packageImports returns the imports of every non-test Go file in dir, keyed by file name.
func packageImports(t *testing.T, dir string) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "failed to read %s", dir)

	fset := token.NewFileSet()
	result := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		require.NoError(t, err, "failed to parse %s", path)

		for _, imp := range f.Imports {
			result[entry.Name()] = append(result[entry.Name()], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return result
}

// TestCoreImportsOnlyStdlib verifies pkg/core imports nothing but the standard library.
// The Golden Rule: pkg/core imports ONLY stdlib.
func TestCoreImportsOnlyStdlib(t *testing.T) {
	for file, imports := range packageImports(t, ".") {
		for _, importPath := range imports {
			// stdlib paths have no dot in their first element
			if strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestIRImportsOnlyCore verifies pkg/ir depends on nothing but pkg/core and stdlib,
// so that every configurator and encoder can share it.
func TestIRImportsOnlyCore(t *testing.T) {
	allowedExternal := map[string]bool{
		"github.com/leapstack-labs/mpwizard/pkg/core": true,
	}

	for file, imports := range packageImports(t, filepath.Join("..", "ir")) {
		for _, importPath := range imports {
			if !strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				continue
			}
			if !allowedExternal[importPath] {
				t.Errorf("ir/%s imports forbidden package: %s", file, importPath)
			}
			if strings.Contains(importPath, "/internal/") {
				t.Errorf("ir/%s imports internal package: %s", file, importPath)
			}
		}
	}
}

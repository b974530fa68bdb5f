package config

import (
	"os"
	"path/filepath"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// configExistsIn returns the config file in dir, or "" when there is none.
func configExistsIn(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// inferProjectRoot returns the directory of an explicit config file, else the
// nearest ancestor of the working directory holding a config file, else the
// working directory itself.
func inferProjectRoot(cfgFile string) string {
	if cfgFile != "" {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			cfgFile = abs
		}
		return filepath.Dir(cfgFile)
	}

	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return "."
	}
	for dir, level := cwd, 0; level < maxUpwardSearchLevels; level++ {
		if configExistsIn(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}

// resolvePathRelativeTo anchors a relative path at baseDir. Empty and
// absolute paths are returned unchanged.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

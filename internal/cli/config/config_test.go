package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "mpwizard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("project", "p", "", "")
	flags.StringP("output", "o", "", "")
	flags.String("log-level", "", "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

// realPath resolves symlinks so temp dirs compare equal to os.Getwd results.
func realPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	dir := realPath(t, t.TempDir())
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, DefaultProjectFile), cfg.Project)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_FileEnvFlagPrecedence(t *testing.T) {
	ResetConfig()
	dir := realPath(t, t.TempDir())
	chdir(t, dir)
	writeConfig(t, dir, "project: app.yaml\nformat: json\nlog_level: info\noutput: text\n")

	t.Run("file", func(t *testing.T) {
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "app.yaml"), cfg.Project)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, filepath.Join(dir, "mpwizard.yaml"), GetConfigFileUsed())
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MPWIZARD_FORMAT", "hcl")
		t.Setenv("MPWIZARD_LOG_LEVEL", "debug")

		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "hcl", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.Output)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("MPWIZARD_LOG_LEVEL", "debug")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--log-level", "error", "-o", "json"}))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, "json", cfg.Format, "unset flags do not override the file")
	})
}

func TestLoadConfig_DecodesEnvStrings(t *testing.T) {
	ResetConfig()
	dir := realPath(t, t.TempDir())
	chdir(t, dir)
	t.Setenv("MPWIZARD_OUTPUT", " json ")
	t.Setenv("MPWIZARD_VERBOSE", "true")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	ResetConfig()
	root := realPath(t, t.TempDir())
	writeConfig(t, root, "format: yaml\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, filepath.Join(root, DefaultProjectFile), cfg.Project)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	ResetConfig()
	dir := realPath(t, t.TempDir())
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: p.yaml\n"), 0600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "p.yaml"), cfg.Project)
	assert.Equal(t, path, GetConfigFileUsed())

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_ProjectFlagIsRelativeToCWD(t *testing.T) {
	ResetConfig()
	root := realPath(t, t.TempDir())
	writeConfig(t, root, "format: text\n")
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0750))
	chdir(t, sub)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-p", "mine.yaml"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sub, "mine.yaml"), cfg.Project)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"output", "output: html\n", `invalid output "html"`},
		{"format", "format: toml\n", `unknown format "toml"`},
		{"log level", "log_level: loud\n", `unknown log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			dir := realPath(t, t.TempDir())
			chdir(t, dir)
			writeConfig(t, dir, tt.content)

			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseLogLevel("trace")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	quiet := NewLogger(&Config{LogLevel: "error"}, os.Stderr)
	assert.False(t, quiet.Enabled(ctx, slog.LevelWarn))
	assert.True(t, quiet.Enabled(ctx, slog.LevelError))

	verbose := NewLogger(&Config{LogLevel: "error", Verbose: true}, os.Stderr)
	assert.True(t, verbose.Enabled(ctx, slog.LevelDebug))
}

func TestContextAccessors(t *testing.T) {
	ResetConfig()

	assert.Equal(t, Default(), GetConfig(context.Background()))
	assert.NotNil(t, GetLogger(context.Background()))

	cfg := &Config{Format: "hcl"}
	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), ConfigKey(), cfg)
	ctx = context.WithValue(ctx, LoggerKey(), logger)

	assert.Same(t, cfg, GetConfig(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}

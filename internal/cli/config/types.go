// Package config provides configuration management for the mpwizard CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Project  string `koanf:"project"`
	Output   string `koanf:"output"`
	Format   string `koanf:"format"`
	Verbose  bool   `koanf:"verbose"`
	LogLevel string `koanf:"log_level"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultProjectFile = "project.yaml"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFormat      = "text"
	DefaultLogLevel    = "warn"
)

// ConfigFileNames are the config file names looked up in a project root, in
// priority order.
var ConfigFileNames = []string{"mpwizard.yaml", "mpwizard.yml"}

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "MPWIZARD_"

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		Project:  DefaultProjectFile,
		Output:   DefaultOutput,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

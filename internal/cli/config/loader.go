package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// configKey is used to store the config in context.
type configKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// layers returns the configuration sources in order of increasing priority:
// defaults, config file, MPWIZARD_ environment, explicitly set flags.
func layers(cfgFile string, flags *pflag.FlagSet) []layer {
	return []layer{
		{name: "defaults", load: loadDefaults},
		{name: "config file " + cfgFile, load: func(k *koanf.Koanf) error {
			if cfgFile == "" {
				return nil
			}
			return k.Load(file.Provider(cfgFile), yaml.Parser())
		}},
		{name: "environment", load: loadEnv},
		{name: "flags", load: func(k *koanf.Koanf) error {
			if flags == nil {
				return nil
			}
			return loadFlags(k, flags)
		}},
	}
}

func loadDefaults(k *koanf.Koanf) error {
	def := Default()
	return k.Load(confmap.Provider(map[string]any{
		"project":   def.Project,
		"output":    def.Output,
		"format":    def.Format,
		"verbose":   def.Verbose,
		"log_level": def.LogLevel,
	}, "."), nil)
}

// loadEnv maps MPWIZARD_LOG_LEVEL to log_level.
func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
}

// loadFlags loads only flags the user set, with kebab-case names mapped to
// snake_case keys.
func loadFlags(k *koanf.Koanf, flags *pflag.FlagSet) error {
	return k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
	}), nil)
}

// LoadConfig loads configuration from defaults, a config file, environment
// variables and flags. Relative paths are anchored at the project root, except
// a --project flag, which is relative to the working directory.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")
	configFileUsed = ""

	projectRoot := inferProjectRoot(cfgFile)
	if cfgFile == "" {
		cfgFile = configExistsIn(projectRoot)
	}

	for _, l := range layers(cfgFile, flags) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("error reading %s: %w", l.name, err)
		}
	}
	configFileUsed = cfgFile

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderConfig(&cfg),
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.ProjectRoot = projectRoot
	if p := projectFlag(flags); p != "" {
		cfg.Project = p
	} else {
		cfg.Project = resolvePathRelativeTo(cfg.Project, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// projectFlag returns the absolute path given with --project, or "".
func projectFlag(flags *pflag.FlagSet) string {
	if flags == nil || flags.Lookup("project") == nil || !flags.Changed("project") {
		return ""
	}
	v, _ := flags.GetString("project")
	if v == "" {
		return ""
	}
	abs, err := filepath.Abs(v)
	if err != nil {
		return v
	}
	return abs
}

// decoderConfig returns the mapstructure settings Config is decoded with.
// Environment values arrive as strings, so input is weakly typed.
func decoderConfig(cfg *Config) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(trimStringHook),
		WeaklyTypedInput: true,
		Result:           cfg,
		TagName:          "koanf",
	}
}

// trimStringHook drops surrounding whitespace from string values.
func trimStringHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.String || to != reflect.String {
		return data, nil
	}
	return strings.TrimSpace(data.(string)), nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the most recently loaded configuration, or nil.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger builds the CLI logger: a text handler on w at the configured
// level. Verbose forces debug.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() any {
	return loggerKey{}
}

// ConfigKey returns the context key used for storing the config.
func ConfigKey() any {
	return configKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// GetConfig retrieves the config from the command context, falling back to
// the last loaded config and then to defaults.
func GetConfig(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	if currentConfig != nil {
		return currentConfig
	}
	return Default()
}

// Package cli provides the command-line interface for mpwizard.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/commands"
	"github.com/leapstack-labs/mpwizard/internal/cli/config"
	"github.com/leapstack-labs/mpwizard/internal/cli/output"

	// Register the built-in target configurators.
	_ "github.com/leapstack-labs/mpwizard/pkg/targets"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// skipConfig names commands that run without loading configuration.
var skipConfig = map[string]bool{
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "mpwizard",
		Short: "Multiplatform target configuration wizard",
		Long: `mpwizard selects compilation targets for the modules of a multiplatform
project and synthesizes the build-system IR that configures them.

Each module lists its targets in selection order. A target that cannot coexist
with the targets selected before it is refused; earlier selections stand.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipConfig[cmd.Name()] {
				return nil
			}
			return attachConfig(cmd, cfgFile)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", GitCommit, BuildDate))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./mpwizard.yaml)")
	flags.StringP("project", "p", "", "Path to the project file (default: project.yaml)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")

	for name, values := range map[string][]string{
		"output":    outputModeNames(),
		"log-level": {"debug", "info", "warn", "error"},
	} {
		_ = rootCmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}

	rootCmd.AddCommand(
		commands.NewVersionCommand(Version),
		commands.NewTargetsCommand(),
		commands.NewCheckCommand(),
		commands.NewGenerateCommand(),
		commands.NewInitCommand(),
		NewCompletionCommand(),
	)
	return rootCmd
}

// attachConfig loads configuration for cmd and stores it, together with the
// logger built from it, in the command context.
func attachConfig(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), logger)
	cmd.SetContext(ctx)

	if used := config.GetConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}

func outputModeNames() []string {
	names := make([]string, 0, len(output.Modes()))
	for _, m := range output.Modes() {
		names = append(names, string(m))
	}
	return names
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

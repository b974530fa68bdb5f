package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/config"
	"github.com/leapstack-labs/mpwizard/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

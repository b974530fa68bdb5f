package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/output"
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
)

// VersionInfo is the JSON form of the version command.
type VersionInfo struct {
	Version       string   `json:"version"`
	GoVersion     string   `json:"go_version"`
	Configurators []string `json:"configurators"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the mpwizard version, the Go runtime it was built with and the registered target configurators.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{
				Version:       version,
				GoVersion:     runtime.Version(),
				Configurators: configurator.List(),
			}

			r := NewCommandContext(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}
			r.Printf("mpwizard v%s (%s)\n", info.Version, info.GoVersion)
			r.Println("Multiplatform target configuration wizard")
			r.Printf("Configurators: %s\n", strings.Join(info.Configurators, ", "))
			return nil
		},
	}
}

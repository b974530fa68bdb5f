package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its script generator.
var completionShells = map[string]func(root *cobra.Command, out io.Writer) error{
	"bash": func(root *cobra.Command, out io.Writer) error {
		return root.GenBashCompletionV2(out, true)
	},
	"zsh": func(root *cobra.Command, out io.Writer) error {
		return root.GenZshCompletion(out)
	},
	"fish": func(root *cobra.Command, out io.Writer) error {
		return root.GenFishCompletion(out, true)
	},
	"powershell": func(root *cobra.Command, out io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(out)
	},
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell.

  bash:        source <(mpwizard completion bash)
  zsh:         mpwizard completion zsh > "${fpath[1]}/_mpwizard"
  fish:        mpwizard completion fish | source
  powershell:  mpwizard completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

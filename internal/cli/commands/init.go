package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/config"
	"github.com/leapstack-labs/mpwizard/internal/wizard"
)

// projectData is the data project templates are rendered with.
type projectData struct {
	Name string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var (
		force bool
		name  string
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a new mpwizard project",
		Long: `Scaffold an mpwizard project: an mpwizard.yaml configuration and a
project.yaml with two sample modules.

The project name defaults to the directory name, reduced to an identifier.`,
		Example: `  mpwizard init
  mpwizard init my-app --name myApp
  mpwizard init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd), dir, name, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&name, "name", "", "Project name (default: derived from the directory)")

	return cmd
}

func runInit(cc *CommandContext, dir, name string, force bool) error {
	if name == "" {
		name = projectNameFor(dir)
	}
	if !wizard.ValidName(name) {
		return fmt.Errorf("invalid project name %q\nHint: Start with a letter and use only letters, digits and underscores", name)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if existing := existingConfig(dir); existing != "" && !force {
		return fmt.Errorf("%s already exists\nHint: Use --force to overwrite", existing)
	}

	files, err := scaffold("project", dir, projectData{Name: name}, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	modules := 0
	if slices.Contains(files, config.DefaultProjectFile) {
		p, err := wizard.Load(filepath.Join(dir, config.DefaultProjectFile))
		if err != nil {
			return fmt.Errorf("scaffolded project is invalid: %w", err)
		}
		modules = len(p.Modules)
	}
	cc.Logger.Debug("project scaffolded", "dir", dir, "name", name, "files", len(files))

	r := cc.Renderer
	for _, f := range files {
		r.StatusLine(f, "success", "")
	}
	r.Println("")
	r.Success(fmt.Sprintf("Project %s initialized with %d modules", name, modules))
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Run 'mpwizard targets' to see the available configurators")
	r.Println("  2. Edit project.yaml to select targets for each module")
	r.Println("  3. Run 'mpwizard generate' to synthesize the build IR")

	return nil
}

// existingConfig returns the first config file already present in dir.
func existingConfig(dir string) string {
	for _, name := range config.ConfigFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	return ""
}

// projectNameFor derives a project name from the base name of dir. Characters
// outside [A-Za-z0-9_] become underscores.
func projectNameFor(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	base := filepath.Base(dir)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "sample"
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if c := name[0]; (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		name = "project_" + name
	}
	return name
}

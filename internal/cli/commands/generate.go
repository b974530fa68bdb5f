package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/wizard"
	"github.com/leapstack-labs/mpwizard/pkg/format"
)

// GenerateOptions holds the generate command flags.
type GenerateOptions struct {
	Format    string
	Out       string
	KeepGoing bool
	Watch     bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [project.yaml]",
		Short: "Synthesize the build IR of a project",
		Long: `Load a project file, select the targets of every module in order and write
the resulting build IR.

Targets that cannot be selected (unknown configurator, invalid name, or refused
because they cannot coexist with earlier targets) are reported. Generation fails
when any are found, unless --keep-going is set.`,
		Example: `  # Generate from the configured project file
  mpwizard generate

  # Generate HCL from a specific project
  mpwizard generate app.yaml --format hcl

  # Regenerate whenever the project changes
  mpwizard generate --watch --out build.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "IR format (text|json|yaml|hcl)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "Write the IR even when targets were skipped")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Regenerate when the project file changes")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		kinds := make([]string, 0, len(format.Kinds()))
		for _, k := range format.Kinds() {
			kinds = append(kinds, string(k))
		}
		return kinds, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *GenerateOptions) error {
	cmdCtx := NewCommandContext(cmd)

	path := cmdCtx.Cfg.Project
	if len(args) > 0 {
		path = args[0]
	}

	kindName := cmdCtx.Cfg.Format
	if opts.Format != "" {
		kindName = opts.Format
	}
	if kindName == "" {
		kindName = string(format.KindText)
	}
	kind, err := format.ParseKind(kindName)
	if err != nil {
		return err
	}

	g := &generator{
		cmdCtx:    cmdCtx,
		path:      path,
		kind:      kind,
		out:       opts.Out,
		keepGoing: opts.KeepGoing,
		stdout:    cmd.OutOrStdout(),
		create:    createFile,
	}

	if !opts.Watch {
		return g.generate(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := g.generate(ctx); err != nil {
		cmdCtx.Renderer.Error(err.Error())
	}
	cmdCtx.Renderer.Muted(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path))

	return wizard.Watch(ctx, path, cmdCtx.Logger, func(ctx context.Context) {
		if err := g.generate(ctx); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
	})
}

type generator struct {
	cmdCtx    *CommandContext
	path      string
	kind      format.Kind
	out       string
	keepGoing bool
	stdout    io.Writer
	// create opens the --out file.
	create func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // output path comes from the user
}

func (g *generator) generate(ctx context.Context) error {
	logger := g.cmdCtx.Logger
	r := g.cmdCtx.Renderer

	project, err := wizard.Load(g.path)
	if err != nil {
		return err
	}

	res, err := wizard.Synthesize(ctx, project, nil, logger)
	if err != nil {
		return err
	}

	problems := res.Problems()
	for _, p := range problems {
		r.Warning(p.Error())
	}
	if len(problems) > 0 && !g.keepGoing {
		return fmt.Errorf("%d targets could not be selected\nHint: Fix project %s or use --keep-going to write the remaining targets", len(problems), g.path)
	}

	if err := g.write(res.FormatModules()); err != nil {
		return fmt.Errorf("failed to write IR: %w", err)
	}

	logger.Debug("generated IR", "project", project.Name, "format", string(g.kind), "out", g.out)
	if g.out != "" {
		r.Success(fmt.Sprintf("Wrote %s", g.out))
	}
	return nil
}

// write renders modules to stdout, or to the --out file. A failed close of
// the file is reported.
func (g *generator) write(modules []format.Module) error {
	if g.out == "" {
		return format.WriteModules(g.stdout, modules, g.kind)
	}

	f, err := g.create(g.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.out, err)
	}
	if err := format.WriteModules(f, modules, g.kind); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", g.out, err)
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/output"
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
)

// Verdict is the coexistence outcome of one candidate.
type Verdict struct {
	ID       string   `json:"id"`
	Accepted bool     `json:"accepted"`
	Against  []string `json:"against"`
}

// CheckOutput is the JSON form of a check.
type CheckOutput struct {
	Verdicts []Verdict `json:"verdicts"`
	Accepted []string  `json:"accepted"`
	Refused  []string  `json:"refused"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>...",
		Short: "Check whether targets can be selected together",
		Long: `Check configurators in the order given, as if a user selected them one after
another for the same module. Each candidate is checked against the ones accepted
before it; a refused candidate is skipped.

Exits non-zero when any candidate is refused.`,
		Example: `  # JVM and common coexist
  mpwizard check jvmTarget commonTarget

  # The second JVM target is refused
  mpwizard check jvmTarget jvmTarget`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return configurator.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			candidates, err := configurator.Resolve(args...)
			if err != nil {
				return err
			}
			return runCheck(cmdCtx.Renderer, candidates)
		},
	}
}

func runCheck(r *output.Renderer, candidates []configurator.TargetConfigurator) error {
	out := CheckOutput{Verdicts: []Verdict{}, Accepted: []string{}, Refused: []string{}}

	var accepted []configurator.TargetConfigurator
	for _, c := range candidates {
		v := Verdict{ID: c.ID(), Against: ids(accepted)}
		if configurator.Admissible(c, accepted) {
			v.Accepted = true
			accepted = append(accepted, c)
			out.Accepted = append(out.Accepted, c.ID())
		} else {
			out.Refused = append(out.Refused, c.ID())
		}
		out.Verdicts = append(out.Verdicts, v)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		r.Header(2, "Coexistence")
		for _, v := range out.Verdicts {
			if v.Accepted {
				r.StatusLine(v.ID, "success", "")
				continue
			}
			r.StatusLine(v.ID, "failed", fmt.Sprintf("cannot coexist with %v", v.Against))
		}
	}

	if len(out.Refused) > 0 {
		return fmt.Errorf("%d of %d targets refused", len(out.Refused), len(candidates))
	}
	return nil
}

func ids(cs []configurator.TargetConfigurator) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID())
	}
	return out
}

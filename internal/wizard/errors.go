package wizard

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/mpwizard/pkg/configurator"
)

// CoexistenceError is returned when a configurator refuses to join the
// targets already selected for a module.
type CoexistenceError struct {
	Module    string
	Candidate configurator.TargetConfigurator
	Existing  []configurator.TargetConfigurator
}

func (e *CoexistenceError) Error() string {
	names := make([]string, 0, len(e.Existing))
	for _, c := range e.Existing {
		names = append(names, c.Text())
	}
	return fmt.Sprintf("module %s: target %s (%s) cannot be combined with the selected targets [%s]\n\nHint: a single-coexistence target may be selected at most once per module.",
		e.Module, e.Candidate.Text(), e.Candidate.ID(), strings.Join(names, ", "))
}

// InvalidTargetNameError is returned when a target module name is malformed
// or already taken within its module.
type InvalidTargetNameError struct {
	Module string
	Name   string
	Reason string
}

func (e *InvalidTargetNameError) Error() string {
	return fmt.Sprintf("module %s: invalid target name %q: %s", e.Module, e.Name, e.Reason)
}

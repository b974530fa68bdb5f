// Package wizard drives target selection for the modules of a project and
// synthesizes their build IR.
package wizard

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// Target is an accepted configurator together with the target module created
// for it.
type Target struct {
	Configurator configurator.TargetConfigurator
	Module       core.Module
}

// Session holds the targets selected for one multiplatform module.
// A Session is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	module  string
	targets []Target
	logger  *slog.Logger
}

// NewSession starts an empty selection for the named module.
func NewSession(module string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	return &Session{
		id:     id,
		module: module,
		logger: logger.With("session", id.String(), "module", module),
	}
}

// ID returns the session identifier used in log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Module returns the name of the module being configured.
func (s *Session) Module() string {
	return s.module
}

// Select adds c under the target name name, or under its suggested name when
// name is empty. The candidate is checked against the targets accepted so
// far before the name is checked for uniqueness; earlier selections are never
// revisited.
func (s *Session) Select(c configurator.TargetConfigurator, name string) (Target, error) {
	if name == "" {
		name = c.SuggestedModuleName()
	}
	if !ValidName(name) {
		return Target{}, &InvalidTargetNameError{
			Module: s.module,
			Name:   name,
			Reason: "must start with a letter and contain only letters, digits and underscores",
		}
	}
	accepted := s.Configurators()
	if !configurator.Admissible(c, accepted) {
		s.logger.Debug("target refused", "configurator", c.ID(), "name", name)
		return Target{}, &CoexistenceError{Module: s.module, Candidate: c, Existing: accepted}
	}

	for _, t := range s.targets {
		if t.Module.Name == name {
			return Target{}, &InvalidTargetNameError{
				Module: s.module,
				Name:   name,
				Reason: "already used by " + t.Configurator.ID(),
			}
		}
	}

	t := Target{Configurator: c, Module: core.NewTargetModule(name)}
	s.targets = append(s.targets, t)
	s.logger.Debug("target selected", "configurator", c.ID(), "name", name)
	return t, nil
}

// Targets returns the accepted targets in selection order.
func (s *Session) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Configurators returns the accepted configurators in selection order.
func (s *Session) Configurators() []configurator.TargetConfigurator {
	out := make([]configurator.TargetConfigurator, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t.Configurator)
	}
	return out
}

// Build concatenates the target IR of every accepted configurator, in
// selection order.
func (s *Session) Build() []ir.Node {
	var forest []ir.Node
	for _, t := range s.targets {
		forest = append(forest, t.Configurator.CreateTargetIRs(t.Module)...)
	}
	s.logger.Debug("built target IR", "targets", len(s.targets), "nodes", len(forest))
	return forest
}

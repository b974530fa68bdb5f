package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/format"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// Catalog resolves configurator ids.
type Catalog interface {
	Get(id string) (configurator.TargetConfigurator, bool)
	List() []string
}

type registryCatalog struct{}

func (registryCatalog) Get(id string) (configurator.TargetConfigurator, bool) {
	return configurator.Get(id)
}

func (registryCatalog) List() []string {
	return configurator.List()
}

// Registry is the Catalog backed by the global configurator registry.
var Registry Catalog = registryCatalog{}

// ModuleResult is the outcome of synthesizing one module.
type ModuleResult struct {
	Name      string
	SessionID uuid.UUID
	Targets   []Target
	Forest    []ir.Node
	// Problems lists the targets that were skipped and why.
	Problems []error
}

// Result is the outcome of synthesizing a project. Modules keep project order.
type Result struct {
	Project string
	Modules []ModuleResult
}

// Problems returns every module's problems in project order.
func (r *Result) Problems() []error {
	var out []error
	for _, m := range r.Modules {
		out = append(out, m.Problems...)
	}
	return out
}

// Err joins all problems, or returns nil when there are none.
func (r *Result) Err() error {
	return errors.Join(r.Problems()...)
}

// FormatModules returns the module forests ready for rendering.
func (r *Result) FormatModules() []format.Module {
	out := make([]format.Module, 0, len(r.Modules))
	for _, m := range r.Modules {
		out = append(out, format.Module{Name: m.Name, Forest: m.Forest})
	}
	return out
}

// Synthesize selects the targets of every module and builds their IR.
//
// Each module gets its own session on its own goroutine. Targets that cannot
// be resolved, are badly named or refuse to coexist are recorded as problems
// and skipped; the rest of the module is still built. A nil catalog means the
// global registry.
func Synthesize(ctx context.Context, p *Project, catalog Catalog, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if catalog == nil {
		catalog = Registry
	}

	res := &Result{Project: p.Name, Modules: make([]ModuleResult, len(p.Modules))}

	eg, egctx := errgroup.WithContext(ctx)
	for i, m := range p.Modules {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			res.Modules[i] = synthesizeModule(m, catalog, logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Info("synthesized project", "project", p.Name, "modules", len(res.Modules), "problems", len(res.Problems()))
	return res, nil
}

func synthesizeModule(m ModuleSpec, catalog Catalog, logger *slog.Logger) ModuleResult {
	s := NewSession(m.Name, logger)
	out := ModuleResult{Name: m.Name, SessionID: s.ID()}

	for _, spec := range m.Targets {
		c, ok := catalog.Get(spec.Configurator)
		if !ok {
			err := &configurator.UnknownConfiguratorError{ID: spec.Configurator, Available: catalog.List()}
			out.Problems = append(out.Problems, fmt.Errorf("module %s: %w", m.Name, err))
			continue
		}
		if _, err := s.Select(c, spec.Name); err != nil {
			out.Problems = append(out.Problems, err)
		}
	}

	out.Targets = s.Targets()
	out.Forest = s.Build()
	return out
}

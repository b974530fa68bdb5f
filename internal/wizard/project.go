package wizard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// identifierPattern constrains module and target names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidName reports whether s is usable as a module or target name.
func ValidName(s string) bool {
	return identifierPattern.MatchString(s)
}

// Project is a multiplatform project: a set of modules, each with the targets
// the user selected for it, in selection order.
type Project struct {
	Name    string       `yaml:"name"`
	Modules []ModuleSpec `yaml:"modules"`
}

// ModuleSpec describes one multiplatform module of a project.
type ModuleSpec struct {
	Name    string       `yaml:"name"`
	Targets []TargetSpec `yaml:"targets"`
}

// TargetSpec selects a configurator by id. Name overrides the configurator's
// suggested target name when set.
type TargetSpec struct {
	Configurator string `yaml:"configurator"`
	Name         string `yaml:"name,omitempty"`
}

// Load reads and parses a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a project document. Unknown fields are rejected.
func Parse(data []byte) (*Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Project
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("project file is empty")
		}
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the structural rules of a project. Coexistence and target
// names are checked later, during synthesis.
func (p *Project) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("project name is required"))
	}
	if len(p.Modules) == 0 {
		errs = append(errs, errors.New("at least one module is required"))
	}

	seen := make(map[string]bool, len(p.Modules))
	for i, m := range p.Modules {
		switch {
		case m.Name == "":
			errs = append(errs, fmt.Errorf("modules[%d]: name is required", i))
		case !ValidName(m.Name):
			errs = append(errs, fmt.Errorf("modules[%d]: invalid module name %q", i, m.Name))
		case seen[m.Name]:
			errs = append(errs, fmt.Errorf("modules[%d]: duplicate module name %q", i, m.Name))
		}
		seen[m.Name] = true

		for j, t := range m.Targets {
			if t.Configurator == "" {
				errs = append(errs, fmt.Errorf("modules[%d].targets[%d]: configurator is required", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

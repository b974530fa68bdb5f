package format

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// Node is the serializable form of an IR node.
//
// A target configuration folds its access into SubType and Name; its inner
// nodes become Children.
type Node struct {
	Kind     string `json:"kind" yaml:"kind"`
	SubType  string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// ModuleDocument is the serializable form of one module.
type ModuleDocument struct {
	Name    string `json:"name" yaml:"name"`
	Targets []Node `json:"targets" yaml:"targets"`
}

// ProjectDocument is the serializable form of a list of modules.
type ProjectDocument struct {
	Modules []ModuleDocument `json:"modules" yaml:"modules"`
}

// NewDocument converts a forest into its serializable form.
func NewDocument(forest []ir.Node) ([]Node, error) {
	out := make([]Node, 0, len(forest))
	for _, n := range forest {
		doc, err := newNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// NewProjectDocument converts named forests into their serializable form.
func NewProjectDocument(modules []Module) (ProjectDocument, error) {
	doc := ProjectDocument{Modules: make([]ModuleDocument, 0, len(modules))}
	for _, m := range modules {
		targets, err := NewDocument(m.Forest)
		if err != nil {
			return ProjectDocument{}, fmt.Errorf("module %s: %w", m.Name, err)
		}
		doc.Modules = append(doc.Modules, ModuleDocument{Name: m.Name, Targets: targets})
	}
	return doc, nil
}

func newNode(n ir.Node) (Node, error) {
	switch n := n.(type) {
	case ir.TargetConfiguration:
		children, err := NewDocument(n.Inner())
		if err != nil {
			return Node{}, err
		}
		name, _ := n.Access().Name()
		return Node{
			Kind:     n.Kind().String(),
			SubType:  n.Access().SubType().Name(),
			Name:     name,
			Children: children,
		}, nil
	case ir.TargetAccess:
		name, _ := n.Name()
		return Node{Kind: n.Kind().String(), SubType: n.SubType().Name(), Name: name}, nil
	case ir.RawSection:
		children, err := NewDocument(n.Body())
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: n.Kind().String(), Name: n.Name(), Children: children}, nil
	default:
		return Node{}, &UnsupportedNodeError{Node: n}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

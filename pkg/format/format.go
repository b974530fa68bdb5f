// Package format renders IR forests for humans and tools.
//
// Every format accepts either a single forest or a list of named modules.
// The text format is an indented build-script outline; json and yaml encode a
// neutral document tree; hcl emits target blocks.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// Kind selects an output format.
type Kind string

// Output formats.
const (
	KindText Kind = "text"
	KindJSON Kind = "json"
	KindYAML Kind = "yaml"
	KindHCL  Kind = "hcl"
)

// Kinds returns every supported format in display order.
func Kinds() []Kind {
	return []Kind{KindText, KindJSON, KindYAML, KindHCL}
}

// ParseKind parses a format name. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", &UnknownKindError{Name: s}
}

// UnknownKindError is returned for an unsupported format name.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return fmt.Sprintf("unknown format %q (available: %s)", e.Name, strings.Join(names, ", "))
}

// UnsupportedNodeError is returned when a forest contains a node type the
// renderers do not know.
type UnsupportedNodeError struct {
	Node ir.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported IR node %T (kind %s)", e.Node, e.Node.Kind())
}

// Module is one named forest, typically a module of a project.
type Module struct {
	Name   string
	Forest []ir.Node
}

// Write renders a single forest to w.
func Write(w io.Writer, forest []ir.Node, k Kind) error {
	switch k {
	case KindText:
		return writeText(w, forest)
	case KindJSON:
		nodes, err := NewDocument(forest)
		if err != nil {
			return err
		}
		return writeJSON(w, nodes)
	case KindYAML:
		nodes, err := NewDocument(forest)
		if err != nil {
			return err
		}
		return writeYAML(w, nodes)
	case KindHCL:
		return writeHCL(w, forest)
	default:
		return &UnknownKindError{Name: string(k)}
	}
}

// WriteModules renders several named forests to w, in order.
func WriteModules(w io.Writer, modules []Module, k Kind) error {
	switch k {
	case KindText:
		return writeTextModules(w, modules)
	case KindJSON:
		doc, err := NewProjectDocument(modules)
		if err != nil {
			return err
		}
		return writeJSON(w, doc)
	case KindYAML:
		doc, err := NewProjectDocument(modules)
		if err != nil {
			return err
		}
		return writeYAML(w, doc)
	case KindHCL:
		return writeHCLModules(w, modules)
	default:
		return &UnknownKindError{Name: string(k)}
	}
}

// Package ir provides the build-system intermediate representation.
//
// An IR forest is the only artifact target configurators produce. Every node
// describes one build-system construct independently of how it is eventually
// rendered. Nodes are values with unexported fields; once constructed they are
// never modified, and accessors hand out copies of their child lists.
package ir

// Kind identifies the construct a node describes.
type Kind int

const (
	// KindTargetConfiguration is a default target configuration block.
	KindTargetConfiguration Kind = iota
	// KindTargetAccess addresses a target by subtype and optional name.
	KindTargetAccess
	// KindRawSection is a named section call with a nested body.
	KindRawSection
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindTargetConfiguration:
		return "target-configuration"
	case KindTargetAccess:
		return "target-access"
	case KindRawSection:
		return "raw-section"
	default:
		return "unknown"
	}
}

// Node is one emittable build-system construct.
type Node interface {
	Kind() Kind
	// Children returns the nested nodes in emission order.
	Children() []Node
}

func cloneNodes(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}

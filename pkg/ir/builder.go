package ir

import "slices"

// ListBuilder accumulates nodes in order. It only supports appending and is
// sealed once the Build call that created it returns.
type ListBuilder struct {
	nodes  []Node
	sealed bool
}

// Add appends nodes in order. Adding to a sealed builder panics: a builder that
// escaped its Build callback is a programming error.
func (b *ListBuilder) Add(nodes ...Node) {
	if b.sealed {
		panic("ir: ListBuilder.Add called after Build returned")
	}
	b.nodes = append(b.nodes, nodes...)
}

// Len returns the number of nodes added so far.
func (b *ListBuilder) Len() int {
	return len(b.nodes)
}

// Build runs fn against a fresh builder and returns the accumulated nodes.
// The returned slice has no spare capacity, so appending to it never aliases
// a list held by another node.
func Build(fn func(b *ListBuilder)) []Node {
	b := &ListBuilder{}
	if fn != nil {
		fn(b)
	}
	b.sealed = true
	return slices.Clip(b.nodes)
}

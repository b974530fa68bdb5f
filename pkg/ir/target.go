package ir

import "github.com/leapstack-labs/mpwizard/pkg/core"

// TargetAccess addresses a target by subtype. When the target module was
// renamed by the user the access carries the override name; otherwise the
// subtype's canonical name is implied.
type TargetAccess struct {
	subType core.ModuleSubType
	name    string
	named   bool
}

// NewTargetAccess returns an access node for the subtype's canonical target.
func NewTargetAccess(st core.ModuleSubType) TargetAccess {
	return TargetAccess{subType: st}
}

// NewNamedTargetAccess returns an access node carrying an explicit target name.
func NewNamedTargetAccess(st core.ModuleSubType, name string) TargetAccess {
	return TargetAccess{subType: st, name: name, named: true}
}

// AccessFor builds the access node for module m targeting st.
// The override name is set only when the module name differs from the
// subtype's canonical name, so a module that kept the default name never
// produces a redundant alias.
func AccessFor(m core.Module, st core.ModuleSubType) TargetAccess {
	if m.Name == st.Name() {
		return NewTargetAccess(st)
	}
	return NewNamedTargetAccess(st, m.Name)
}

// Kind implements Node.
func (a TargetAccess) Kind() Kind { return KindTargetAccess }

// Children implements Node. Access nodes are leaves.
func (a TargetAccess) Children() []Node { return nil }

// SubType returns the addressed subtype.
func (a TargetAccess) SubType() core.ModuleSubType { return a.subType }

// Name returns the override name and whether one is set.
func (a TargetAccess) Name() (string, bool) { return a.name, a.named }

// TargetName returns the name the target is addressed by: the override when
// present, the canonical subtype name otherwise.
func (a TargetAccess) TargetName() string {
	if a.named {
		return a.name
	}
	return a.subType.Name()
}

// TargetConfiguration is the default configuration block for one target:
// the access node followed by the target's inner nodes.
type TargetConfiguration struct {
	access TargetAccess
	inner  []Node
}

// NewTargetConfiguration returns a configuration block. The inner slice is copied.
func NewTargetConfiguration(access TargetAccess, inner []Node) TargetConfiguration {
	return TargetConfiguration{access: access, inner: cloneNodes(inner)}
}

// Kind implements Node.
func (c TargetConfiguration) Kind() Kind { return KindTargetConfiguration }

// Children implements Node. The access node comes first.
func (c TargetConfiguration) Children() []Node {
	out := make([]Node, 0, len(c.inner)+1)
	out = append(out, c.access)
	return append(out, c.inner...)
}

// Access returns the target access node.
func (c TargetConfiguration) Access() TargetAccess { return c.access }

// Inner returns a copy of the nested nodes.
func (c TargetConfiguration) Inner() []Node { return cloneNodes(c.inner) }

package configurator

import (
	"fmt"

	"github.com/leapstack-labs/mpwizard/pkg/core"
)

// Builder provides a fluent API for assembling configurators.
type Builder struct {
	t             *Target
	moduleTypeSet bool
}

// New creates a builder for a configurator with the given id.
func New(id string) *Builder {
	return &Builder{t: &Target{id: id}}
}

// NewSimple creates a builder for a single-coexistence configurator backed by
// st. Id, text, suggested module name and module type are derived from the
// subtype and may be overridden.
func NewSimple(st core.ModuleSubType) *Builder {
	return New(SimpleID(st)).
		Text(SimpleText(st)).
		SuggestedModuleName(st.Name()).
		Simple(st)
}

// Text sets the user-facing label.
func (b *Builder) Text(text string) *Builder {
	b.t.text = text
	return b
}

// SuggestedModuleName sets the default name of target modules.
func (b *Builder) SuggestedModuleName(name string) *Builder {
	b.t.suggestedModuleName = name
	return b
}

// ModuleType sets the platform family.
func (b *Builder) ModuleType(mt core.ModuleType) *Builder {
	b.t.moduleType = mt
	b.moduleTypeSet = true
	return b
}

// Simple backs the configurator by st. The module type follows the subtype and
// CreateTargetIRs defaults to SimpleTargetIRs. A simple configurator is also
// single-coexistence.
func (b *Builder) Simple(st core.ModuleSubType) *Builder {
	b.t.caps |= CapSimple | CapSingleCoexistence
	b.t.subType = st
	return b.ModuleType(st.ModuleType())
}

// SingleCoexistence restricts the configurator to one instance per module.
func (b *Builder) SingleCoexistence() *Builder {
	b.t.caps |= CapSingleCoexistence
	return b
}

// Tests sets the default test framework.
func (b *Builder) Tests(f core.TestFramework) *Builder {
	b.t.caps |= CapTests
	b.t.testFramework = f
	return b
}

// JVM adds JVM platform defaults. An empty target selects DefaultJVMTarget.
func (b *Builder) JVM(target string) *Builder {
	if target == "" {
		target = DefaultJVMTarget
	}
	b.t.caps |= CapJVM
	b.t.jvmTarget = target
	return b
}

// Android adds Android platform defaults. An empty plugin selects DefaultAndroidPlugin.
func (b *Builder) Android(plugin string) *Builder {
	if plugin == "" {
		plugin = DefaultAndroidPlugin
	}
	b.t.caps |= CapAndroid
	b.t.androidPlugin = plugin
	return b
}

// TargetIRs overrides CreateTargetIRs.
func (b *Builder) TargetIRs(fn IRFunc) *Builder {
	b.t.targetIRs = fn
	return b
}

// InnerTargetIRs overrides CreateInnerTargetIRs.
func (b *Builder) InnerTargetIRs(fn IRFunc) *Builder {
	b.t.innerIRs = fn
	return b
}

// Build returns the configurator. Configurators are static program data, so an
// incomplete definition panics.
func (b *Builder) Build() *Target {
	t := b.t
	if t.id == "" {
		panic("configurator: id is required")
	}
	if t.text == "" {
		panic(fmt.Sprintf("configurator %q: text is required", t.id))
	}
	if !b.moduleTypeSet {
		panic(fmt.Sprintf("configurator %q: module type is required", t.id))
	}
	if !t.Is(CapSimple) && t.targetIRs == nil {
		panic(fmt.Sprintf("configurator %q: needs a module subtype or a TargetIRs function", t.id))
	}

	// detach from the builder so later builder calls cannot reach the result
	built := *t
	return &built
}

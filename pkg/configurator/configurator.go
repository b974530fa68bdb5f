// Package configurator provides the target configurator contract and its
// capability defaults.
//
// A target configurator decides whether it may coexist with the other targets
// selected for a multiplatform module and synthesizes the IR describing its
// target block. Concrete configurators are process-wide singletons built with
// New or NewSimple and registered from pkg/targets/*/ packages.
package configurator

import (
	"reflect"

	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TargetConfigurator configures one compilation target of a multiplatform module.
//
// Implementations should be comparable by identity (typically pointers): the
// single-coexistence rule compares configurators with ==. A value of a
// non-comparable type never matches another configurator.
type TargetConfigurator interface {
	// ID is the stable registry key.
	ID() string
	// Text is the label shown to users.
	Text() string
	ModuleType() core.ModuleType
	// ModuleKind is always core.KindTarget.
	ModuleKind() core.ModuleKind
	SuggestedModuleName() string

	// CanCoexistWith reports whether the configurator may be added to a module
	// that already has others selected.
	CanCoexistWith(others []TargetConfigurator) bool

	// CreateTargetIRs returns the IR for the target module m.
	CreateTargetIRs(m core.Module) []ir.Node
	// CreateInnerTargetIRs returns the IR nested inside the target block.
	CreateInnerTargetIRs(m core.Module) []ir.Node
}

// =============================================================================
// Capabilities
// =============================================================================

// Capability tags a behavior a configurator was composed with.
type Capability uint8

const (
	// CapSimple derives identity and default IR from a module subtype.
	CapSimple Capability = 1 << iota
	// CapSingleCoexistence allows at most one instance per module.
	CapSingleCoexistence
	// CapTests supplies a default test framework.
	CapTests
	// CapJVM supplies JVM platform defaults.
	CapJVM
	// CapAndroid supplies Android platform defaults.
	CapAndroid
)

// allCapabilities lists every capability in display order.
var allCapabilities = []Capability{CapSimple, CapSingleCoexistence, CapTests, CapJVM, CapAndroid}

// String returns the string representation of a single capability.
func (c Capability) String() string {
	switch c {
	case CapSimple:
		return "simple"
	case CapSingleCoexistence:
		return "single-coexistence"
	case CapTests:
		return "tests"
	case CapJVM:
		return "jvm"
	case CapAndroid:
		return "android"
	default:
		return "unknown"
	}
}

// Capable is implemented by configurators that report their capabilities.
type Capable interface {
	Is(c Capability) bool
}

// Has reports whether c was composed with capability capability.
// Configurators that do not implement Capable have none.
func Has(c TargetConfigurator, capability Capability) bool {
	if cc, ok := c.(Capable); ok {
		return cc.Is(capability)
	}
	return false
}

// Capabilities returns the capabilities of c in display order.
func Capabilities(c TargetConfigurator) []Capability {
	var out []Capability
	for _, capability := range allCapabilities {
		if Has(c, capability) {
			out = append(out, capability)
		}
	}
	return out
}

// =============================================================================
// Default behavior
// =============================================================================

// NoneEqual is the single-coexistence rule: self may join only if none of the
// others is self. Self is never compared against itself.
func NoneEqual(self TargetConfigurator, others []TargetConfigurator) bool {
	for _, other := range others {
		if same(self, other) {
			return false
		}
	}
	return true
}

// same reports whether a and b are the same configurator. Values of a type
// that is not comparable are never the same as anything, since == panics on
// them.
func same(a, b TargetConfigurator) bool {
	if t := reflect.TypeOf(a); t != nil && !t.Comparable() {
		return false
	}
	return a == b
}

// SimpleID returns the configurator id derived from a subtype, e.g. "jvmTarget".
func SimpleID(st core.ModuleSubType) string {
	return st.Name() + "Target"
}

// SimpleText returns the label derived from a subtype: the subtype name with
// its first letter upper-cased.
func SimpleText(st core.ModuleSubType) string {
	// a Caser carries state, so it is not shared
	return cases.Title(language.Und, cases.NoLower).String(st.Name())
}

// SimpleTargetIRs is the default IR for a subtype-backed configurator: exactly
// one target configuration block addressing st, wrapping c's inner IR.
func SimpleTargetIRs(c TargetConfigurator, st core.ModuleSubType, m core.Module) []ir.Node {
	return ir.Build(func(b *ir.ListBuilder) {
		b.Add(ir.NewTargetConfiguration(ir.AccessFor(m, st), c.CreateInnerTargetIRs(m)))
	})
}

// =============================================================================
// Coexistence
// =============================================================================

// Admissible reports whether candidate may join a module that has accepted
// configurators already.
func Admissible(candidate TargetConfigurator, accepted []TargetConfigurator) bool {
	return candidate.CanCoexistWith(accepted)
}

// Select applies the coexistence check to candidates in insertion order. Each
// candidate is checked once against the configurators accepted before it;
// accepted configurators are never re-checked or revoked.
func Select(candidates []TargetConfigurator) (accepted, refused []TargetConfigurator) {
	for _, c := range candidates {
		if !Admissible(c, accepted) {
			refused = append(refused, c)
			continue
		}
		accepted = append(accepted, c)
	}
	return accepted, refused
}

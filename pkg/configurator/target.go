package configurator

import (
	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// Default platform settings.
const (
	DefaultJVMTarget     = "1.8"
	DefaultAndroidPlugin = "com.android.library"
)

// IRFunc synthesizes IR for a target module. self is the configurator the
// function is installed on, so overrides can reach its other behavior.
type IRFunc func(self TargetConfigurator, m core.Module) []ir.Node

// Target is a configurator assembled from capabilities by a Builder.
// Targets are immutable after Build.
type Target struct {
	id                  string
	text                string
	suggestedModuleName string
	moduleType          core.ModuleType

	caps          Capability
	subType       core.ModuleSubType
	testFramework core.TestFramework
	jvmTarget     string
	androidPlugin string

	targetIRs IRFunc
	innerIRs  IRFunc
}

var _ TargetConfigurator = (*Target)(nil)

// ID implements TargetConfigurator.
func (t *Target) ID() string { return t.id }

// Text implements TargetConfigurator.
func (t *Target) Text() string { return t.text }

// ModuleType implements TargetConfigurator.
func (t *Target) ModuleType() core.ModuleType { return t.moduleType }

// ModuleKind implements TargetConfigurator.
func (t *Target) ModuleKind() core.ModuleKind { return core.KindTarget }

// SuggestedModuleName implements TargetConfigurator.
func (t *Target) SuggestedModuleName() string { return t.suggestedModuleName }

// String returns the configurator id.
func (t *Target) String() string { return t.id }

// Is implements Capable.
func (t *Target) Is(c Capability) bool {
	return t.caps&c != 0
}

// ModuleSubType returns the subtype a simple configurator is backed by.
func (t *Target) ModuleSubType() (core.ModuleSubType, bool) {
	return t.subType, t.Is(CapSimple)
}

// DefaultTestFramework returns the test runner the target is configured with.
func (t *Target) DefaultTestFramework() (core.TestFramework, bool) {
	return t.testFramework, t.Is(CapTests)
}

// JVMTarget returns the JVM bytecode target version.
func (t *Target) JVMTarget() (string, bool) {
	return t.jvmTarget, t.Is(CapJVM)
}

// AndroidPlugin returns the Gradle plugin id applied to Android targets.
func (t *Target) AndroidPlugin() (string, bool) {
	return t.androidPlugin, t.Is(CapAndroid)
}

// CanCoexistWith implements TargetConfigurator. Without the single-coexistence
// capability coexistence is unrestricted.
func (t *Target) CanCoexistWith(others []TargetConfigurator) bool {
	if t.Is(CapSingleCoexistence) {
		return NoneEqual(t, others)
	}
	return true
}

// CreateTargetIRs implements TargetConfigurator.
func (t *Target) CreateTargetIRs(m core.Module) []ir.Node {
	if t.targetIRs != nil {
		return t.targetIRs(t, m)
	}
	return SimpleTargetIRs(t, t.subType, m)
}

// CreateInnerTargetIRs implements TargetConfigurator. It is empty unless an
// override was installed.
func (t *Target) CreateInnerTargetIRs(m core.Module) []ir.Node {
	if t.innerIRs != nil {
		return t.innerIRs(t, m)
	}
	return nil
}

package core

// =============================================================================
// ModuleKind
// =============================================================================

// ModuleKind identifies the role a module plays in a project.
type ModuleKind int

// Module kinds.
const (
	// KindMultiplatform is a module that owns one target module per platform.
	KindMultiplatform ModuleKind = iota
	// KindTarget is a compilation target inside a multiplatform module.
	KindTarget
	// KindSingleplatformJVM is a standalone JVM module.
	KindSingleplatformJVM
	// KindSingleplatformAndroid is a standalone Android module.
	KindSingleplatformAndroid
	// KindSingleplatformJS is a standalone JS module.
	KindSingleplatformJS
)

// String returns the string representation of the module kind.
func (k ModuleKind) String() string {
	switch k {
	case KindMultiplatform:
		return "multiplatform"
	case KindTarget:
		return "target"
	case KindSingleplatformJVM:
		return "singleplatformJvm"
	case KindSingleplatformAndroid:
		return "singleplatformAndroid"
	case KindSingleplatformJS:
		return "singleplatformJs"
	default:
		return "unknown"
	}
}

// =============================================================================
// Module
// =============================================================================

// Module is a named build unit under configuration.
// The name is user-assigned and may differ from the canonical name of the
// subtype it targets.
type Module struct {
	Name string
	Kind ModuleKind
}

// NewTargetModule returns a target module with the given name.
func NewTargetModule(name string) Module {
	return Module{Name: name, Kind: KindTarget}
}

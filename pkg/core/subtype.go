package core

// =============================================================================
// ModuleType
// =============================================================================

// ModuleType classifies the platform family a module compiles for.
type ModuleType int

// Module types.
const (
	// ModuleTypeJVM compiles to JVM bytecode.
	ModuleTypeJVM ModuleType = iota
	// ModuleTypeJS compiles to JavaScript.
	ModuleTypeJS
	// ModuleTypeAndroid compiles for the Android runtime.
	ModuleTypeAndroid
	// ModuleTypeCommon holds platform-independent code shared by other targets.
	ModuleTypeCommon
)

// String returns the string representation of the module type.
func (t ModuleType) String() string {
	switch t {
	case ModuleTypeJVM:
		return "jvm"
	case ModuleTypeJS:
		return "js"
	case ModuleTypeAndroid:
		return "android"
	case ModuleTypeCommon:
		return "common"
	default:
		return "unknown"
	}
}

// =============================================================================
// ModuleSubType
// =============================================================================

// ModuleSubType is a concrete compilation target within a ModuleType.
// Values are comparable and immutable; use the SubType* variables.
type ModuleSubType struct {
	name       string
	moduleType ModuleType
}

// Name returns the canonical target name (e.g. "jvm").
func (s ModuleSubType) Name() string {
	return s.name
}

// ModuleType returns the platform family of the subtype.
func (s ModuleSubType) ModuleType() ModuleType {
	return s.moduleType
}

// String returns the canonical target name.
func (s ModuleSubType) String() string {
	return s.name
}

// Known module subtypes.
var (
	SubTypeJVM     = ModuleSubType{name: "jvm", moduleType: ModuleTypeJVM}
	SubTypeJS      = ModuleSubType{name: "js", moduleType: ModuleTypeJS}
	SubTypeAndroid = ModuleSubType{name: "android", moduleType: ModuleTypeAndroid}
	SubTypeCommon  = ModuleSubType{name: "common", moduleType: ModuleTypeCommon}
)

var subTypes = []ModuleSubType{SubTypeJVM, SubTypeJS, SubTypeAndroid, SubTypeCommon}

// SubTypes returns all known subtypes in declaration order.
func SubTypes() []ModuleSubType {
	out := make([]ModuleSubType, len(subTypes))
	copy(out, subTypes)
	return out
}

// LookupSubType returns the subtype with the given canonical name.
// Names are case-sensitive.
func LookupSubType(name string) (ModuleSubType, bool) {
	for _, st := range subTypes {
		if st.name == name {
			return st, true
		}
	}
	return ModuleSubType{}, false
}

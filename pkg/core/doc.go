// Package core defines the shared language of the mpwizard system.
//
// This package contains:
//   - Module classification (ModuleType, ModuleSubType, ModuleKind)
//   - The Module entity a configurator builds for
//   - Test framework reference data (TestFramework)
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core

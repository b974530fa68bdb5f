// Package jvm provides the JVM target configurator.
package jvm

import (
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
)

func init() {
	configurator.Register(Target)
}

// Target configures a JVM target tested with JUnit 4.
var Target = configurator.NewSimple(core.SubTypeJVM).
	Tests(core.TestFrameworkJUnit4).
	JVM(configurator.DefaultJVMTarget).
	Build()

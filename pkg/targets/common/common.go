// Package common provides the common (platform-independent) target configurator.
package common

import (
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
)

func init() {
	configurator.Register(Target)
}

// Target configures the common target shared by all platforms of a module.
var Target = configurator.NewSimple(core.SubTypeCommon).
	Tests(core.TestFrameworkCommon).
	Build()

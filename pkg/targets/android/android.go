// Package android provides the Android target configurator.
package android

import (
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
)

func init() {
	configurator.Register(Target)
}

// Target configures an Android library target. It has no default test framework.
var Target = configurator.NewSimple(core.SubTypeAndroid).
	Android(configurator.DefaultAndroidPlugin).
	Build()

// Package targets registers the built-in target configurators.
//
// Importing this package makes every built-in configurator available through
// the configurator registry.
package targets

import (
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/targets/android"
	"github.com/leapstack-labs/mpwizard/pkg/targets/common"
	"github.com/leapstack-labs/mpwizard/pkg/targets/js"
	"github.com/leapstack-labs/mpwizard/pkg/targets/jvm"
)

// Builtin returns the built-in configurators in wizard display order.
func Builtin() []configurator.TargetConfigurator {
	return []configurator.TargetConfigurator{
		common.Target,
		jvm.Target,
		js.Browser,
		js.Node,
		android.Target,
	}
}

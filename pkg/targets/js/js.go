// Package js provides the JavaScript target configurators.
//
// Browser and Node.js are separate user choices, but both address the generic
// js target of the build; they differ only in the section nested inside it.
package js

import (
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

func init() {
	configurator.Register(Browser)
	configurator.Register(Node)
}

// Environment section names nested in the js target block.
const (
	BrowserSection = "browser"
	NodeSection    = "nodejs"
)

// Browser configures a JS target running in the browser.
var Browser = newTarget("jsBrowser", "Browser", "browser", BrowserSection)

// Node configures a JS target running on Node.js.
var Node = newTarget("jsNode", "Node.js", "nodeJs", NodeSection)

func newTarget(id, text, suggestedName, section string) *configurator.Target {
	return configurator.New(id).
		Text(text).
		SuggestedModuleName(suggestedName).
		ModuleType(core.ModuleTypeJS).
		SingleCoexistence().
		Tests(core.TestFrameworkJS).
		TargetIRs(func(_ configurator.TargetConfigurator, m core.Module) []ir.Node {
			return ir.Build(func(b *ir.ListBuilder) {
				b.Add(ir.NewTargetConfiguration(
					ir.AccessFor(m, core.SubTypeJS),
					ir.Build(func(b *ir.ListBuilder) {
						b.Add(ir.SectionCall(section, nil))
					}),
				))
			})
		}).
		Build()
}

package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/leapstack-labs/mpwizard/pkg/configurator"
	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
	"github.com/leapstack-labs/mpwizard/pkg/targets"
	"github.com/leapstack-labs/mpwizard/pkg/targets/android"
	"github.com/leapstack-labs/mpwizard/pkg/targets/common"
	"github.com/leapstack-labs/mpwizard/pkg/targets/js"
	"github.com/leapstack-labs/mpwizard/pkg/targets/jvm"
)

func TestBuiltin_Registered(t *testing.T) {
	for _, c := range targets.Builtin() {
		got, ok := configurator.Get(c.ID())
		require.True(t, ok, "configurator %q should be registered", c.ID())
		assert.Same(t, c, got)
	}
}

func TestBuiltin_Identity(t *testing.T) {
	tests := []struct {
		c             configurator.TargetConfigurator
		id            string
		text          string
		suggestedName string
		moduleType    core.ModuleType
	}{
		{common.Target, "commonTarget", "Common", "common", core.ModuleTypeCommon},
		{jvm.Target, "jvmTarget", "Jvm", "jvm", core.ModuleTypeJVM},
		{js.Browser, "jsBrowser", "Browser", "browser", core.ModuleTypeJS},
		{js.Node, "jsNode", "Node.js", "nodeJs", core.ModuleTypeJS},
		{android.Target, "androidTarget", "Android", "android", core.ModuleTypeAndroid},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.c.ID())
			assert.Equal(t, tt.text, tt.c.Text())
			assert.Equal(t, tt.suggestedName, tt.c.SuggestedModuleName())
			assert.Equal(t, tt.moduleType, tt.c.ModuleType())
			assert.Equal(t, core.KindTarget, tt.c.ModuleKind())
		})
	}
}

func TestBuiltin_Capabilities(t *testing.T) {
	tests := []struct {
		c    configurator.TargetConfigurator
		want []configurator.Capability
	}{
		{common.Target, []configurator.Capability{configurator.CapSimple, configurator.CapSingleCoexistence, configurator.CapTests}},
		{jvm.Target, []configurator.Capability{configurator.CapSimple, configurator.CapSingleCoexistence, configurator.CapTests, configurator.CapJVM}},
		{js.Browser, []configurator.Capability{configurator.CapSingleCoexistence, configurator.CapTests}},
		{js.Node, []configurator.Capability{configurator.CapSingleCoexistence, configurator.CapTests}},
		{android.Target, []configurator.Capability{configurator.CapSimple, configurator.CapSingleCoexistence, configurator.CapAndroid}},
	}

	for _, tt := range tests {
		t.Run(tt.c.ID(), func(t *testing.T) {
			assert.Equal(t, tt.want, configurator.Capabilities(tt.c))
		})
	}
}

func TestBuiltin_Attributes(t *testing.T) {
	tf, ok := jvm.Target.DefaultTestFramework()
	require.True(t, ok)
	assert.Equal(t, core.TestFrameworkJUnit4, tf)

	target, ok := jvm.Target.JVMTarget()
	require.True(t, ok)
	assert.Equal(t, "1.8", target)

	tf, ok = common.Target.DefaultTestFramework()
	require.True(t, ok)
	assert.Equal(t, core.TestFrameworkCommon, tf)

	tf, ok = js.Browser.DefaultTestFramework()
	require.True(t, ok)
	assert.Equal(t, core.TestFrameworkJS, tf)

	plugin, ok := android.Target.AndroidPlugin()
	require.True(t, ok)
	assert.Equal(t, "com.android.library", plugin)

	_, ok = android.Target.DefaultTestFramework()
	assert.False(t, ok, "android has no default test framework")

	st, ok := common.Target.ModuleSubType()
	require.True(t, ok)
	assert.Equal(t, core.SubTypeCommon, st)

	_, ok = js.Browser.ModuleSubType()
	assert.False(t, ok, "js configurators are not simple")
}

func TestCoexistence(t *testing.T) {
	t.Run("refuses itself", func(t *testing.T) {
		for _, c := range targets.Builtin() {
			assert.False(t, c.CanCoexistWith([]configurator.TargetConfigurator{c}), c.ID())
		}
	})

	t.Run("accepts every other builtin", func(t *testing.T) {
		for _, c := range targets.Builtin() {
			var others []configurator.TargetConfigurator
			for _, o := range targets.Builtin() {
				if o != c {
					others = append(others, o)
				}
			}
			assert.True(t, c.CanCoexistWith(others), c.ID())
		}
	})

	t.Run("browser and node coexist", func(t *testing.T) {
		assert.True(t, js.Browser.CanCoexistWith([]configurator.TargetConfigurator{js.Node}))
		assert.True(t, js.Node.CanCoexistWith([]configurator.TargetConfigurator{js.Browser}))
	})
}

func TestSelect_JVMAndCommon(t *testing.T) {
	accepted, refused := configurator.Select([]configurator.TargetConfigurator{jvm.Target, common.Target})
	assert.Equal(t, []configurator.TargetConfigurator{jvm.Target, common.Target}, accepted)
	assert.Empty(t, refused)
}

func TestSelect_JVMTwice(t *testing.T) {
	accepted, refused := configurator.Select([]configurator.TargetConfigurator{jvm.Target, jvm.Target})
	assert.Equal(t, []configurator.TargetConfigurator{jvm.Target}, accepted)
	assert.Equal(t, []configurator.TargetConfigurator{jvm.Target}, refused)
}

func TestSimpleTargetIRs(t *testing.T) {
	tests := []struct {
		name     string
		c        configurator.TargetConfigurator
		module   string
		wantName string
		wantSet  bool
	}{
		{"jvm canonical name", jvm.Target, "jvm", "jvm", false},
		{"jvm custom name", jvm.Target, "myJvm", "myJvm", true},
		{"common canonical name", common.Target, "common", "common", false},
		{"android custom name", android.Target, "droid", "droid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := tt.c.CreateTargetIRs(core.NewTargetModule(tt.module))
			require.Len(t, nodes, 1)

			tc, ok := nodes[0].(ir.TargetConfiguration)
			require.True(t, ok, "expected TargetConfiguration, got %T", nodes[0])

			st, _ := tt.c.(*configurator.Target).ModuleSubType()
			assert.Equal(t, st, tc.Access().SubType())

			name, set := tc.Access().Name()
			assert.Equal(t, tt.wantSet, set)
			if set {
				assert.Equal(t, tt.wantName, name)
			}
			assert.Equal(t, tt.wantName, tc.Access().TargetName())
			assert.Empty(t, tc.Inner(), "simple targets have no inner configuration")
		})
	}
}

func TestJSTargetIRs(t *testing.T) {
	tests := []struct {
		c        configurator.TargetConfigurator
		module   string
		section  string
		wantName string
		wantSet  bool
	}{
		{js.Browser, "js", js.BrowserSection, "js", false},
		{js.Browser, "web", js.BrowserSection, "web", true},
		{js.Node, "js", js.NodeSection, "js", false},
		{js.Node, "server", js.NodeSection, "server", true},
	}

	for _, tt := range tests {
		t.Run(tt.c.ID()+"/"+tt.module, func(t *testing.T) {
			nodes := tt.c.CreateTargetIRs(core.NewTargetModule(tt.module))
			require.Len(t, nodes, 1)

			tc, ok := nodes[0].(ir.TargetConfiguration)
			require.True(t, ok)
			assert.Equal(t, core.SubTypeJS, tc.Access().SubType())

			name, set := tc.Access().Name()
			assert.Equal(t, tt.wantSet, set)
			assert.Equal(t, tt.wantName, tc.Access().TargetName())
			if set {
				assert.Equal(t, tt.wantName, name)
			}

			inner := tc.Inner()
			require.Len(t, inner, 1)
			section, ok := inner[0].(ir.RawSection)
			require.True(t, ok)
			assert.Equal(t, tt.section, section.Name())
			assert.Empty(t, section.Body())
		})
	}
}

func TestCreateInnerTargetIRs_Empty(t *testing.T) {
	for _, c := range targets.Builtin() {
		assert.Empty(t, c.CreateInnerTargetIRs(core.NewTargetModule("x")), c.ID())
	}
}

func TestTargetIRs_Deterministic(t *testing.T) {
	m := core.NewTargetModule("custom")
	for _, c := range targets.Builtin() {
		assert.Equal(t, c.CreateTargetIRs(m), c.CreateTargetIRs(m), c.ID())
	}
}

func TestBuiltin_Properties(t *testing.T) {
	builtin := targets.Builtin()
	gen := rapid.SampledFrom(builtin)
	moduleName := rapid.StringMatching(`[a-z][A-Za-z0-9]{0,11}`)

	rapid.Check(t, func(t *rapid.T) {
		picks := rapid.SliceOf(gen).Draw(t, "picks")

		accepted, _ := configurator.Select(picks)
		for i, c := range accepted {
			for _, o := range accepted[i+1:] {
				assert.NotSame(t, c, o, "accepted set must not contain duplicates")
			}
		}

		c := gen.Draw(t, "configurator")
		name := moduleName.Draw(t, "module")
		nodes := c.CreateTargetIRs(core.NewTargetModule(name))
		require.Len(t, nodes, 1)
		tc := nodes[0].(ir.TargetConfiguration)
		assert.Equal(t, name, tc.Access().TargetName())

		_, set := tc.Access().Name()
		assert.Equal(t, name != tc.Access().SubType().Name(), set)
	})
}

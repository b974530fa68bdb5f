package configurator

import (
	"fmt"
	"testing"

	"github.com/leapstack-labs/mpwizard/pkg/core"
	"github.com/leapstack-labs/mpwizard/pkg/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// singleCoexistencePool builds n distinct single-coexistence configurators.
func singleCoexistencePool(n int) []TargetConfigurator {
	subTypes := core.SubTypes()
	out := make([]TargetConfigurator, 0, n)
	for i := 0; i < n; i++ {
		st := subTypes[i%len(subTypes)]
		out = append(out, New(fmt.Sprintf("%s_%d", SimpleID(st), i)).
			Text(SimpleText(st)).
			Simple(st).
			Build())
	}
	return out
}

var targetName = rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,12}`)

func TestSingleCoexistence_Properties(t *testing.T) {
	pool := singleCoexistencePool(8)

	rapid.Check(t, func(rt *rapid.T) {
		c := rapid.SampledFrom(pool).Draw(rt, "c")

		// a configurator never coexists with itself, and always joins an empty module
		assert.False(rt, c.CanCoexistWith([]TargetConfigurator{c}))
		assert.True(rt, c.CanCoexistWith(nil))

		// distinct configurators always coexist
		other := rapid.SampledFrom(pool).Filter(func(o TargetConfigurator) bool { return o != c }).Draw(rt, "other")
		assert.True(rt, c.CanCoexistWith([]TargetConfigurator{other}))
	})
}

func TestSelect_Properties(t *testing.T) {
	pool := singleCoexistencePool(6)

	rapid.Check(t, func(rt *rapid.T) {
		candidates := rapid.SliceOf(rapid.SampledFrom(pool)).Draw(rt, "candidates")

		accepted, refused := Select(candidates)
		require.Equal(rt, len(candidates), len(accepted)+len(refused))

		// accepted keeps first occurrences in insertion order, without duplicates
		seen := make(map[TargetConfigurator]bool)
		var want []TargetConfigurator
		for _, c := range candidates {
			if !seen[c] {
				seen[c] = true
				want = append(want, c)
			}
		}
		assert.Equal(rt, want, accepted)

		for _, c := range refused {
			assert.True(rt, seen[c], "only duplicates are refused")
		}
	})
}

func TestSimpleTargetIRs_NameElisionProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		st := rapid.SampledFrom(core.SubTypes()).Draw(rt, "subtype")
		name := rapid.OneOf(rapid.Just(st.Name()), targetName).Draw(rt, "name")
		c := NewSimple(st).Build()

		nodes := c.CreateTargetIRs(core.NewTargetModule(name))
		require.Len(rt, nodes, 1)

		cfg, ok := nodes[0].(ir.TargetConfiguration)
		require.True(rt, ok)

		override, named := cfg.Access().Name()
		assert.Equal(rt, name != st.Name(), named)
		if named {
			assert.Equal(rt, name, override)
		}
		assert.Equal(rt, name, cfg.Access().TargetName())
		assert.Equal(rt, st, cfg.Access().SubType())
		assert.Empty(rt, c.CreateInnerTargetIRs(core.NewTargetModule(name)))
	})
}

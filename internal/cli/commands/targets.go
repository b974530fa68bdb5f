package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/mpwizard/internal/cli/output"
	"github.com/leapstack-labs/mpwizard/pkg/configurator"
)

// TargetInfo describes a registered configurator for listing.
type TargetInfo struct {
	ID                  string   `json:"id"`
	Text                string   `json:"text"`
	ModuleType          string   `json:"module_type"`
	ModuleKind          string   `json:"module_kind"`
	SuggestedModuleName string   `json:"suggested_module_name"`
	SubType             string   `json:"subtype,omitempty"`
	TestFramework       string   `json:"test_framework,omitempty"`
	JVMTarget           string   `json:"jvm_target,omitempty"`
	AndroidPlugin       string   `json:"android_plugin,omitempty"`
	Capabilities        []string `json:"capabilities"`
}

// NewTargetInfo collects the listing details of c.
func NewTargetInfo(c configurator.TargetConfigurator) TargetInfo {
	info := TargetInfo{
		ID:                  c.ID(),
		Text:                c.Text(),
		ModuleType:          c.ModuleType().String(),
		ModuleKind:          c.ModuleKind().String(),
		SuggestedModuleName: c.SuggestedModuleName(),
		Capabilities:        []string{},
	}
	for _, capability := range configurator.Capabilities(c) {
		info.Capabilities = append(info.Capabilities, capability.String())
	}

	t, ok := c.(*configurator.Target)
	if !ok {
		return info
	}
	if st, ok := t.ModuleSubType(); ok {
		info.SubType = st.Name()
	}
	if tf, ok := t.DefaultTestFramework(); ok {
		info.TestFramework = tf.String()
	}
	if target, ok := t.JVMTarget(); ok {
		info.JVMTarget = target
	}
	if plugin, ok := t.AndroidPlugin(); ok {
		info.AndroidPlugin = plugin
	}
	return info
}

// NewTargetsCommand creates the targets command.
func NewTargetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the available target configurators",
		Long: `List every registered target configurator with its module type,
suggested target name, default test framework and capabilities.

Use --output to override: auto, text, markdown, json`,
		Example: `  # List configurators
  mpwizard targets

  # List configurators as JSON
  mpwizard targets --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTargets(NewCommandContext(cmd).Renderer)
		},
	}
}

func runTargets(r *output.Renderer) error {
	all := configurator.All()
	infos := make([]TargetInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, NewTargetInfo(c))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	r.Header(1, "Target configurators")
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.ID,
			info.Text,
			info.ModuleType,
			info.SuggestedModuleName,
			info.TestFramework,
			strings.Join(info.Capabilities, ", "),
		})
	}
	r.Table([]string{"ID", "Text", "Type", "Suggested name", "Tests", "Capabilities"}, rows)
	return nil
}

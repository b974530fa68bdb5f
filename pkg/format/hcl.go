package format

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

// HCL block and attribute names.
const (
	hclModuleBlock  = "module"
	hclTargetBlock  = "target"
	hclSectionBlock = "section"
	hclNameAttr     = "name"
)

func writeHCL(w io.Writer, forest []ir.Node) error {
	f := hclwrite.NewEmptyFile()
	if err := appendHCLForest(f.Body(), forest); err != nil {
		return err
	}
	return writeHCLFile(w, f)
}

func writeHCLModules(w io.Writer, modules []Module) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, m := range modules {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock(hclModuleBlock, []string{m.Name})
		if err := appendHCLForest(block.Body(), m.Forest); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}
	}
	return writeHCLFile(w, f)
}

func writeHCLFile(w io.Writer, f *hclwrite.File) error {
	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write hcl: %w", err)
	}
	return nil
}

// appendHCLForest appends one block per node. A target access becomes
// `target "<subtype>"` with a name attribute only when the name is overridden.
func appendHCLForest(body *hclwrite.Body, forest []ir.Node) error {
	for _, n := range forest {
		switch n := n.(type) {
		case ir.TargetConfiguration:
			block := appendHCLTarget(body, n.Access())
			if err := appendHCLForest(block.Body(), n.Inner()); err != nil {
				return err
			}
		case ir.TargetAccess:
			appendHCLTarget(body, n)
		case ir.RawSection:
			block := body.AppendNewBlock(hclSectionBlock, []string{n.Name()})
			if err := appendHCLForest(block.Body(), n.Body()); err != nil {
				return err
			}
		default:
			return &UnsupportedNodeError{Node: n}
		}
	}
	return nil
}

func appendHCLTarget(body *hclwrite.Body, a ir.TargetAccess) *hclwrite.Block {
	block := body.AppendNewBlock(hclTargetBlock, []string{a.SubType().Name()})
	if name, ok := a.Name(); ok {
		block.Body().SetAttributeValue(hclNameAttr, cty.StringVal(name))
	}
	return block
}

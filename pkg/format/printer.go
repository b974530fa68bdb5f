package format

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/mpwizard/pkg/ir"
)

const indentSize = 2

// printer renders a forest as an indented build-script outline:
//
//	jvm()
//	js("web") {
//	  browser()
//	}
type printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
	err         error
}

func newPrinter() *printer {
	return &printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the formatted output.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *printer) printForest(forest []ir.Node) {
	for _, n := range forest {
		p.printNode(n)
	}
}

func (p *printer) printNode(n ir.Node) {
	switch n := n.(type) {
	case ir.TargetConfiguration:
		p.printCall(accessCall(n.Access()), n.Inner())
	case ir.TargetAccess:
		p.write(accessCall(n))
		p.writeln()
	case ir.RawSection:
		p.printCall(n.Name(), n.Body())
	default:
		if p.err == nil {
			p.err = &UnsupportedNodeError{Node: n}
		}
	}
}

// printCall prints `call()` for an empty body and `call {` ... `}` otherwise.
func (p *printer) printCall(call string, body []ir.Node) {
	if len(body) == 0 {
		if !strings.HasSuffix(call, ")") {
			call += "()"
		}
		p.write(call)
		p.writeln()
		return
	}
	p.write(call + " {")
	p.writeln()
	p.indent()
	p.printForest(body)
	p.dedent()
	p.write("}")
	p.writeln()
}

// accessCall renders a target access: `jvm` or `jvm("myJvm")`.
func accessCall(a ir.TargetAccess) string {
	name, ok := a.Name()
	if !ok {
		return a.SubType().Name()
	}
	return a.SubType().Name() + "(" + strconv.Quote(name) + ")"
}

func writeText(w io.Writer, forest []ir.Node) error {
	p := newPrinter()
	p.printForest(forest)
	if p.err != nil {
		return p.err
	}
	if len(forest) == 0 {
		return nil
	}
	_, err := io.WriteString(w, p.String())
	return err
}

func writeTextModules(w io.Writer, modules []Module) error {
	p := newPrinter()
	for i, m := range modules {
		if i > 0 {
			p.writeln()
		}
		p.write("// module " + m.Name)
		p.writeln()
		p.printForest(m.Forest)
	}
	if p.err != nil {
		return p.err
	}
	if len(modules) == 0 {
		return nil
	}
	_, err := io.WriteString(w, p.String())
	return err
}

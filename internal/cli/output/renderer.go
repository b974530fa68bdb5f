// Package output renders command results for terminals, scripts and agents.
//
// Auto mode picks styled text on a terminal and markdown otherwise.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON}
}

// Valid reports whether m is a known mode. The empty mode counts as auto.
func (m Mode) Valid() bool {
	if m == "" {
		return true
	}
	for _, known := range Modes() {
		if m == known {
			return true
		}
	}
	return false
}

// Renderer writes results to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(newLipglossRenderer(out, isTTY)),
	}
}

// newLipglossRenderer binds styles to out. Color is dropped off a terminal and
// when NO_COLOR is set.
func newLipglossRenderer(out io.Writer, isTTY bool) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(out, termenv.WithColorCache(true))
	if !isTTY || termenv.EnvNoColor() {
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// EffectiveMode resolves auto to text on a terminal and markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the text styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the result writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the diagnostics writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the result writer.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output to the result writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a section header.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(strings.Repeat("#", max(level, 1)) + " " + text)
		r.Println("")
		return
	}
	if level <= 1 {
		r.Println(r.styles.Header1.Render(text))
		return
	}
	r.Println(r.styles.Header2.Render(text))
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Warning writes a warning to the diagnostics writer.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
}

// Error writes an error to the diagnostics writer.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// Muted writes a de-emphasized line.
func (r *Renderer) Muted(msg string) {
	r.Println(r.styles.Muted.Render(msg))
}

// StatusLine writes `<icon> name  detail`. Status is one of success, failed
// or skipped.
func (r *Renderer) StatusLine(name, status, detail string) {
	icon := r.statusIcon(status)
	line := icon + " " + name
	if detail != "" {
		if r.EffectiveMode() == ModeMarkdown {
			line += ": " + detail
		} else {
			line += "  " + r.styles.Muted.Render(detail)
		}
	}
	if r.EffectiveMode() == ModeMarkdown {
		line = "- " + line
	} else {
		line = "  " + line
	}
	r.Println(line)
}

func (r *Renderer) statusIcon(status string) string {
	if r.EffectiveMode() == ModeMarkdown {
		switch status {
		case "success":
			return "✓"
		case "failed":
			return "✗"
		default:
			return "-"
		}
	}
	switch status {
	case "success":
		return r.styles.StatusSuccess.String()
	case "failed":
		return r.styles.StatusFailed.String()
	default:
		return r.styles.StatusSkipped.String()
	}
}

// Table writes rows under header, as a light box table in text mode and a
// markdown table otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

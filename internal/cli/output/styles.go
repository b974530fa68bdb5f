package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
	StatusSkipped lipgloss.Style
}

// newStyles builds styles bound to r, so color is only emitted when r's
// writer supports it.
func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: r.NewStyle().Bold(true),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("14")),

		StatusSuccess: r.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓"),
		StatusFailed:  r.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗"),
		StatusSkipped: r.NewStyle().Foreground(lipgloss.Color("8")).SetString("-"),
	}
}

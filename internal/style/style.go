// Package style holds the lipgloss styles shared by the console output.
package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const ruleWidth = 40

// Styles renders console text for one output writer.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
	Rule    lipgloss.Style
}

// New builds styles bound to w. Colors are only emitted when w is a terminal
// and color is true.
func New(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Heading: r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		Notice:  r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		Rule:    r.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain() Styles {
	return New(io.Discard, false)
}

// Separator renders the horizontal rule printed between sections.
func (s Styles) Separator() string {
	return s.Rule.Render(strings.Repeat("-", ruleWidth))
}

package main

import "github.com/charmbracelet/lipgloss"

// Terminal palette for solver output.
var (
	colorSolved = lipgloss.Color("#2CD7C7")
	colorMissed = lipgloss.Color("#F4D03F")
)

// styles holds the pre-configured lipgloss styles for the CLI. Only status
// lines are styled; the rendered maze itself stays raw so its glyphs can be
// piped or diffed byte for byte.
var styles = struct {
	Solved lipgloss.Style
	Missed lipgloss.Style
}{
	Solved: lipgloss.NewStyle().Bold(true).Foreground(colorSolved),
	Missed: lipgloss.NewStyle().Foreground(colorMissed),
}

// paint applies st unless colored output is disabled.
func paint(st lipgloss.Style, s string) string {
	if cfg.NoColor {
		return s
	}
	return st.Render(s)
}

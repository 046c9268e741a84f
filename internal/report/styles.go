package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting across reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file headers, hunk markers, and group names.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for removed lines.
	StyleRed = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	// StyleGreen is used for added lines and the modified status.
	StyleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleGray is used for rule indices and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

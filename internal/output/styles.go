package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks dated templates.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorHeader is used for table headers.
	ColorHeader = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (template names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDated styles the (DATE) marker.
	StyleDated = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCreated renders the success line for a written output file.
// Plain mode keeps the exact "Created '<name>'" text for scripts.
func FormatCreated(name string, styled bool) string {
	if !styled {
		return "Created '" + name + "'"
	}
	return FormatCheckmark("Created " + StyleNoun.Render(name))
}

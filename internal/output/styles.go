package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorCyan is used for paths and identifiers.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")
)

var (
	// StyleNoun styles paths, pack directories and versions.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles warning list headers.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark returns a green checkmark followed by msg in summary style.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return fmt.Sprintf("%s %s", check, StyleSummary.Render(msg))
}

// FormatList renders a header followed by indented items, one per line.
func FormatList(header string, items []string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatWarnings renders warnings under a styled header. It returns an empty
// string when there are none.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	items := make([]string, len(warnings))
	for i, w := range warnings {
		items[i] = "- " + w
	}
	return FormatList(StyleWarning.Render("Warnings:"), items)
}

package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// formatCaseID returns the display id for a case row.
func formatCaseID(id int) string {
	if id < 10 {
		return "#0" + strconv.Itoa(id)
	}
	return "#" + strconv.Itoa(id)
}

// truncate collapses whitespace and shortens text to limit display cells,
// ending in "..." when cut.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || ansi.StringWidth(normalized) <= limit {
		return normalized
	}
	return ansi.Truncate(normalized, limit, "...")
}

// stylize applies a foreground color when color output is enabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold renders a bold heading when color output is enabled.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

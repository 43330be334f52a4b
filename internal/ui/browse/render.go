package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gaia/internal/fixture"
)

// RenderCase renders a full case for terminal output. width wraps long text;
// zero disables wrapping.
func RenderCase(tc fixture.TestCase, width int, noColor bool) string {
	wrap := func(text string) string {
		if width <= 0 {
			return text
		}
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	response := tc.ExpectedResponse
	sections := []string{
		stylizeBold("Case "+formatCaseID(tc.ID)+" | "+tc.Description, noColor, lipgloss.Color("33")),
		stylize("Question", noColor, lipgloss.Color("242")),
		wrap(tc.Question),
		"",
		stylize("Answer", noColor, lipgloss.Color("242")),
		wrap(response.Answer),
		"",
		stylize("Reasoning", noColor, lipgloss.Color("242")),
		wrap(response.Reasoning),
		"",
		stylize("Sources", noColor, lipgloss.Color("242")),
	}
	for i, source := range response.Sources {
		sections = append(sections, "  "+strconv.Itoa(i+1)+". "+source)
	}
	return strings.Join(sections, "\n")
}

// RenderList renders one line per case for plain output.
func RenderList(cases []fixture.TestCase, noColor bool) string {
	lines := make([]string, 0, len(cases))
	for _, tc := range cases {
		id := stylize(formatCaseID(tc.ID), noColor, lipgloss.Color("33"))
		description := stylize(tc.Description, noColor, lipgloss.Color("242"))
		lines = append(lines, id+"  "+description+"  "+truncate(tc.Question, 80))
	}
	return strings.Join(lines, "\n")
}

// renderHeader renders the browser header line.
func renderHeader(count int, noColor bool) string {
	return stylize("GAIA fixtures | "+strconv.Itoa(count)+" cases", noColor, lipgloss.Color("33"))
}

// renderFooter renders key hints for the current view.
func renderFooter(detail bool, noColor bool) string {
	hint := "enter: open  q: quit"
	if detail {
		hint = "esc: back  q: quit"
	}
	return stylize(hint, noColor, lipgloss.Color("244"))
}

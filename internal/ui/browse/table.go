package browse

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"gaia/internal/fixture"
)

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// columnsForWidth sizes the question column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	const idWidth, descriptionWidth = 5, 30
	questionWidth := width - idWidth - descriptionWidth - 6
	if questionWidth < 20 {
		questionWidth = 20
	}
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Description", Width: descriptionWidth},
		{Title: "Question", Width: questionWidth},
	}
}

// rowsForCases converts cases into table rows.
func rowsForCases(cases []fixture.TestCase) []table.Row {
	rows := make([]table.Row, 0, len(cases))
	for _, tc := range cases {
		rows = append(rows, table.Row{
			formatCaseID(tc.ID),
			truncate(tc.Description, 30),
			truncate(tc.Question, 200),
		})
	}
	return rows
}

// Package browse renders fixture sets in the terminal, either as a Bubble Tea
// table browser or as plain text.
package browse

import (
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gaia/internal/fixture"
)

// Options configures the browser model.
type Options struct {
	NoColor bool
}

// Model is a Bubble Tea model listing cases with a detail view.
type Model struct {
	cases   []fixture.TestCase
	table   table.Model
	detail  bool
	width   int
	noColor bool
}

// NewModel builds a browser over every case in the set.
func NewModel(set *fixture.Set, opts Options) Model {
	cases := set.All()
	t := table.New(
		table.WithColumns(columnsForWidth(100)),
		table.WithRows(rowsForCases(cases)),
		table.WithFocused(true),
		table.WithHeight(min(len(cases)+1, 20)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		cases:   cases,
		table:   t,
		width:   100,
		noColor: opts.NoColor,
	}
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resize and navigation keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if len(m.cases) > 0 {
				m.detail = true
			}
			return m, nil
		case "esc", "backspace":
			m.detail = false
			return m, nil
		}
	}
	if m.detail {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table or the selected case.
func (m Model) View() string {
	header := renderHeader(len(m.cases), m.noColor)
	footer := renderFooter(m.detail, m.noColor)
	if m.detail {
		if selected, ok := m.Selected(); ok {
			body := RenderCase(selected, m.width, m.noColor)
			return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

// Selected returns the case under the cursor.
func (m Model) Selected() (fixture.TestCase, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.cases) {
		return fixture.TestCase{}, false
	}
	return m.cases[cursor], true
}

// Detail reports whether the detail view is open.
func (m Model) Detail() bool {
	return m.detail
}

// Run starts the browser on the given streams and blocks until the user quits.
func Run(set *fixture.Set, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(set, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

package cli

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/entrycard/internal/model"
)

// EntryListModel is a read-only table over all entries, used by the
// list command.
type EntryListModel struct {
	table    table.Model
	count    int
	quitting bool
}

// NewEntryListModel builds the table view from the given entries.
func NewEntryListModel(entries []model.Entry) EntryListModel {
	columns := []table.Column{
		{Title: "Sr. No.", Width: 7},
		{Title: "Associate I.D.", Width: 14},
		{Title: "Date", Width: 10},
		{Title: "Name", Width: 24},
		{Title: "Mobile", Width: 10},
		{Title: "Age", Width: 4},
		{Title: "E-Mail", Width: 24},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		age := ""
		if e.Age != 0 {
			age = strconv.FormatInt(e.Age, 10)
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(e.SerialNumber, 10),
			e.AssociateID,
			e.Date,
			e.Name,
			e.Mobile,
			age,
			e.Email,
		})
	}

	height := len(rows)
	if height > 20 {
		height = 20
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return EntryListModel{table: t, count: len(entries)}
}

func (m EntryListModel) Init() tea.Cmd {
	return nil
}

func (m EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EntryListModel) View() string {
	if m.quitting {
		return ""
	}

	if m.count == 0 {
		return docStyle.Render(blurredStyle.Render("No entries recorded yet."))
	}

	return docStyle.Render(m.table.View() + "\n" +
		helpStyle.Render(" up/down: scroll • q: quit"))
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// HistoryModel is the stock movement log screen.
type HistoryModel struct {
	backend Backend
	table   table.Model
	errMsg  string
	styles  Styles
}

// NewHistoryModel creates the history screen.
func NewHistoryModel(backend Backend) HistoryModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "When", Width: 17},
			{Title: "Product", Width: 22},
			{Title: "Action", Width: 7},
			{Title: "Qty", Width: 8},
			{Title: "By", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	return HistoryModel{
		backend: backend,
		table:   t,
		styles:  DefaultStyles(),
	}
}

// Load returns the command that fetches the history log.
func (m HistoryModel) Load() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		entries, err := backend.History(context.Background())
		return historyMsg{entries: entries, err: err}
	}
}

// Update handles history screen messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""

		rows := make([]table.Row, 0, len(msg.entries))
		for _, e := range msg.entries {
			rows = append(rows, table.Row{
				e.CreatedAt.Format("2006-01-02 15:04"),
				e.Product,
				e.Action,
				fmt.Sprintf("%g", e.Quantity),
				e.Actor,
			})
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Load()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("History"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n" + m.styles.Help.Render("r reload"))
	return b.String()
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/melmoskitchen/pantry/internal/api"
)

// DashboardModel is the category overview screen.
type DashboardModel struct {
	backend Backend

	table      table.Model
	categories []api.Category
	spinner    spinner.Model
	loading    bool
	errMsg     string

	styles Styles
}

// NewDashboardModel creates the dashboard screen.
func NewDashboardModel(backend Backend) DashboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 28},
			{Title: "Products", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return DashboardModel{
		backend: backend,
		table:   t,
		spinner: s,
		styles:  DefaultStyles(),
	}
}

// Load returns the command that fetches the dashboard data.
func (m DashboardModel) Load() tea.Cmd {
	backend := m.backend
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		categories, err := backend.Categories(context.Background())
		return categoriesMsg{categories: categories, err: err}
	})
}

// Update handles dashboard messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.categories = msg.categories

		rows := make([]table.Row, 0, len(msg.categories))
		for _, c := range msg.categories {
			rows = append(rows, table.Row{c.Name, fmt.Sprintf("%d", c.ProductCount)})
		}
		m.table.SetRows(rows)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if len(m.categories) > 0 {
				return m, m.openCategory(m.categories[m.table.Cursor()])
			}
			return m, nil
		case "r":
			m.startLoading()
			return m, m.Load()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) openCategory(category api.Category) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		products, err := backend.Products(context.Background(), category.ID)
		return productsMsg{category: category, products: products, err: err}
	}
}

func (m *DashboardModel) startLoading() {
	m.loading = true
	m.errMsg = ""
}

// View renders the dashboard screen.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Dashboard"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading categories...")
	case m.errMsg != "":
		b.WriteString(m.styles.Error.Render(m.errMsg))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n" + m.styles.Help.Render("enter open category • r reload"))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/melmoskitchen/pantry/internal/api"
)

// ProductsModel is the product list for one category.
type ProductsModel struct {
	category api.Category
	table    table.Model
	errMsg   string
	styles   Styles
}

// NewProductsModel creates an empty product list screen.
func NewProductsModel() ProductsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Product", Width: 26},
			{Title: "Qty", Width: 10},
			{Title: "Unit", Width: 8},
			{Title: "Status", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ProductsModel{
		table:  t,
		styles: DefaultStyles(),
	}
}

// setProducts fills the screen from a fetched category.
func (m *ProductsModel) setProducts(msg productsMsg) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return
	}

	m.errMsg = ""
	m.category = msg.category

	rows := make([]table.Row, 0, len(msg.products))
	for _, p := range msg.products {
		status := "ok"
		if p.Quantity <= p.LowStock {
			status = "low"
		}
		rows = append(rows, table.Row{
			p.Name,
			fmt.Sprintf("%g", p.Quantity),
			p.Unit,
			status,
		})
	}
	m.table.SetRows(rows)
}

// Update handles product list messages.
func (m ProductsModel) Update(msg tea.Msg) (ProductsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(key)
		return m, cmd
	}
	return m, nil
}

// View renders the product list.
func (m ProductsModel) View() string {
	var b strings.Builder

	title := "Products"
	if m.category.Name != "" {
		title = m.category.Name
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n" + m.styles.Help.Render("esc back to dashboard"))
	return b.String()
}

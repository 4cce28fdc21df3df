// Package report renders a dashboard as a terminal table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lowStyle    = cellStyle.Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

type column struct {
	title string
	key   view.SortKey
}

var columns = []column{
	{"ID", view.SortByID},
	{"Name", view.SortByName},
	{"Category", view.SortCategory},
	{"Price", view.SortByPrice},
	{"Stock", view.SortByStock},
	{"Value", view.SortNone},
	{"Status", view.SortNone},
}

func headers(s view.State) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		h := c.title
		if c.key != view.SortNone && c.key == s.SortKey {
			if s.Direction == view.Descending {
				h += " ↓"
			} else {
				h += " ↑"
			}
		}
		out = append(out, h)
	}
	return out
}

func stockBar(pct int) string {
	n := pct / 10
	return strings.Repeat("█", n) + strings.Repeat("░", 10-n)
}

// Render writes the stats line, the table and the "Showing N of M" footer.
func Render(w io.Writer, d view.Dashboard) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Inventory Management Dashboard"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Products: %d   Low Stock Items: %d   Total Inventory Value: $%s\n\n",
		d.Stats.TotalItems, d.Stats.LowStockItems, d.Stats.TotalValueString())

	rows := make([][]string, 0, len(d.Rows))
	for _, r := range d.Rows {
		rows = append(rows, []string{
			string(r.ID),
			r.Name,
			r.Category,
			"$" + r.Price.StringFixed(2),
			strconv.FormatInt(r.StockCount, 10) + " " + stockBar(r.StockBarPercent),
			"$" + r.Value.StringFixed(2),
			string(r.Status),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{view.NoMatchesMessage, "", "", "", "", "", ""})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers(d.State)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(d.Rows) && d.Rows[row].LowStock {
				return lowStyle
			}
			return cellStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d items", d.Showing, d.Total)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

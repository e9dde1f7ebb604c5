package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/itemdash/internal/model"
	"github.com/idilsaglam/itemdash/internal/ui"
)

const (
	title       = "Item Dashboard"
	healthLabel = "Check Health"
	itemsLabel  = "Get Items"
	ruleWidth   = 40
)

var columns = []string{"ID", "Name", "Description"}

// Render draws the dashboard from its two pieces of state. The item table
// only appears once there is at least one item.
func Render(health string, items []model.Item) string {
	t := ui.Current()
	lines := []string{
		t.Title.Render(title),
		"",
		t.Button.Render("h "+healthLabel) + "  " + health,
		t.Muted.Render(strings.Repeat(t.Rule, ruleWidth)),
		t.Button.Render("i " + itemsLabel),
	}
	if len(items) > 0 {
		lines = append(lines, "", ItemTable(items))
	}
	return strings.Join(lines, "\n")
}

// ItemTable renders one row per item in fixed column order.
func ItemTable(items []model.Item) string {
	t := ui.Current()
	return table.New().
		Border(t.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
		Headers(columns...).
		Rows(rows(items)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		}).
		String()
}

func rows(items []model.Item) [][]string {
	out := make([][]string, 0, len(items))
	for _, it := range items {
		out = append(out, []string{it.ID.String(), it.Name.String(), it.Description.String()})
	}
	return out
}

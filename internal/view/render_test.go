package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/itemdash/internal/model"
	"github.com/idilsaglam/itemdash/internal/ui"
)

func TestRenderEmptyHasNoTable(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	out := Render("", nil)
	assert.Contains(t, out, healthLabel)
	assert.Contains(t, out, itemsLabel)
	assert.NotContains(t, out, "ID")
	assert.NotContains(t, out, "Description")
}

func TestRenderShowsHealthNextToButton(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	out := Render("all good", nil)
	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, healthLabel) {
			line = l
		}
	}
	assert.Contains(t, line, "all good")
}

func TestRowsMatchItemsInOrder(t *testing.T) {
	items := []model.Item{
		item(1, "Widget", "A widget"),
		item(2, "Gadget", ""),
		{ID: model.Number(3), Name: model.Text("Gizmo")},
	}
	got := rows(items)
	require.Len(t, got, len(items))
	assert.Equal(t, []string{"1", "Widget", "A widget"}, got[0])
	assert.Equal(t, []string{"2", "Gadget", ""}, got[1])
	assert.Equal(t, []string{"3", "Gizmo", ""}, got[2])
}

func TestRenderErrorItemIsSingleRow(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	items := []model.Item{model.ErrorItem()}
	require.Len(t, rows(items), 1)
	assert.Equal(t, []string{"0", model.ErrorItemName, ""}, rows(items)[0])

	out := Render("", items)
	assert.Equal(t, 1, strings.Count(out, model.ErrorItemName))
	assert.Contains(t, out, "Description")
}

func TestItemTableHasOneLinePerRow(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	items := []model.Item{item(10, "alpha", "x"), item(11, "beta", "y"), item(12, "gamma", "z")}
	out := ItemTable(items)
	for _, it := range items {
		n := 0
		for _, l := range strings.Split(out, "\n") {
			if strings.Contains(l, it.Name.String()) {
				n++
				assert.Contains(t, l, it.ID.String())
				assert.Contains(t, l, it.Description.String())
			}
		}
		assert.Equal(t, 1, n, it.Name.String())
	}
}

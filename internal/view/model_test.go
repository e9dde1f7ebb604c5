package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/itemdash/internal/model"
	"github.com/idilsaglam/itemdash/internal/ui"
)

// fakeBackend answers from queued results; the last one repeats.
type fakeBackend struct {
	health    []string
	healthErr error
	items     [][]model.Item
	itemsErr  error
	calls     int
}

func (f *fakeBackend) Health(context.Context) (string, error) {
	if f.healthErr != nil {
		return "", f.healthErr
	}
	i := min(f.calls, len(f.health)-1)
	f.calls++
	return f.health[i], nil
}

func (f *fakeBackend) Items(context.Context) ([]model.Item, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	i := min(f.calls, len(f.items)-1)
	f.calls++
	return f.items[i], nil
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(Model), cmd
}

func apply(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func item(id int64, name, desc string) model.Item {
	return model.Item{ID: model.Number(id), Name: model.Text(name), Description: model.Text(desc)}
}

func TestInitialState(t *testing.T) {
	m := New(context.Background(), &fakeBackend{})
	assert.Equal(t, "", m.Health())
	assert.Empty(t, m.Items())
	assert.Nil(t, m.Init())
	assert.NotContains(t, m.View(), "Description")
}

func TestCheckHealthSetsBodyVerbatim(t *testing.T) {
	m := New(context.Background(), &fakeBackend{health: []string{"OK\n"}})
	m, cmd := press(t, m, "h")
	m = apply(t, m, cmd)
	assert.Equal(t, "OK\n", m.Health())
	assert.Empty(t, m.Items())
}

func TestCheckHealthFailureUsesFallback(t *testing.T) {
	for _, cause := range []error{errors.New("connection refused"), errors.New("read: unexpected EOF")} {
		m := New(context.Background(), &fakeBackend{healthErr: cause})
		m, cmd := press(t, m, "h")
		m = apply(t, m, cmd)
		assert.Equal(t, HealthFallback, m.Health())
	}
}

func TestGetItemsReplacesList(t *testing.T) {
	first := []model.Item{item(1, "Widget", "A widget"), item(2, "Gadget", "")}
	second := []model.Item{item(3, "Doohickey", "")}
	m := New(context.Background(), &fakeBackend{items: [][]model.Item{first, second}})

	m, cmd := press(t, m, "i")
	m = apply(t, m, cmd)
	assert.Equal(t, first, m.Items())

	m, cmd = press(t, m, "i")
	m = apply(t, m, cmd)
	assert.Equal(t, second, m.Items())
	assert.Equal(t, "", m.Health())
}

func TestGetItemsIsIdempotent(t *testing.T) {
	list := []model.Item{item(1, "Widget", "A widget"), item(2, "Gadget", "")}
	m := New(context.Background(), &fakeBackend{items: [][]model.Item{list}})

	m, cmd := press(t, m, "i")
	m = apply(t, m, cmd)
	once := m.Items()

	m, cmd = press(t, m, "i")
	m = apply(t, m, cmd)
	assert.Equal(t, once, m.Items())
	assert.Len(t, m.Items(), 2)
}

func TestGetItemsFailureShowsSentinel(t *testing.T) {
	backend := &fakeBackend{items: [][]model.Item{{item(1, "Widget", ""), item(2, "Gadget", "")}}}
	m := New(context.Background(), backend)
	m, cmd := press(t, m, "i")
	m = apply(t, m, cmd)
	require.Len(t, m.Items(), 2)

	backend.itemsErr = errors.New("boom")
	m, cmd = press(t, m, "i")
	m = apply(t, m, cmd)

	require.Len(t, m.Items(), 1)
	assert.Equal(t, "0", m.Items()[0].ID.String())
	assert.Equal(t, model.ErrorItemName, m.Items()[0].Name.String())
}

func TestStaleResultsAreDropped(t *testing.T) {
	m := New(context.Background(), &fakeBackend{health: []string{"first", "second"}})

	m, older := press(t, m, "h")
	m, newer := press(t, m, "h")
	olderMsg, newerMsg := older(), newer()

	// newer resolves first, older arrives late
	next, _ := m.Update(newerMsg)
	m = next.(Model)
	next, _ = m.Update(olderMsg)
	m = next.(Model)

	assert.Equal(t, "second", m.Health())
}

func TestStaleItemsAreDropped(t *testing.T) {
	a := []model.Item{item(1, "old", "")}
	b := []model.Item{item(2, "new", "")}
	m := New(context.Background(), &fakeBackend{items: [][]model.Item{a, b}})

	m, older := press(t, m, "i")
	m, newer := press(t, m, "i")
	olderMsg, newerMsg := older(), newer()

	next, _ := m.Update(newerMsg)
	m = next.(Model)
	next, _ = m.Update(olderMsg)
	m = next.(Model)

	assert.Equal(t, b, m.Items())
}

func TestQuitAndHelpKeys(t *testing.T) {
	m := New(context.Background(), &fakeBackend{})

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m, cmd = press(t, m, "?")
	assert.Nil(t, cmd)
	assert.True(t, m.help.ShowAll)
}

func TestViewShowsTableOnlyWithItems(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	m := New(context.Background(), &fakeBackend{items: [][]model.Item{{item(5, "Sprocket", "Toothed")}}})
	before := m.View()
	assert.Contains(t, before, healthLabel)
	assert.NotContains(t, before, "Sprocket")

	m, cmd := press(t, m, "i")
	m = apply(t, m, cmd)
	after := m.View()
	assert.Contains(t, after, "Sprocket")
	assert.Contains(t, after, "Toothed")
	assert.True(t, strings.Index(after, "ID") < strings.Index(after, "Description"))
}

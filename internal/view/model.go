package view

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/itemdash/internal/model"
	"github.com/idilsaglam/itemdash/internal/ui"
)

// HealthFallback replaces the status when a health check fails for any reason.
const HealthFallback = "Error connecting to backend"

// Fetcher is the backend the dashboard reads from.
type Fetcher interface {
	Health(ctx context.Context) (string, error)
	Items(ctx context.Context) ([]model.Item, error)
}

// CheckHealth runs one health check and returns the status to display.
// On failure the status is HealthFallback and err says why.
func CheckHealth(ctx context.Context, f Fetcher) (string, error) {
	status, err := f.Health(ctx)
	if err != nil {
		log.Printf("health check failed: %v", err)
		return HealthFallback, err
	}
	return status, nil
}

// GetItems fetches the listing and returns the list to display.
// On failure the list is the single sentinel error item.
func GetItems(ctx context.Context, f Fetcher) ([]model.Item, error) {
	items, err := f.Items(ctx)
	if err != nil {
		log.Printf("items fetch failed: %v", err)
		return []model.Item{model.ErrorItem()}, err
	}
	return items, nil
}

// healthMsg and itemsMsg carry a finished request back into Update.
// seq is the request's issue number for its action.
type healthMsg struct {
	seq    int
	status string
}

type itemsMsg struct {
	seq   int
	items []model.Item
}

// Model is the interactive dashboard.
//
// Each action numbers its requests. In-flight requests are never cancelled,
// but a result is only applied if it belongs to the most recently issued
// request of its kind, so a slow older response cannot overwrite a newer one.
type Model struct {
	ctx    context.Context
	client Fetcher

	health string
	items  []model.Item

	healthSeq int
	itemsSeq  int

	keys keyMap
	help help.Model
}

func New(ctx context.Context, client Fetcher) Model {
	return Model{
		ctx:    ctx,
		client: client,
		keys:   defaultKeys(),
		help:   help.New(),
	}
}

func (m Model) Health() string      { return m.health }
func (m Model) Items() []model.Item { return m.items }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Health):
			m.healthSeq++
			return m, m.checkHealth(m.healthSeq)
		case key.Matches(msg, m.keys.Items):
			m.itemsSeq++
			return m, m.getItems(m.itemsSeq)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case healthMsg:
		if msg.seq != m.healthSeq {
			log.Printf("dropping stale health result %d (latest %d)", msg.seq, m.healthSeq)
			return m, nil
		}
		m.health = msg.status
		return m, nil

	case itemsMsg:
		if msg.seq != m.itemsSeq {
			log.Printf("dropping stale items result %d (latest %d)", msg.seq, m.itemsSeq)
			return m, nil
		}
		m.items = msg.items
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	return ui.PanelString(Render(m.health, m.items), "", m.help.View(m.keys))
}

func (m Model) checkHealth(seq int) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		status, _ := CheckHealth(ctx, client)
		return healthMsg{seq: seq, status: status}
	}
}

func (m Model) getItems(seq int) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		items, _ := GetItems(ctx, client)
		return itemsMsg{seq: seq, items: items}
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Button lipgloss.Style
	Header, Cell                                 lipgloss.Style
	Border                                       lipgloss.Border
	BorderColor                                  lipgloss.TerminalColor
	SymOK, SymFail, Rule                         string
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Button:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Padding(0, 1),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Padding(0, 1),
			Cell:        lipgloss.NewStyle().Padding(0, 1),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔",
			SymFail:     "✖",
			Rule:        "─",
		}
	case "mono":
		current = Theme{
			Title:       lipgloss.NewStyle(),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle(),
			Success:     lipgloss.NewStyle(),
			Error:       lipgloss.NewStyle(),
			Button:      lipgloss.NewStyle(),
			Header:      lipgloss.NewStyle().Padding(0, 1),
			Cell:        lipgloss.NewStyle().Padding(0, 1),
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok",
			SymFail:     "error:",
			Rule:        "-",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Button:      lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		Header:      lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔",
		SymFail:     "✖",
		Rule:        "─",
	}
}

// Expose what renderers need
func Current() Theme { return current }

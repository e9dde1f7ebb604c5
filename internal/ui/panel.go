package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames lines in a bordered box using the current theme.
func PanelString(lines ...string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box to stdout.
func Panel(lines []string) {
	fmt.Println(PanelString(lines...))
}

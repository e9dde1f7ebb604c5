package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides lipgloss' terminal detection. disable wins.
// With neither set the detected profile is left alone.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string) {
	t := Current()
	fmt.Println(t.Success.Render(t.SymOK + " " + msg))
}

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(os.Stderr, t.Error.Render(t.SymFail+" "+msg))
}

// Package term decides whether output is colored and owns the lipgloss
// styles shared by logging and display.
//
// [Configure] runs once during startup. While colors are off, [Paint]
// returns its input untouched, so callers never branch on the mode.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/srinivassivaratri/namemate/internal/config"
)

var enabled bool

// Shared styles. Colors are ANSI palette indexes.
var (
	Info      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Success   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Warn      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Error     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Debug     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Accent    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Heading   = lipgloss.NewStyle().Bold(true).Underline(true)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Faint     = lipgloss.NewStyle().Faint(true)
)

// Configure resolves mode and pins the lipgloss color profile to match, so
// --color=always survives a pipe and --color=never yields plain text.
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Enabled reports whether colors are active.
func Enabled() bool { return enabled }

// Paint renders s with st, or returns s as is when colors are off.
func Paint(st lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return st.Render(s)
}

// resolve applies the mode; auto needs a terminal on stdout, an unset
// NO_COLOR (https://no-color.org) and a TERM other than "dumb".
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			!strings.EqualFold(os.Getenv("TERM"), "dumb")
	}
}

// IsTerminal reports whether f is a terminal, Cygwin and MSYS ptys included.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

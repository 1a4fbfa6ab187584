// Package style holds the lipgloss styles for devup's terminal output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a2e", Dark: "#e0e0ff"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#cccccc"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#22863a", Dark: "#56d364"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#cb2431", Dark: "#f85149"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#b08800", Dark: "#e3b341"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#032f62", Dark: "#79c0ff"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// IsTerminal reports whether stdout is a terminal. Styled rendering is
// skipped for pipes and files.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render applies the style only when stdout is a terminal.
func Render(s lipgloss.Style, text string) string {
	if !IsTerminal() {
		return text
	}
	return s.Render(text)
}

package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/amonks/td/todo"
)

var (
	idStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	highStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	lowStyle       = lipgloss.NewStyle().Faint(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	headingStyle   = lipgloss.NewStyle().Bold(true)
)

// ColorEnabled reports whether stdout should receive ANSI styling.
var ColorEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, value string) string {
	if !ColorEnabled() {
		return value
	}
	return style.Render(value)
}

// HighlightID renders a todo ID.
func HighlightID(id int) string {
	return render(idStyle, strconv.Itoa(id))
}

// PriorityLabel renders a priority name, emphasizing high and dimming low.
func PriorityLabel(priority todo.Priority) string {
	switch priority {
	case todo.PriorityHigh:
		return render(highStyle, priority.String())
	case todo.PriorityLow:
		return render(lowStyle, priority.String())
	default:
		return priority.String()
	}
}

// StatusLabel renders a status name.
func StatusLabel(status todo.Status) string {
	if status == todo.StatusCompleted {
		return render(completedStyle, status.String())
	}
	return status.String()
}

// Heading renders a section heading.
func Heading(value string) string {
	return render(headingStyle, value)
}

package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the terminal styling for text reports. The zero value via
// PlainStyles renders everything unstyled, for --no-color and piped output.
type Styles struct {
	Header    lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style
	Warn      lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true),
		Separator: lipgloss.NewStyle().Faint(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:    plain,
		Separator: plain,
		Label:     plain,
		Good:      plain,
		Bad:       plain,
		Warn:      plain,
	}
}

// Status renders a job status string in a severity color.
func (s Styles) Status(status string) string {
	switch strings.ToUpper(status) {
	case "SUCCESS", "SU":
		return s.Good.Render(status)
	case "FAILURE", "FA", "TERMINATED", "TE":
		return s.Bad.Render(status)
	case "RUNNING", "RU", "STARTING", "ST":
		return s.Warn.Render(status)
	default:
		return status
	}
}

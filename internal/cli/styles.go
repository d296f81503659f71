package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weekgrid/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	categoryColors = map[models.Category]lipgloss.Color{
		models.CategoryWork:      lipgloss.Color("33"),
		models.CategoryGrowth:    lipgloss.Color("42"),
		models.CategoryMandatory: lipgloss.Color("244"),
		models.CategoryRest:      lipgloss.Color("141"),
		models.CategoryPersonal:  lipgloss.Color("214"),
	}
)

// Heading renders a section title.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Label renders a dimmed field label.
func Label(s string) string {
	return labelStyle.Render(s)
}

// Good renders a positive outcome.
func Good(s string) string {
	return goodStyle.Render(s)
}

// Warning renders a soft warning.
func Warning(s string) string {
	return warningStyle.Render(s)
}

// Danger renders a failure.
func Danger(s string) string {
	return dangerStyle.Render(s)
}

// Bar renders value/max as a horizontal bar of at most width cells in the
// category's color.
func Bar(c models.Category, value, max float64, width int) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	style := lipgloss.NewStyle()
	if color, ok := categoryColors[c]; ok {
		style = style.Foreground(color)
	}
	return style.Render(strings.Repeat("█", n))
}

// CategoryCell renders a one-letter category code in its color; blank when untracked.
func CategoryCell(c models.Category) string {
	if c == "" {
		return "·"
	}
	color, ok := categoryColors[c]
	if !ok {
		return string(c)
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(c))
}

package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Warning renders a non-fatal problem the user should know about.
func Warning(msg string) string {
	return StyleYellow.Render("! " + msg)
}

// Error renders a failed action.
func Error(msg string) string {
	return StyleRed.Render("✖ " + msg)
}

// Success renders a completed action.
func Success(msg string) string {
	return StyleGreen.Render("✔ " + msg)
}

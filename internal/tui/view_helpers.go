package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("f1: about │ ctrl+c: quit"))

	return b.String()
}

// formRow renders one "label │ input" line of a form.
func formRow(label, input string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return marker + padRight(label, 10) + "│ " + input
}

func padRight(v string, width int) string {
	if n := len([]rune(v)); n < width {
		return v + strings.Repeat(" ", width-n)
	}
	return v
}

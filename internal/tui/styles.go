package tui

import (
	"strconv"

	"github.com/MKhiriev/go-master-password/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	passwordStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// identiconStyle colors an identicon with the ANSI color of the same index.
func identiconStyle(c models.IdenticonColor) lipgloss.Style {
	if !c.Valid() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(strconv.Itoa(int(c))))
}

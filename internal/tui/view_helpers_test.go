package tui

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-master-password/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "enter: go")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "enter: go")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestRenderPage_EmptyData(t *testing.T) {
	page := renderPage("TITLE", "  ", "")

	assert.Contains(t, page, "  -\n")
}

func TestFormRow(t *testing.T) {
	assert.Equal(t, "> Site      │ value", formRow("Site", "value", true))
	assert.Equal(t, "  Password  │ value", formRow("Password", "value", false))
}

func TestPadRight_CountsRunes(t *testing.T) {
	assert.Equal(t, "Имя   ", padRight("Имя", 6))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestRenderIdenticon(t *testing.T) {
	icon := models.Identicon{LeftArm: "╔", Body: "█", RightArm: "╗", Accessory: "◈", Color: models.ColorRed}

	assert.Equal(t, "-", renderIdenticon(icon, false))
	assert.True(t, strings.Contains(renderIdenticon(icon, true), "╔█╗◈"))
}

func TestRenderBuildInfoWindow(t *testing.T) {
	view := renderBuildInfoWindow(models.NewAppBuildInfo("v1.0.0", "", "abc"))

	assert.Contains(t, view, "Version: v1.0.0")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Commit: abc")
}

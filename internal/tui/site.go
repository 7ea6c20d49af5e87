package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-master-password/internal/app"
	"github.com/MKhiriev/go-master-password/internal/template"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputSite = iota
	inputCounter
	inputTemplate
)

// siteModel is the form selecting the password to generate.
type siteModel struct {
	inputs []textinput.Model
	focus  int
}

func newSiteModel(site models.Site) siteModel {
	siteInput := textinput.New()
	siteInput.Placeholder = "example.com"
	siteInput.CharLimit = 256
	siteInput.Width = 40
	siteInput.SetValue(site.Name)

	counter := site.Counter
	if counter == 0 {
		counter = models.DefaultCounter
	}
	counterInput := textinput.New()
	counterInput.Placeholder = "1"
	counterInput.CharLimit = 10
	counterInput.Width = 12
	counterInput.SetValue(strconv.FormatUint(uint64(counter), 10))

	tmpl := site.Template
	if tmpl == "" {
		tmpl = template.TierLong.String()
	}
	templateInput := textinput.New()
	templateInput.Placeholder = "long"
	templateInput.CharLimit = 10
	templateInput.Width = 12
	templateInput.SetValue(tmpl)

	return siteModel{inputs: []textinput.Model{siteInput, counterInput, templateInput}}
}

func (s *siteModel) init() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.focus = inputSite
	return tea.Batch(s.inputs[s.focus].Focus(), textinput.Blink)
}

func (s *siteModel) focusNext() {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + 1) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *siteModel) focusPrev() {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus - 1 + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *siteModel) name() string {
	return strings.TrimSpace(s.inputs[inputSite].Value())
}

// fill replaces counter and template with those of site.
func (s *siteModel) fill(site models.Site) {
	s.inputs[inputCounter].SetValue(strconv.FormatUint(uint64(site.Counter), 10))
	s.inputs[inputTemplate].SetValue(site.Template)
}

// parse validates the form into a site. The returned string is a user
// message when the form is invalid.
func (s *siteModel) parse() (models.Site, string) {
	name := s.name()
	if name == "" {
		return models.Site{}, app.MsgSiteRequired
	}

	counter, err := strconv.ParseUint(strings.TrimSpace(s.inputs[inputCounter].Value()), 10, 32)
	if err != nil || counter == 0 {
		return models.Site{}, app.MsgInvalidCounter
	}

	tier, err := template.ParseTier(strings.TrimSpace(s.inputs[inputTemplate].Value()))
	if err != nil {
		return models.Site{}, app.MsgInvalidTemplate
	}

	return models.Site{Name: name, Counter: uint32(counter), Template: tier.String()}, ""
}

// Update of the site screen. Handled keys:
//   - tab / shift+tab — moves focus between the inputs.
//   - enter           — validates the form and generates the password.
//   - ctrl+y          — copies the last password to the clipboard.
//   - ctrl+r          — shows or hides the last password.
//   - ctrl+d          — forgets the stored profile of the site.
//   - esc / ctrl+l    — locks the session.
//
// Leaving the site input with tab looks up the stored profile of the site.
func (m *Model) updateSite(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.lock):
			return m.lock()
		case key.Matches(keyMsg, keys.tab):
			leaving := m.site.focus == inputSite
			m.site.focusNext()
			if name := m.site.name(); leaving && name != "" {
				return m, m.cmdRecall(name)
			}
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.site.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			if m.password == nil {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.password)
		case key.Matches(keyMsg, keys.reveal):
			m.revealed = !m.revealed
			return m, nil
		case key.Matches(keyMsg, keys.forget):
			name := m.site.name()
			if name == "" {
				m.errMsg = app.MsgSiteRequired
				return m, nil
			}
			return m, m.cmdForget(name)
		case key.Matches(keyMsg, keys.enter):
			site, problem := m.site.parse()
			if problem != "" {
				m.errMsg = problem
				return m, nil
			}
			m.errMsg = ""
			return m, m.cmdGenerate(site)
		}
	}

	var cmd tea.Cmd
	m.site.inputs[m.site.focus], cmd = m.site.inputs[m.site.focus].Update(msg)
	return m, cmd
}

func (m *Model) viewSite() string {
	var b strings.Builder

	b.WriteString(formRow("User", m.userName, false))
	b.WriteString("\n\n")
	b.WriteString(formRow("Site", m.site.inputs[inputSite].View(), m.site.focus == inputSite))
	b.WriteString("\n")
	b.WriteString(formRow("Counter", m.site.inputs[inputCounter].View(), m.site.focus == inputCounter))
	b.WriteString("\n")
	b.WriteString(formRow("Template", m.site.inputs[inputTemplate].View(), m.site.focus == inputTemplate))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		names := make([]string, 0, len(m.recent))
		for _, p := range m.recent {
			names = append(names, p.Name)
		}
		b.WriteString("\n")
		b.WriteString(formRow("Recent", helpStyle.Render(strings.Join(names, ", ")), false))
		b.WriteString("\n")
	}

	if m.password != nil {
		b.WriteString("\n")
		if m.revealed {
			b.WriteString(passwordStyle.Render(string(m.password.Expose())))
		} else {
			b.WriteString(passwordStyle.Render(strings.Repeat("*", m.password.Len())))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SITE PASSWORD", strings.TrimRight(b.String(), "\n"),
		"enter: generate │ ctrl+y: copy │ ctrl+r: show/hide │ ctrl+d: forget │ esc: lock")
}

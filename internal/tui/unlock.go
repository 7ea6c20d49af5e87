package tui

import (
	"strings"

	"github.com/MKhiriev/go-master-password/internal/app"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputName = iota
	inputMasterPassword
)

// unlockModel is the form asking for the user name and master password.
type unlockModel struct {
	inputs    []textinput.Model
	focus     int
	identicon models.Identicon
	hasIcon   bool
}

func newUnlockModel(userName string) unlockModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.SetValue(userName)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := unlockModel{inputs: []textinput.Model{nameInput, passwordInput}}
	if userName != "" {
		m.focus = inputMasterPassword
	}
	return m
}

func (u *unlockModel) init() tea.Cmd {
	for i := range u.inputs {
		u.inputs[i].Blur()
	}
	return tea.Batch(u.inputs[u.focus].Focus(), textinput.Blink)
}

func (u *unlockModel) focusNext() {
	u.inputs[u.focus].Blur()
	u.focus = (u.focus + 1) % len(u.inputs)
	u.inputs[u.focus].Focus()
}

func (u *unlockModel) focusPrev() {
	u.inputs[u.focus].Blur()
	u.focus = (u.focus - 1 + len(u.inputs)) % len(u.inputs)
	u.inputs[u.focus].Focus()
}

// Update of the unlock screen. Handled keys:
//   - tab / shift+tab — moves focus between the inputs.
//   - enter           — on the name input moves focus, on the password
//     input validates and submits the derivation to the key worker.
//
// Everything else goes to the focused input; the identicon is refreshed
// after every edit.
func (m *Model) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.deriving {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.unlock.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.unlock.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.unlock.focus == inputName {
				m.unlock.focusNext()
				return m, nil
			}
			return m.submitUnlock()
		}
	}
	if m.deriving {
		return m, nil
	}

	var cmd tea.Cmd
	m.unlock.inputs[m.unlock.focus], cmd = m.unlock.inputs[m.unlock.focus].Update(msg)
	m.refreshIdenticon()
	return m, cmd
}

func (m *Model) submitUnlock() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.unlock.inputs[inputName].Value())
	if name == "" {
		m.errMsg = app.MsgNameRequired
		return m, nil
	}
	if m.unlock.inputs[inputMasterPassword].Value() == "" {
		m.errMsg = app.MsgPasswordRequired
		return m, nil
	}

	password := secret.FromString(m.unlock.inputs[inputMasterPassword].Value())
	m.unlock.inputs[inputMasterPassword].Reset()

	m.errMsg = ""
	m.userName = name
	m.deriving = true
	return m, tea.Batch(m.spinner.Tick, m.cmdDeriveKey(password, name))
}

// refreshIdenticon recomputes the identicon of the current inputs. The
// computation is one HMAC, cheap enough for every keystroke.
func (m *Model) refreshIdenticon() {
	m.unlock.hasIcon = false
	if !m.opts.Identicon {
		return
	}

	name := strings.TrimSpace(m.unlock.inputs[inputName].Value())
	value := m.unlock.inputs[inputMasterPassword].Value()
	if name == "" || value == "" {
		return
	}

	password := secret.FromString(value)
	defer password.Destroy()

	icon, err := m.passwords.Identicon(m.ctx, password, name)
	if err != nil {
		return
	}
	m.unlock.identicon = icon
	m.unlock.hasIcon = true
}

func (m *Model) viewUnlock() string {
	var b strings.Builder

	b.WriteString(formRow("Name", m.unlock.inputs[inputName].View(), m.unlock.focus == inputName))
	b.WriteString("\n")
	b.WriteString(formRow("Password", m.unlock.inputs[inputMasterPassword].View(), m.unlock.focus == inputMasterPassword))
	b.WriteString("\n")

	if m.opts.Identicon {
		b.WriteString(formRow("Identicon", renderIdenticon(m.unlock.identicon, m.unlock.hasIcon), false))
		b.WriteString("\n")
	}

	if m.deriving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(app.MsgDerivingKey)
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

	return renderPage("MASTER PASSWORD", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: unlock")
}

func renderIdenticon(icon models.Identicon, ok bool) string {
	if !ok {
		return "-"
	}
	return identiconStyle(icon.Color).Render(icon.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-master-password/internal/app"
	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenUnlock screen = iota
	screenSite
)

// recentLimit is how many remembered sites the site screen lists.
const recentLimit = 5

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// Model is the root Bubble Tea model of the generator. It owns the master
// key of the session and the last generated password; call Close when the
// program has finished to destroy both.
type Model struct {
	ctx       context.Context
	passwords service.PasswordService
	sites     service.SiteService
	keys      KeySubmitter
	buildInfo models.AppBuildInfo
	opts      Options

	currentScreen screen
	unlock        unlockModel
	site          siteModel
	spinner       spinner.Model

	deriving  bool
	userName  string
	masterKey *crypto.MasterKey
	password  *secret.Bytes
	revealed  bool
	recent    []models.SiteProfile

	status        string
	errMsg        string
	showBuildInfo bool
	quitByUser    bool
}

// NewModel creates the model on the unlock screen with forms prefilled from
// opts.
func NewModel(
	ctx context.Context,
	passwords service.PasswordService,
	sites service.SiteService,
	keys KeySubmitter,
	buildInfo models.AppBuildInfo,
	opts Options,
) *Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &Model{
		ctx:       ctx,
		passwords: passwords,
		sites:     sites,
		keys:      keys,
		buildInfo: buildInfo,
		opts:      opts,
		unlock:    newUnlockModel(opts.UserName),
		site:      newSiteModel(opts.Site),
		spinner:   s,
		revealed:  !opts.Clipboard,
	}
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("mpw"), m.unlock.init())
}

// Update implements [tea.Model]. Global keys are handled first, then async
// results, then the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.info):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case m.showBuildInfo && key.Matches(keyMsg, keys.esc):
			m.showBuildInfo = false
			return m, nil
		}
		if m.showBuildInfo {
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case keyDerivedMsg:
		return m.onKeyDerived(msg)
	case passwordMsg:
		return m.onPassword(msg)
	case copiedMsg:
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("%s: %v", app.MsgCopyFailed, msg.err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case recentSitesMsg:
		m.recent = msg.sites
		return m, nil
	case recalledSiteMsg:
		return m.onRecalledSite(msg)
	case forgottenMsg:
		return m.onForgotten(msg)
	case spinner.TickMsg:
		if !m.deriving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case screenSite:
		return m.updateSite(msg)
	default:
		return m.updateUnlock(msg)
	}
}

// View implements [tea.Model].
func (m *Model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	switch m.currentScreen {
	case screenSite:
		return m.viewSite()
	default:
		return m.viewUnlock()
	}
}

// Close destroys the session master key and the last password. It is
// idempotent.
func (m *Model) Close() {
	m.clearPassword()
	m.masterKey.Destroy()
	m.masterKey = nil
}

// QuitByUser reports whether the program ended on the quit key.
func (m *Model) QuitByUser() bool {
	return m.quitByUser
}

func (m *Model) onKeyDerived(msg keyDerivedMsg) (tea.Model, tea.Cmd) {
	m.deriving = false
	if msg.res.Err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", app.MsgKeyDerivationFailed, msg.res.Err)
		return m, nil
	}

	m.masterKey.Destroy()
	m.masterKey = msg.res.Key
	m.errMsg = ""
	m.currentScreen = screenSite
	return m, tea.Batch(m.site.init(), m.cmdLoadRecent())
}

func (m *Model) onPassword(msg passwordMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", app.MsgGenerationFailed, msg.err)
		return m, nil
	}

	m.clearPassword()
	m.password = msg.password
	m.errMsg = ""
	if m.opts.Clipboard {
		return m, tea.Batch(cmdCopyToClipboard(m.password), m.cmdLoadRecent())
	}
	return m, m.cmdLoadRecent()
}

// onRecalledSite fills counter and template from the stored profile, unless
// the user has moved on to another site meanwhile.
func (m *Model) onRecalledSite(msg recalledSiteMsg) (tea.Model, tea.Cmd) {
	if !msg.ok || m.currentScreen != screenSite || m.site.name() != msg.name {
		return m, nil
	}

	m.site.fill(msg.site)
	m.status = app.MsgRecalled
	return m, cmdClearStatus()
}

func (m *Model) onForgotten(msg forgottenMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, service.ErrSiteNotFound):
		m.status = app.MsgNotStored
	case msg.err != nil:
		m.errMsg = fmt.Sprintf("%s: %v", app.MsgForgetFailed, msg.err)
		return m, nil
	default:
		m.status = app.MsgForgotten
	}
	return m, tea.Batch(cmdClearStatus(), m.cmdLoadRecent())
}

// lock forgets the master key and returns to the unlock screen.
func (m *Model) lock() (tea.Model, tea.Cmd) {
	m.Close()
	m.recent = nil
	m.revealed = !m.opts.Clipboard
	m.currentScreen = screenUnlock
	m.status = app.MsgLocked
	m.errMsg = ""
	return m, tea.Batch(m.unlock.init(), cmdClearStatus())
}

func (m *Model) clearPassword() {
	m.password.Destroy()
	m.password = nil
}

func (m *Model) cmdDeriveKey(password *secret.Bytes, userName string) tea.Cmd {
	ctx := m.ctx
	submitter := m.keys

	return func() tea.Msg {
		return keyDerivedMsg{res: <-submitter.Submit(ctx, password, userName)}
	}
}

// cmdGenerate runs on a clone of the master key so that locking the session
// never races the command. The site is remembered once the password is
// ready; failing to remember it only gets logged.
func (m *Model) cmdGenerate(site models.Site) tea.Cmd {
	ctx := m.ctx
	svc := m.passwords
	sites := m.sites
	userName := m.userName
	masterKey := m.masterKey.Clone()

	return func() tea.Msg {
		defer masterKey.Destroy()

		pw, err := svc.SitePassword(ctx, masterKey, site)
		if err != nil {
			return passwordMsg{err: err}
		}

		if err = sites.Remember(ctx, userName, site); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("site", site.Name).Msg("site profile not saved")
		}
		return passwordMsg{password: pw}
	}
}

func (m *Model) cmdLoadRecent() tea.Cmd {
	ctx := m.ctx
	sites := m.sites
	userName := m.userName

	return func() tea.Msg {
		profiles, err := sites.Recent(ctx, userName, recentLimit)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("recent sites not loaded")
		}
		return recentSitesMsg{sites: profiles}
	}
}

func (m *Model) cmdRecall(name string) tea.Cmd {
	ctx := m.ctx
	sites := m.sites
	userName := m.userName

	return func() tea.Msg {
		site, ok, err := sites.Recall(ctx, userName, name)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("site", name).Msg("site profile not loaded")
		}
		return recalledSiteMsg{name: name, site: site, ok: ok && err == nil}
	}
}

func (m *Model) cmdForget(name string) tea.Cmd {
	ctx := m.ctx
	sites := m.sites
	userName := m.userName

	return func() tea.Msg {
		return forgottenMsg{name: name, err: sites.Forget(ctx, userName, name)}
	}
}

// cmdCopyToClipboard copies password as it is now. The clipboard only takes
// strings, so one unlocked copy is unavoidable.
func cmdCopyToClipboard(password *secret.Bytes) tea.Cmd {
	text := string(password.Expose())

	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

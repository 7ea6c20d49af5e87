package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/mock"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/template"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePrompter struct {
	lines    []string
	password string
	err      error

	asked   []string
	secrets []*secret.Bytes
}

func (p *fakePrompter) ReadLine(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if p.err != nil {
		return "", p.err
	}
	if len(p.lines) == 0 {
		return "", nil
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *fakePrompter) ReadSecret(prompt string) (*secret.Bytes, error) {
	p.asked = append(p.asked, prompt)
	if p.err != nil {
		return nil, p.err
	}
	s := secret.FromString(p.password)
	p.secrets = append(p.secrets, s)
	return s, nil
}

type fakeUI struct {
	runs int
	err  error
}

func (u *fakeUI) Run(context.Context) error {
	u.runs++
	return u.err
}

type fakeWorker struct {
	events *[]string
}

func (w fakeWorker) Run(context.Context) { *w.events = append(*w.events, "run") }
func (w fakeWorker) Stop()               { *w.events = append(*w.events, "stop") }

type appFixture struct {
	app       *App
	passwords *mock.MockPasswordService
	sites     *mock.MockSiteService
	prompter  *fakePrompter
	ui        *fakeUI
	out       *bytes.Buffer
	info      *bytes.Buffer
	events    []string
}

func newAppFixture(t *testing.T, cfg *config.ClientConfig) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		passwords: mock.NewMockPasswordService(ctrl),
		sites:     mock.NewMockSiteService(ctrl),
		prompter:  &fakePrompter{password: "hunter2"},
		ui:        &fakeUI{},
		out:       &bytes.Buffer{},
		info:      &bytes.Buffer{},
	}
	f.app = &App{
		cfg:      cfg,
		services: &service.Services{PasswordService: f.passwords, SiteService: f.sites},
		workers:  workers.NewWorkers(fakeWorker{events: &f.events}),
		ui:       f.ui,
		prompter: f.prompter,
		out:      f.out,
		info:     f.info,
		logger:   logger.Nop(),
	}
	return f
}

func oneShotConfig() *config.ClientConfig {
	return &config.ClientConfig{
		User: config.ClientUser{FullName: "UserName"},
		Site: config.ClientSite{Name: "test", Counter: 1, Tier: template.TierMaximum, CounterSet: true, TierSet: true},
	}
}

// allowRemember accepts any profile save.
func (f *appFixture) allowRemember() {
	f.sites.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &service.Services{}, nil, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&config.ClientConfig{}, nil, nil, nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&config.ClientConfig{}, &service.Services{}, nil, &fakeUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.prompter)
}

func TestApp_Run_InteractiveStartsWorkersAroundUI(t *testing.T) {
	f := newAppFixture(t, &config.ClientConfig{})

	require.NoError(t, f.app.Run(context.Background()))

	assert.Equal(t, 1, f.ui.runs)
	assert.Equal(t, []string{"run", "stop"}, f.events)
	assert.Empty(t, f.prompter.asked)
}

func TestApp_Run_InteractiveUIError(t *testing.T) {
	f := newAppFixture(t, &config.ClientConfig{})
	f.ui.err = errors.New("no tty")

	err := f.app.Run(context.Background())

	assert.EqualError(t, err, "no tty")
	assert.Equal(t, []string{"run", "stop"}, f.events, "workers are stopped on error too")
}

func TestApp_Run_OneShotPrintsPassword(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())
	f.allowRemember()

	f.passwords.EXPECT().
		Generate(gomock.Any(), gomock.Any(), "UserName", models.Site{Name: "test", Counter: 1, Template: "maximum"}).
		DoAndReturn(func(_ context.Context, pw *secret.Bytes, _ string, _ models.Site) (*secret.Bytes, error) {
			assert.Equal(t, "hunter2", string(pw.Expose()))
			return secret.FromString("e5:kl#V@0uAZ02xKUic5"), nil
		})

	require.NoError(t, f.app.Run(context.Background()))

	assert.Equal(t, "e5:kl#V@0uAZ02xKUic5\n", f.out.String())
	assert.Equal(t, []string{"Your master password: "}, f.prompter.asked)
	assert.Empty(t, f.events, "one-shot mode runs no workers")
	assert.Zero(t, f.ui.runs)
	require.Len(t, f.prompter.secrets, 1)
	assert.False(t, f.prompter.secrets[0].IsAlive(), "master password is destroyed")
}

func TestApp_Run_OneShotPromptsForName(t *testing.T) {
	cfg := oneShotConfig()
	cfg.User.FullName = ""
	f := newAppFixture(t, cfg)
	f.allowRemember()
	f.prompter.lines = []string{"  Cosima Niehaus "}

	f.passwords.EXPECT().
		Generate(gomock.Any(), gomock.Any(), "Cosima Niehaus", gomock.Any()).
		Return(secret.FromString("7404"), nil)

	require.NoError(t, f.app.Run(context.Background()))

	assert.Equal(t, []string{"Your full name: ", "Your master password: "}, f.prompter.asked)
	assert.Equal(t, "7404\n", f.out.String())
}

func TestApp_Run_OneShotEmptyName(t *testing.T) {
	cfg := oneShotConfig()
	cfg.User.FullName = ""
	f := newAppFixture(t, cfg)
	f.prompter.lines = []string{"   "}

	err := f.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Empty(t, f.out.String())
}

func TestApp_Run_OneShotEmptyPassword(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())
	f.prompter.password = ""

	err := f.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestApp_Run_OneShotPromptError(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())
	f.prompter.err = errors.New("stdin closed")

	err := f.app.Run(context.Background())

	assert.EqualError(t, err, "stdin closed")
}

func TestApp_Run_OneShotGenerateError(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())

	f.passwords.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidArgument)

	err := f.app.Run(context.Background())

	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"test"`)
	assert.Empty(t, f.out.String())
}

func TestApp_Run_OneShotIdenticon(t *testing.T) {
	cfg := oneShotConfig()
	cfg.UI.Identicon = true
	f := newAppFixture(t, cfg)
	f.allowRemember()

	icon := models.Identicon{LeftArm: "╔", Body: "░", RightArm: "╝", Accessory: "⌚", Color: models.ColorBlue}
	gomock.InOrder(
		f.passwords.EXPECT().Identicon(gomock.Any(), gomock.Any(), "UserName").Return(icon, nil),
		f.passwords.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(secret.FromString("pw"), nil),
	)

	require.NoError(t, f.app.Run(context.Background()))

	assert.Equal(t, "[ ╔░╝⌚ ] (blue)\n", f.info.String())
	assert.Equal(t, "pw\n", f.out.String())
}

func TestApp_Run_OneShotClipboard(t *testing.T) {
	var copied []string
	old := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	t.Cleanup(func() { clipboardWrite = old })

	cfg := oneShotConfig()
	cfg.UI.Clipboard = true
	f := newAppFixture(t, cfg)
	f.allowRemember()

	f.passwords.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(secret.FromString("Kiwe2^BecuRodw"), nil)

	require.NoError(t, f.app.Run(context.Background()))

	assert.Equal(t, []string{"Kiwe2^BecuRodw"}, copied)
	assert.Empty(t, f.out.String(), "the password is not printed when copied")
	assert.Contains(t, f.info.String(), "copied")
}

func TestApp_Run_OneShotClipboardError(t *testing.T) {
	old := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { clipboardWrite = old })

	cfg := oneShotConfig()
	cfg.UI.Clipboard = true
	f := newAppFixture(t, cfg)
	f.allowRemember()

	f.passwords.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(secret.FromString("pw"), nil)

	err := f.app.Run(context.Background())

	assert.ErrorContains(t, err, "no display")
}

func TestApp_Run_OneShotRemembersSite(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())
	want := models.Site{Name: "test", Counter: 1, Template: "maximum"}

	gomock.InOrder(
		f.passwords.EXPECT().Generate(gomock.Any(), gomock.Any(), "UserName", want).
			Return(secret.FromString("pw"), nil),
		f.sites.EXPECT().Remember(gomock.Any(), "UserName", want).Return(nil),
	)

	require.NoError(t, f.app.Run(context.Background()))
}

func TestApp_Run_OneShotRememberErrorIsNotFatal(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())

	f.passwords.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(secret.FromString("pw"), nil)
	f.sites.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database is locked"))

	require.NoError(t, f.app.Run(context.Background()))
	assert.Equal(t, "pw\n", f.out.String())
}

func TestApp_Run_OneShotNoRememberOnFailure(t *testing.T) {
	f := newAppFixture(t, oneShotConfig())

	f.passwords.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrCrypto)
	// no Remember expectation: a failed generation is not stored

	assert.ErrorIs(t, f.app.Run(context.Background()), models.ErrCrypto)
}

func TestApp_Run_OneShotRecallsDefaults(t *testing.T) {
	tests := []struct {
		name       string
		counterSet bool
		tierSet    bool
		want       models.Site
	}{
		{name: "nothing set", want: models.Site{Name: "test", Counter: 7, Template: "pin"}},
		{name: "counter set", counterSet: true, want: models.Site{Name: "test", Counter: 1, Template: "pin"}},
		{name: "template set", tierSet: true, want: models.Site{Name: "test", Counter: 7, Template: "maximum"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := oneShotConfig()
			cfg.Site.CounterSet = tt.counterSet
			cfg.Site.TierSet = tt.tierSet
			f := newAppFixture(t, cfg)
			f.allowRemember()

			f.sites.EXPECT().Recall(gomock.Any(), "UserName", "test").
				Return(models.Site{Name: "test", Counter: 7, Template: "pin"}, true, nil)
			f.passwords.EXPECT().Generate(gomock.Any(), gomock.Any(), "UserName", tt.want).
				Return(secret.FromString("pw"), nil)

			require.NoError(t, f.app.Run(context.Background()))
		})
	}
}

func TestApp_Run_OneShotRecallMissOrError(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		err  error
	}{
		{name: "not stored"},
		{name: "lookup error", err: errors.New("corrupt database")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := oneShotConfig()
			cfg.Site.CounterSet, cfg.Site.TierSet = false, false
			f := newAppFixture(t, cfg)
			f.allowRemember()

			f.sites.EXPECT().Recall(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.Site{}, tt.ok, tt.err)
			f.passwords.EXPECT().
				Generate(gomock.Any(), gomock.Any(), gomock.Any(), models.Site{Name: "test", Counter: 1, Template: "maximum"}).
				Return(secret.FromString("pw"), nil)

			require.NoError(t, f.app.Run(context.Background()))
		})
	}
}

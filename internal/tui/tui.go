package tui

import (
	"context"

	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
	tea "github.com/charmbracelet/bubbletea"
)

// KeySubmitter runs master key derivations off the UI goroutine.
// [workers.KeyWorker] implements it.
type KeySubmitter interface {
	Submit(ctx context.Context, password *secret.Bytes, userName string) <-chan workers.KeyResult
}

// Options prefill the forms and select front-end behavior.
type Options struct {
	UserName  string
	Site      models.Site
	Clipboard bool
	Identicon bool
}

type TUI struct {
	services *service.Services
	keys     KeySubmitter
	opts     Options
	logger   *logger.Logger
}

func New(services *service.Services, keys KeySubmitter, opts Options, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, keys: keys, opts: opts, logger: log}, nil
}

// Run shows the interactive generator until the user quits. Every secret
// the session held is destroyed before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	buildInfo := t.services.AppInfoService.GetBuildInfo(ctx)
	model := NewModel(ctx, t.services.PasswordService, t.services.SiteService, t.keys, buildInfo, t.opts)
	defer model.Close()

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped")
	}
	return err
}

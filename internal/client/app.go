// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/atotto/clipboard"
)

var (
	ErrNameRequired     = errors.New("user name is required")
	ErrPasswordRequired = errors.New("master password is required")
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	workers  *workers.Workers
	ui       UI
	prompter Prompter

	// out receives the generated password, info receives everything else.
	out    io.Writer
	info   io.Writer
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, services *service.Services, w *workers.Workers, ui UI, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil {
		return nil, errors.New("client app needs a config and services")
	}

	return &App{
		cfg:      cfg,
		services: services,
		workers:  w,
		ui:       ui,
		prompter: NewTerminalPrompter(os.Stdin, os.Stderr),
		out:      os.Stdout,
		info:     os.Stderr,
		logger:   log,
	}, nil
}

// Run generates a single password when the configuration names a site and
// starts the TUI otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if a.cfg.Site.Name != "" {
		return a.runOnce(ctx)
	}
	return a.runInteractive(ctx)
}

func (a *App) runInteractive(ctx context.Context) error {
	if a.ui == nil {
		return errors.New("no interactive ui configured")
	}
	if a.workers != nil {
		a.workers.Run(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("interactive session started")
	defer a.logger.Info().Msg("interactive session finished")

	return a.ui.Run(ctx)
}

func (a *App) runOnce(ctx context.Context) error {
	name := strings.TrimSpace(a.cfg.User.FullName)
	if name == "" {
		line, err := a.prompter.ReadLine("Your full name: ")
		if err != nil {
			return err
		}
		if name = strings.TrimSpace(line); name == "" {
			return ErrNameRequired
		}
	}

	password, err := a.prompter.ReadSecret("Your master password: ")
	if err != nil {
		return err
	}
	defer password.Destroy()
	if password.Len() == 0 {
		return ErrPasswordRequired
	}

	if a.cfg.UI.Identicon {
		icon, err := a.services.PasswordService.Identicon(ctx, password, name)
		if err != nil {
			return fmt.Errorf("identicon: %w", err)
		}
		fmt.Fprintf(a.info, "[ %s ] (%s)\n", icon, icon.Color)
	}

	site := a.resolveSite(ctx, name)
	sitePassword, err := a.services.PasswordService.Generate(ctx, password, name, site)
	if err != nil {
		return fmt.Errorf("generate password for %q: %w", site.Name, err)
	}
	defer sitePassword.Destroy()

	if err = a.services.SiteService.Remember(ctx, name, site); err != nil {
		a.logger.Warn().Err(err).Str("site", site.Name).Msg("site profile not saved")
	}

	if a.cfg.UI.Clipboard {
		if err = clipboardWrite(string(sitePassword.Expose())); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(a.info, "Password for %s copied to the clipboard.\n", site.Name)
		return nil
	}

	fmt.Fprintf(a.out, "%s\n", sitePassword.Expose())
	return nil
}

// resolveSite fills the counter and template left at their defaults from
// the stored profile of the site. Explicit settings always win.
func (a *App) resolveSite(ctx context.Context, userName string) models.Site {
	site := a.cfg.SiteModel()
	if a.cfg.Site.CounterSet && a.cfg.Site.TierSet {
		return site
	}

	stored, ok, err := a.services.SiteService.Recall(ctx, userName, site.Name)
	if err != nil {
		a.logger.Warn().Err(err).Str("site", site.Name).Msg("site profile not loaded")
		return site
	}
	if !ok {
		return site
	}

	if !a.cfg.Site.CounterSet {
		site.Counter = stored.Counter
	}
	if !a.cfg.Site.TierSet {
		site.Template = stored.Template
	}
	return site
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-master-password/internal/client"
	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/internal/tui"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mpw: %v\n", err)
		memguard.SafeExit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("mpw", cfg.Log.File, cfg.Log.Level)
	if cfg.Site.Name == "" {
		fmt.Fprint(os.Stderr, buildInfo)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewServices(buildInfo, storages, log)

	keyWorker := workers.NewKeyWorker(services.PasswordService)

	ui, err := tui.New(services, keyWorker, tui.Options{
		UserName:  cfg.User.FullName,
		Site:      cfg.SiteModel(),
		Clipboard: cfg.UI.Clipboard,
		Identicon: cfg.UI.Identicon,
	}, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(cfg, services, workers.NewWorkers(keyWorker), ui, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}

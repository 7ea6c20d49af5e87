package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/utils"
	"github.com/MKhiriev/go-master-password/models"
)

// PasswordLoggingService decorates a PasswordService with structured logs.
// Only non-secret fields are logged: user and site names, counters, tiers,
// job IDs, identicons and durations.
type PasswordLoggingService struct {
	inner  PasswordService
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewPasswordLoggingService returns a wrapper that falls back to log when
// the call context carries no logger of its own.
func NewPasswordLoggingService(log *logger.Logger) PasswordServiceWrapper {
	return &PasswordLoggingService{
		logger: log,
		ids:    utils.NewUUIDGenerator(),
	}
}

// Wrap implements [PasswordServiceWrapper].
func (l *PasswordLoggingService) Wrap(inner PasswordService) PasswordService {
	l.inner = inner
	return l
}

// jobLogger returns the logger for the job in ctx, assigning a job ID when
// the caller did not.
func (l *PasswordLoggingService) jobLogger(ctx context.Context) (context.Context, *logger.Logger) {
	jobID, ok := utils.GetJobIDFromContext(ctx)
	if !ok {
		jobID = l.ids.Generate()
		ctx = utils.WithJobID(ctx, jobID)
	}
	return ctx, l.logger.WithJob(jobID)
}

func (l *PasswordLoggingService) Identicon(ctx context.Context, password *secret.Bytes, userName string) (models.Identicon, error) {
	icon, err := l.inner.Identicon(ctx, password, userName)
	if err != nil {
		l.logger.Err(err).Str("user", userName).Msg("identicon derivation failed")
		return icon, err
	}
	return icon, nil
}

func (l *PasswordLoggingService) MasterKey(ctx context.Context, password *secret.Bytes, userName string) (*crypto.MasterKey, error) {
	ctx, log := l.jobLogger(ctx)
	started := time.Now()

	key, err := l.inner.MasterKey(ctx, password, userName)
	if err != nil {
		log.Err(err).Str("user", userName).Dur("elapsed", time.Since(started)).Msg("master key derivation failed")
		return nil, err
	}

	log.Debug().Str("user", userName).Dur("elapsed", time.Since(started)).Msg("master key derived")
	return key, nil
}

func (l *PasswordLoggingService) SitePassword(ctx context.Context, key *crypto.MasterKey, site models.Site) (*secret.Bytes, error) {
	ctx, log := l.jobLogger(ctx)

	password, err := l.inner.SitePassword(ctx, key, site)
	event := log.Debug()
	if err != nil {
		event = log.Err(err)
	}
	event.Str("site", site.Name).
		Uint32("counter", site.Counter).
		Str("template", site.Template).
		Msg("site password")

	return password, err
}

func (l *PasswordLoggingService) Generate(ctx context.Context, password *secret.Bytes, userName string, site models.Site) (*secret.Bytes, error) {
	ctx, log := l.jobLogger(ctx)
	started := time.Now()

	out, err := l.inner.Generate(ctx, password, userName, site)
	event := log.Info()
	if err != nil {
		event = log.Err(err)
	}
	event.Str("user", userName).
		Str("site", site.Name).
		Uint32("counter", site.Counter).
		Str("template", site.Template).
		Dur("elapsed", time.Since(started)).
		Msg("generate")

	return out, err
}

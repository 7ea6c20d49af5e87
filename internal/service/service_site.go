package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/internal/template"
	"github.com/MKhiriev/go-master-password/models"
)

type siteService struct {
	repo store.SiteProfileRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewSiteService builds a [SiteService] on top of repo. A nil repo means
// profiles are disabled: nothing is stored and nothing is recalled.
func NewSiteService(repo store.SiteProfileRepository, logger *logger.Logger) SiteService {
	if repo == nil {
		return disabledSiteService{}
	}
	return &siteService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *siteService) Remember(ctx context.Context, userName string, site models.Site) error {
	profile, err := newSiteProfile(userName, site, s.now())
	if err != nil {
		return err
	}

	if err = s.repo.SaveSite(ctx, profile); err != nil {
		return fmt.Errorf("remember site %q: %w", profile.Name, err)
	}

	logger.FromContext(ctx).Debug().
		Str("site", profile.Name).
		Uint32("counter", profile.Counter).
		Str("template", profile.Template).
		Msg("site profile saved")
	return nil
}

func (s *siteService) Recall(ctx context.Context, userName, siteName string) (models.Site, bool, error) {
	userName, siteName = strings.TrimSpace(userName), strings.TrimSpace(siteName)
	if userName == "" || siteName == "" {
		return models.Site{}, false, nil
	}

	profile, err := s.repo.GetSite(ctx, userName, siteName)
	if errors.Is(err, store.ErrSiteNotFound) {
		return models.Site{}, false, nil
	}
	if err != nil {
		return models.Site{}, false, fmt.Errorf("recall site %q: %w", siteName, err)
	}

	return profile.Site, true, nil
}

func (s *siteService) Recent(ctx context.Context, userName string, limit int) ([]models.SiteProfile, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, nil
	}
	if limit < 0 {
		limit = 0
	}

	profiles, err := s.repo.ListSites(ctx, userName, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return profiles, nil
}

func (s *siteService) Forget(ctx context.Context, userName, siteName string) error {
	userName, siteName = strings.TrimSpace(userName), strings.TrimSpace(siteName)
	if siteName == "" {
		return fmt.Errorf("%w: %w", ErrEmptySiteName, ErrInvalidArgument)
	}

	if err := s.repo.DeleteSite(ctx, userName, siteName); err != nil {
		return fmt.Errorf("forget site %q: %w", siteName, err)
	}

	logger.FromContext(ctx).Debug().Str("site", siteName).Msg("site profile deleted")
	return nil
}

// newSiteProfile validates site and normalizes its template to the tier
// name.
func newSiteProfile(userName string, site models.Site, at time.Time) (models.SiteProfile, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return models.SiteProfile{}, fmt.Errorf("%w: %w", ErrEmptyUserName, ErrInvalidArgument)
	}

	site.Name = strings.TrimSpace(site.Name)
	if site.Name == "" {
		return models.SiteProfile{}, fmt.Errorf("%w: %w", ErrEmptySiteName, ErrInvalidArgument)
	}
	if site.Counter == 0 {
		return models.SiteProfile{}, fmt.Errorf("counter must be at least 1: %w", ErrInvalidArgument)
	}

	tier, err := template.ParseTier(site.Template)
	if err != nil {
		return models.SiteProfile{}, err
	}
	site.Template = tier.String()

	return models.SiteProfile{UserName: userName, Site: site, LastUsed: at}, nil
}

// disabledSiteService is used when no profile database is configured.
type disabledSiteService struct{}

func (disabledSiteService) Remember(context.Context, string, models.Site) error { return nil }

func (disabledSiteService) Recall(context.Context, string, string) (models.Site, bool, error) {
	return models.Site{}, false, nil
}

func (disabledSiteService) Recent(context.Context, string, int) ([]models.SiteProfile, error) {
	return nil, nil
}

func (disabledSiteService) Forget(context.Context, string, string) error {
	return ErrSiteNotFound
}

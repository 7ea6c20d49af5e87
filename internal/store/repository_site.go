package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/models"
)

// siteProfileRepository is the SQLite-backed implementation of
// [SiteProfileRepository].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures are traced with the job fields of the caller.
type siteProfileRepository struct {
	*DB
	logger *logger.Logger
}

func NewSiteProfileRepository(db *DB, logger *logger.Logger) SiteProfileRepository {
	return &siteProfileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *siteProfileRepository) SaveSite(ctx context.Context, profile models.SiteProfile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSiteQuery(profile)
	if err != nil {
		log.Err(err).Str("func", "siteProfileRepository.SaveSite").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "siteProfileRepository.SaveSite").
			Str("site", profile.Name).
			Msg("failed to execute upsert for site profile")
		return fmt.Errorf("%w: save site profile %q: %w", ErrExecutingQuery, profile.Name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: save site profile %q: %w", ErrExecutingQuery, profile.Name, err)
	}
	if affected == 0 {
		return ErrSiteNotSaved
	}

	return nil
}

func (r *siteProfileRepository) GetSite(ctx context.Context, userName, siteName string) (models.SiteProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSiteQuery(userName, siteName)
	if err != nil {
		log.Err(err).Str("func", "siteProfileRepository.GetSite").Msg("failed to create query")
		return models.SiteProfile{}, err
	}

	profile, err := scanSiteProfile(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteProfile{}, ErrSiteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "siteProfileRepository.GetSite").
			Str("site", siteName).
			Msg("failed to scan site profile row")
		return models.SiteProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (r *siteProfileRepository) ListSites(ctx context.Context, userName string, limit uint64) ([]models.SiteProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSitesQuery(userName, limit)
	if err != nil {
		log.Err(err).Str("func", "siteProfileRepository.ListSites").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "siteProfileRepository.ListSites").
			Msg("failed to execute query for listing site profiles")
		return nil, fmt.Errorf("%w: list site profiles: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.SiteProfile
	for rows.Next() {
		profile, scanErr := scanSiteProfile(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "siteProfileRepository.ListSites").
				Msg("failed to scan site profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "siteProfileRepository.ListSites").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}

func (r *siteProfileRepository) DeleteSite(ctx context.Context, userName, siteName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSiteQuery(userName, siteName)
	if err != nil {
		log.Err(err).Str("func", "siteProfileRepository.DeleteSite").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "siteProfileRepository.DeleteSite").
			Str("site", siteName).
			Msg("failed to execute delete for site profile")
		return fmt.Errorf("%w: delete site profile %q: %w", ErrExecutingQuery, siteName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete site profile %q: %w", ErrExecutingQuery, siteName, err)
	}
	if affected == 0 {
		return ErrSiteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSiteProfile(row rowScanner) (models.SiteProfile, error) {
	var (
		profile  models.SiteProfile
		lastUsed time.Time
	)

	err := row.Scan(
		&profile.UserName,
		&profile.Name,
		&profile.Counter,
		&profile.Template,
		&lastUsed,
	)
	if err != nil {
		return models.SiteProfile{}, err
	}

	profile.LastUsed = lastUsed.UTC()
	return profile, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-master-password/models"
)

const siteProfilesTable = "site_profiles"

var siteProfileColumns = []string{
	"user_name",
	"site_name",
	"counter",
	"template",
	"last_used",
}

// psql builds statements with sqlite "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveSiteQuery(profile models.SiteProfile) (string, []any, error) {
	query, args, err := psql.
		Insert(siteProfilesTable).
		Columns(siteProfileColumns...).
		Values(
			profile.UserName,
			profile.Name,
			profile.Counter,
			profile.Template,
			profile.LastUsed.UTC(),
		).
		Suffix(`ON CONFLICT (user_name, site_name) DO UPDATE SET
			counter   = excluded.counter,
			template  = excluded.template,
			last_used = excluded.last_used`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSiteQuery(userName, siteName string) (string, []any, error) {
	query, args, err := psql.
		Select(siteProfileColumns...).
		From(siteProfilesTable).
		Where(sq.And{
			sq.Eq{"user_name": userName},
			sq.Eq{"site_name": siteName},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListSitesQuery(userName string, limit uint64) (string, []any, error) {
	builder := psql.
		Select(siteProfileColumns...).
		From(siteProfilesTable).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("last_used DESC", "site_name")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSiteQuery(userName, siteName string) (string, []any, error) {
	query, args, err := psql.
		Delete(siteProfilesTable).
		Where(sq.And{
			sq.Eq{"user_name": userName},
			sq.Eq{"site_name": siteName},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

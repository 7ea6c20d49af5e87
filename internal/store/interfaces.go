// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-master-password/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SiteProfileRepository persists site profiles keyed by user name and site
// name.
type SiteProfileRepository interface {
	// SaveSite inserts the profile or replaces the stored one for the same
	// user and site.
	SaveSite(ctx context.Context, profile models.SiteProfile) error

	// GetSite returns ErrSiteNotFound when nothing is stored.
	GetSite(ctx context.Context, userName, siteName string) (models.SiteProfile, error)

	// ListSites returns the profiles of userName, most recently used first.
	// A limit of 0 returns all of them.
	ListSites(ctx context.Context, userName string, limit uint64) ([]models.SiteProfile, error)

	// DeleteSite returns ErrSiteNotFound when nothing was deleted.
	DeleteSite(ctx context.Context, userName, siteName string) error
}

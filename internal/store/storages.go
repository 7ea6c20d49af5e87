// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// SiteProfileRepository is nil when site profiles are disabled.
	SiteProfileRepository SiteProfileRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite database file cfg.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
//
// An empty cfg.DSN disables storage and returns empty storages.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DSN == "" {
		logger.Debug().Msg("site profiles are disabled")
		return &ClientStorages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SiteProfileRepository: NewSiteProfileRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection. Safe on disabled storages.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is resolved.
//
// Value-level checks (counter range) already happen while parsing each
// source; cross-field rules live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !utf8.ValidString(cfg.User.FullName) {
		return ErrInvalidUserConfigs
	}

	if !utf8.ValidString(cfg.Site.Name) || cfg.Site.Counter == 0 || !cfg.Site.Tier.Valid() {
		return ErrInvalidSiteConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/template"
	"github.com/MKhiriev/go-master-password/models"
)

type passwordService struct {
	keyChain crypto.KeyChainService
}

// NewPasswordService builds a [PasswordService] on top of keyChain.
func NewPasswordService(keyChain crypto.KeyChainService) PasswordService {
	return &passwordService{keyChain: keyChain}
}

func (s *passwordService) Identicon(ctx context.Context, password *secret.Bytes, userName string) (models.Identicon, error) {
	icon, err := s.keyChain.Identicon(password, userName)
	if err != nil {
		return models.Identicon{}, fmt.Errorf("derive identicon: %w", err)
	}
	return icon, nil
}

func (s *passwordService) MasterKey(ctx context.Context, password *secret.Bytes, userName string) (*crypto.MasterKey, error) {
	// Checked only before starting: scrypt itself cannot be interrupted.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := s.keyChain.MasterKey(password, userName)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	return key, nil
}

func (s *passwordService) SitePassword(ctx context.Context, key *crypto.MasterKey, site models.Site) (*secret.Bytes, error) {
	if site.Name == "" {
		return nil, fmt.Errorf("%w: %w", ErrEmptySiteName, ErrInvalidArgument)
	}

	tier, err := template.ParseTier(site.Template)
	if err != nil {
		return nil, err
	}

	seed, err := s.keyChain.SiteSeed(key, site.Name, site.Counter)
	if err != nil {
		return nil, fmt.Errorf("derive site seed: %w", err)
	}
	defer seed.Destroy()

	password, err := template.Render(seed, tier)
	if err != nil {
		return nil, fmt.Errorf("render password: %w", err)
	}
	return password, nil
}

func (s *passwordService) Generate(ctx context.Context, password *secret.Bytes, userName string, site models.Site) (*secret.Bytes, error) {
	// Validate the cheap inputs first so a typo does not cost a scrypt run.
	if site.Name == "" {
		return nil, fmt.Errorf("%w: %w", ErrEmptySiteName, ErrInvalidArgument)
	}
	if _, err := template.ParseTier(site.Template); err != nil {
		return nil, err
	}

	key, err := s.MasterKey(ctx, password, userName)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return s.SitePassword(ctx, key, site)
}

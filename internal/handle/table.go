// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handle

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/template"
)

// Handle identifies a secret held by a [Table]. The zero Handle is never
// issued and plays the role of a NULL pointer.
type Handle uint64

// Table owns every secret it has handed out a handle for. It is safe for
// concurrent use.
type Table struct {
	keyChain crypto.KeyChainService

	mu         sync.Mutex
	last       Handle
	masterKeys map[Handle]*crypto.MasterKey
	siteSeeds  map[Handle]*crypto.SiteSeed
}

func NewTable(keyChain crypto.KeyChainService) *Table {
	return &Table{
		keyChain:   keyChain,
		masterKeys: make(map[Handle]*crypto.MasterKey),
		siteSeeds:  make(map[Handle]*crypto.SiteSeed),
	}
}

// NewMasterKey derives a master key and returns its handle. password is
// borrowed. The table lock is not held during derivation.
func (t *Table) NewMasterKey(password *secret.Bytes, userName string) (Handle, error) {
	key, err := t.keyChain.MasterKey(password, userName)
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	h := t.issue()
	t.masterKeys[h] = key
	return h, nil
}

// NewSiteSeed derives the seed of siteName and counter under the master key
// behind key and returns the seed's handle.
func (t *Table) NewSiteSeed(key Handle, siteName string, counter uint32) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	masterKey, ok := t.masterKeys[key]
	if !ok {
		return 0, fmt.Errorf("master key %d: %w", key, ErrUnknownHandle)
	}

	seed, err := t.keyChain.SiteSeed(masterKey, siteName, counter)
	if err != nil {
		return 0, err
	}

	h := t.issue()
	t.siteSeeds[h] = seed
	return h, nil
}

// SitePassword renders the seed behind seed with tier. The password is
// owned by the caller; the seed stays in the table.
func (t *Table) SitePassword(seed Handle, tier template.Tier) (*secret.Bytes, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	siteSeed, ok := t.siteSeeds[seed]
	if !ok {
		return nil, fmt.Errorf("site seed %d: %w", seed, ErrUnknownHandle)
	}
	return template.Render(siteSeed, tier)
}

// FreeMasterKey destroys the master key behind h and retires h.
func (t *Table) FreeMasterKey(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key, ok := t.masterKeys[h]
	if !ok {
		return fmt.Errorf("master key %d: %w", h, ErrUnknownHandle)
	}
	delete(t.masterKeys, h)
	key.Destroy()
	return nil
}

// FreeSiteSeed destroys the site seed behind h and retires h.
func (t *Table) FreeSiteSeed(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	seed, ok := t.siteSeeds[h]
	if !ok {
		return fmt.Errorf("site seed %d: %w", h, ErrUnknownHandle)
	}
	delete(t.siteSeeds, h)
	seed.Destroy()
	return nil
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.masterKeys) + len(t.siteSeeds)
}

// Close destroys every secret still held and retires all handles.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for h, key := range t.masterKeys {
		key.Destroy()
		delete(t.masterKeys, h)
	}
	for h, seed := range t.siteSeeds {
		seed.Destroy()
		delete(t.siteSeeds, h)
	}
}

// issue returns a fresh handle. Handles are never reused. Callers hold t.mu.
func (t *Table) issue() Handle {
	t.last++
	return t.last
}
